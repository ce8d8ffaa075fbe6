package repository

import "github.com/jhoicas/comercio-admin/internal/domain/entity"

// ActividadRepository bitácora local de mutaciones recientes.
type ActividadRepository interface {
	// Agregar antepone la entrada, trunca al tope y persiste la lista completa.
	Agregar(a entity.Actividad) error
	// Recientes devuelve la lista ordenada de más reciente a más antigua.
	Recientes() []entity.Actividad
	// Suscribir entrega un canal que recibe la lista completa tras cada cambio,
	// incluidos los originados en otro proceso. La función cancela la suscripción.
	Suscribir() (<-chan []entity.Actividad, func())
}

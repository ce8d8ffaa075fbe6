package repository

import "github.com/jhoicas/comercio-admin/internal/domain/entity"

// SesionRepository persistencia de la sesión local del operador.
// Invariante: Guardar escribe token y usuario juntos; Limpiar borra ambos.
type SesionRepository interface {
	Guardar(s entity.Sesion) error
	// Actual devuelve la sesión persistida; el valor cero significa "sin sesión".
	Actual() entity.Sesion
	Limpiar() error
}

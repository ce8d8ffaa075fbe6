package entity

import "time"

// TipoActividad clase de mutación registrada en la bitácora.
type TipoActividad string

const (
	ActividadCrear      TipoActividad = "create"
	ActividadActualizar TipoActividad = "update"
	ActividadEliminar   TipoActividad = "delete"
)

// MaxActividades tope de entradas retenidas en la bitácora; las más antiguas
// se descartan al superarlo.
const MaxActividades = 20

// Actividad entrada de la bitácora de actividad reciente.
// Se persiste con las mismas claves que usaba el almacenamiento original.
type Actividad struct {
	ID     string        `json:"id"`
	Titulo string        `json:"title"`
	Fecha  time.Time     `json:"time"`
	Tipo   TipoActividad `json:"type"`
	Icono  string        `json:"icon"`
}

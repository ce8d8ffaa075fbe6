package dto

import "time"

// ActividadView entrada de la bitácora lista para mostrar, con el tiempo
// relativo ya formateado.
type ActividadView struct {
	ID     string    `json:"id"`
	Titulo string    `json:"title"`
	Fecha  time.Time `json:"time"`
	Hace   string    `json:"relativeTime"`
	Tipo   string    `json:"type"`
	Icono  string    `json:"icon"`
}

package entity

import "github.com/shopspring/decimal"

// Producto registro de producto tal como lo expone el API remoto.
type Producto struct {
	ID           string          `json:"Id_Producto"`
	Nombre       string          `json:"Nombre_Producto"`
	Descripcion  string          `json:"Descripcion_Producto"`
	Stock        int             `json:"Stock_Producto"`
	Valor        decimal.Decimal `json:"Valor_Producto"`
	UnidadMedida string          `json:"Unidad_Medida"`
}

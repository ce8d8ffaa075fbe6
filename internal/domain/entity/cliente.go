package entity

// Cliente registro de cliente tal como lo expone el API remoto.
// El ID lo emite el servidor; el gateway no genera identidad propia.
type Cliente struct {
	ID        string `json:"Id_Cliente"`
	Nombre    string `json:"Nombre_Cliente"`
	Direccion string `json:"Direccion_Cliente"`
	Telefono  string `json:"Telefono_Cliente"`
	Correo    string `json:"Correo_Cliente"`
}

package entity

// Vendedor registro de vendedor tal como lo expone el API remoto.
type Vendedor struct {
	ID        string `json:"Id_Vendedor"`
	Nombre    string `json:"Nombre_Vendedor"`
	Direccion string `json:"Direccion_Vendedor"`
	Telefono  string `json:"Telefono_Vendedor"`
	Correo    string `json:"Correo_Vendedor"`
}

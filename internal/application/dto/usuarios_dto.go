package dto

// CrearLoginRequest alta de un login de base de datos (pantalla solo owner+SA).
type CrearLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	DbRole   string `json:"dbRole"`
}

// CrearLoginResponse mensaje del servidor tras crear el login.
type CrearLoginResponse struct {
	Mensaje string `json:"message"`
}

// RolInfo descripción de un rol de base de datos para el selector de la pantalla.
type RolInfo struct {
	Rol         string `json:"rol"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

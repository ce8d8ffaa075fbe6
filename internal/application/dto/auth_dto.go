package dto

import "time"

// LoginRequest credenciales enviadas por el operador.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse desenlace de un login exitoso: saludo y ruta de destino según el área.
type LoginResponse struct {
	Bienvenida string `json:"welcome"`
	Destino    string `json:"target"` // "/home-sa" | "/home-admin"
	Username   string `json:"username"`
	DbRole     string `json:"dbRole"`
}

// SesionResponse estado de la sesión actual más los claims informativos del token.
type SesionResponse struct {
	Autenticada   bool       `json:"loggedIn"`
	Username      string     `json:"username,omitempty"`
	DbRole        string     `json:"dbRole,omitempty"`
	Area          string     `json:"area,omitempty"`
	EsOwner       bool       `json:"isOwner"`
	EsSA          bool       `json:"isSa"`
	PuedeLeer     bool       `json:"canRead"`
	PuedeEscribir bool       `json:"canWrite"`
	TokenExpira   *time.Time `json:"tokenExpiresAt,omitempty"`
	TokenExpirado bool       `json:"tokenExpired,omitempty"`
}

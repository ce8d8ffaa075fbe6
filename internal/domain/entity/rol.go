package entity

// Rol rol de base de datos que el API remoto asigna a cada login.
// Se resuelve una sola vez al iniciar sesión a partir del claim del servidor;
// el resto del código consulta los predicados, nunca la cadena cruda.
type Rol string

const (
	RolOwner     Rol = "db_owner"
	RolEscritura Rol = "db_datawriter"
	RolLectura   Rol = "db_datareader"
	RolPublico   Rol = "public"
	RolNinguno   Rol = ""
)

// ParseRol convierte el claim del servidor en un Rol conocido.
// Un valor desconocido degrada a RolNinguno (sin permisos).
func ParseRol(s string) Rol {
	switch Rol(s) {
	case RolOwner, RolEscritura, RolLectura, RolPublico:
		return Rol(s)
	default:
		return RolNinguno
	}
}

// EsOwner indica si el rol es db_owner.
func (r Rol) EsOwner() bool { return r == RolOwner }

// PuedeEscribir indica si el rol permite INSERT/UPDATE/DELETE.
func (r Rol) PuedeEscribir() bool {
	return r == RolEscritura || r == RolOwner
}

// PuedeLeer indica si el rol permite SELECT.
func (r Rol) PuedeLeer() bool {
	return r == RolLectura || r == RolEscritura || r == RolOwner
}

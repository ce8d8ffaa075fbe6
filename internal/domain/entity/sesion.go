package entity

import "strings"

// Área de navegación a la que pertenece una sesión.
const (
	AreaSA    = "sa"
	AreaAdmin = "admin"
)

// UsuarioSA nombre reservado del superadministrador.
// La verificación es de identidad (username), no de rol: para la pantalla de
// mayor privilegio se exige además RolOwner.
const UsuarioSA = "sa"

// Usuario descriptor del usuario autenticado tal como lo devuelve el API remoto.
type Usuario struct {
	Username string `json:"username"`
	DbRole   Rol    `json:"dbRole"`
}

// Sesion token y usuario de la sesión actual.
// Invariante: token y usuario se guardan y se limpian juntos; el valor cero
// representa "sin sesión".
type Sesion struct {
	Token   string  `json:"token"`
	Usuario Usuario `json:"user"`
}

// Autenticada indica si hay token presente.
func (s Sesion) Autenticada() bool { return s.Token != "" }

// EsOwner indica si el rol persistido es db_owner.
func (s Sesion) EsOwner() bool { return s.Usuario.DbRole.EsOwner() }

// EsSA indica si el username, sin distinguir mayúsculas, es el reservado "sa".
func (s Sesion) EsSA() bool {
	return strings.EqualFold(strings.TrimSpace(s.Usuario.Username), UsuarioSA)
}

// PuedeLeer indica si la sesión tiene al menos permisos de lectura.
func (s Sesion) PuedeLeer() bool { return s.Usuario.DbRole.PuedeLeer() }

// PuedeEscribir indica si la sesión tiene permisos de escritura.
func (s Sesion) PuedeEscribir() bool { return s.Usuario.DbRole.PuedeEscribir() }

// Area devuelve el área de navegación que corresponde a la sesión:
// SA si el usuario es "sa", Admin en cualquier otro caso.
func (s Sesion) Area() string {
	if s.EsSA() {
		return AreaSA
	}
	return AreaAdmin
}

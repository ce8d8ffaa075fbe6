package repository

import (
	"context"

	"github.com/jhoicas/comercio-admin/internal/domain/entity"
)

// AuthRepository operaciones de autenticación contra el API remoto.
type AuthRepository interface {
	// Login intercambia credenciales por token y descriptor de usuario.
	Login(ctx context.Context, username, password string) (*entity.Sesion, error)
}

// UsuarioRepository administración de logins de base de datos (solo owner+SA).
type UsuarioRepository interface {
	// CrearLogin crea un login con el rol indicado y devuelve el mensaje del servidor.
	CrearLogin(ctx context.Context, token, username, password string, rol entity.Rol) (string, error)
}

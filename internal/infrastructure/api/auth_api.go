package api

import (
	"context"
	"net/http"

	"github.com/jhoicas/comercio-admin/internal/domain/entity"
	"github.com/jhoicas/comercio-admin/internal/domain/repository"
)

var (
	_ repository.AuthRepository    = (*AuthAPI)(nil)
	_ repository.UsuarioRepository = (*AuthAPI)(nil)
)

// AuthAPI adaptador de autenticación y administración de logins.
type AuthAPI struct {
	c *Client
}

// NewAuthAPI construye el adaptador.
func NewAuthAPI(c *Client) *AuthAPI {
	return &AuthAPI{c: c}
}

type loginBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginData forma del data de /auth/login: token más descriptor de usuario.
type loginData struct {
	Token   string         `json:"token"`
	Usuario entity.Usuario `json:"user"`
}

// Login POST /auth/login — el login es la única llamada sin bearer token.
func (a *AuthAPI) Login(ctx context.Context, username, password string) (*entity.Sesion, error) {
	env, err := a.c.do(ctx, http.MethodPost, "/auth/login", "", loginBody{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	var data loginData
	if err := a.c.decodificar(env, &data); err != nil {
		return nil, err
	}
	return &entity.Sesion{Token: data.Token, Usuario: data.Usuario}, nil
}

type crearLoginBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
	DbRole   string `json:"dbRole"`
}

// CrearLogin POST /usuarios/crear-login — el mensaje viaja en la raíz del sobre.
func (a *AuthAPI) CrearLogin(ctx context.Context, token, username, password string, rol entity.Rol) (string, error) {
	env, err := a.c.do(ctx, http.MethodPost, "/usuarios/crear-login", token, crearLoginBody{
		Username: username,
		Password: password,
		DbRole:   string(rol),
	})
	if err != nil {
		return "", err
	}
	return env.mensaje(), nil
}

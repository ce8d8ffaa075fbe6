package auth

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/comercio-admin/internal/application/dto"
	"github.com/jhoicas/comercio-admin/internal/domain"
	"github.com/jhoicas/comercio-admin/internal/domain/entity"
	"github.com/jhoicas/comercio-admin/internal/domain/repository"
	"github.com/jhoicas/comercio-admin/pkg/token"
)

// UseCase casos de uso de autenticación: intercambia credenciales contra el
// API remoto y administra la sesión local del operador.
type UseCase struct {
	api      repository.AuthRepository
	sesiones repository.SesionRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(api repository.AuthRepository, sesiones repository.SesionRepository) *UseCase {
	return &UseCase{api: api, sesiones: sesiones}
}

// Login envía las credenciales al API remoto y, si son válidas, persiste token
// y usuario juntos. El rol se resuelve una sola vez aquí; después solo se
// consultan los predicados de la sesión.
//
// Las fallas se clasifican en dos familias: servidor no disponible (red caída,
// 404, 5xx) y credenciales inválidas (el resto), conservando el mensaje del
// servidor cuando existe.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	sesion, err := uc.api.Login(ctx, in.Username, in.Password)
	if err != nil {
		return nil, clasificarFalloLogin(err)
	}

	sesion.Usuario.DbRole = entity.ParseRol(string(sesion.Usuario.DbRole))
	if err := uc.sesiones.Guardar(*sesion); err != nil {
		return nil, err
	}

	destino := "/home-admin"
	if sesion.EsSA() {
		destino = "/home-sa"
	}
	return &dto.LoginResponse{
		Bienvenida: "Bienvenido, " + sesion.Usuario.Username,
		Destino:    destino,
		Username:   sesion.Usuario.Username,
		DbRole:     string(sesion.Usuario.DbRole),
	}, nil
}

// Logout limpia token y usuario incondicionalmente. No hay llamada remota.
func (uc *UseCase) Logout() error {
	return uc.sesiones.Limpiar()
}

// Info devuelve el estado de la sesión actual, incluidos los claims
// informativos del token (expiración) cuando el token es un JWT legible.
func (uc *UseCase) Info() dto.SesionResponse {
	s := uc.sesiones.Actual()
	out := dto.SesionResponse{
		Autenticada:   s.Autenticada(),
		EsOwner:       s.EsOwner(),
		EsSA:          s.Autenticada() && s.EsSA(),
		PuedeLeer:     s.PuedeLeer(),
		PuedeEscribir: s.PuedeEscribir(),
	}
	if !s.Autenticada() {
		return out
	}
	out.Username = s.Usuario.Username
	out.DbRole = string(s.Usuario.DbRole)
	out.Area = s.Area()
	if info, err := token.Inspect(s.Token); err == nil && !info.ExpiresAt.IsZero() {
		exp := info.ExpiresAt
		out.TokenExpira = &exp
		out.TokenExpirado = info.Expired(time.Now())
	}
	return out
}

func clasificarFalloLogin(err error) error {
	var re *domain.RemoteError
	if !errors.As(err, &re) {
		return err
	}
	if re.Status == 0 || re.Status == 404 || re.Status >= 500 {
		return &domain.RemoteError{Status: re.Status, Mensaje: re.Mensaje, Err: domain.ErrServidorNoDisponible}
	}
	return &domain.RemoteError{Status: re.Status, Mensaje: re.Mensaje, Err: domain.ErrCredencialesInvalidas}
}

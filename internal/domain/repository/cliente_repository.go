package repository

import (
	"context"

	"github.com/jhoicas/comercio-admin/internal/domain/entity"
)

// ClienteRepository acceso al recurso cliente del API remoto.
// Toda operación lleva el bearer token de la sesión actual.
type ClienteRepository interface {
	Listar(ctx context.Context, token string) ([]entity.Cliente, error)
	Crear(ctx context.Context, token string, c entity.Cliente) (*entity.Cliente, error)
	Actualizar(ctx context.Context, token, id string, c entity.Cliente) (*entity.Cliente, error)
	Eliminar(ctx context.Context, token, id string) error
}

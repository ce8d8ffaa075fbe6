package repository

import (
	"context"

	"github.com/jhoicas/comercio-admin/internal/domain/entity"
)

// VendedorRepository acceso al recurso vendedor del API remoto.
type VendedorRepository interface {
	Listar(ctx context.Context, token string) ([]entity.Vendedor, error)
	Crear(ctx context.Context, token string, v entity.Vendedor) (*entity.Vendedor, error)
	Actualizar(ctx context.Context, token, id string, v entity.Vendedor) (*entity.Vendedor, error)
	Eliminar(ctx context.Context, token, id string) error
}

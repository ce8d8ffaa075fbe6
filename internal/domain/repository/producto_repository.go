package repository

import (
	"context"

	"github.com/jhoicas/comercio-admin/internal/domain/entity"
)

// ProductoRepository acceso al recurso producto del API remoto.
type ProductoRepository interface {
	Listar(ctx context.Context, token string) ([]entity.Producto, error)
	Crear(ctx context.Context, token string, p entity.Producto) (*entity.Producto, error)
	Actualizar(ctx context.Context, token, id string, p entity.Producto) (*entity.Producto, error)
	Eliminar(ctx context.Context, token, id string) error
}

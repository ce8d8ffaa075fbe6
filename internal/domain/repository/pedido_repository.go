package repository

import (
	"context"

	"github.com/jhoicas/comercio-admin/internal/domain/entity"
)

// PedidoRepository acceso al recurso pedido del API remoto.
// La creación envía cabecera y líneas; la actualización solo cabecera
// (las líneas de un pedido existente no se editan en este flujo).
type PedidoRepository interface {
	Listar(ctx context.Context, token string) ([]entity.Pedido, error)
	Detalle(ctx context.Context, token, id string) ([]entity.DetallePedido, error)
	Crear(ctx context.Context, token string, p entity.Pedido, detalles []entity.DetallePedido) (*entity.Pedido, error)
	Actualizar(ctx context.Context, token, id string, p entity.Pedido) (*entity.Pedido, error)
	Eliminar(ctx context.Context, token, id string) error
}

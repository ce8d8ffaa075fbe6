package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/comercio-admin/internal/domain/entity"
	"github.com/jhoicas/comercio-admin/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoAPI)(nil)

// PedidoAPI adaptador del recurso pedido sobre el API remoto.
type PedidoAPI struct {
	c *Client
}

// NewPedidoAPI construye el adaptador.
func NewPedidoAPI(c *Client) *PedidoAPI {
	return &PedidoAPI{c: c}
}

type detalleBody struct {
	IDProducto string          `json:"Id_Producto"`
	Cantidad   int             `json:"Cantidad"`
	ValorVenta decimal.Decimal `json:"ValorVenta"`
	Descuento  decimal.Decimal `json:"Descuento"`
}

type crearPedidoBody struct {
	IDCliente  string          `json:"Id_Cliente"`
	IDVendedor string          `json:"Id_Vendedor"`
	Subtotal   decimal.Decimal `json:"Subtotal_Pedido"`
	IVA        decimal.Decimal `json:"IVA"`
	Total      decimal.Decimal `json:"Total_Pedido"`
	Detalles   []detalleBody   `json:"detalles,omitempty"`
}

// Listar GET /pedido
func (a *PedidoAPI) Listar(ctx context.Context, token string) ([]entity.Pedido, error) {
	env, err := a.c.do(ctx, http.MethodGet, "/pedido", token, nil)
	if err != nil {
		return nil, err
	}
	var out []entity.Pedido
	if err := a.c.decodificar(env, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Detalle GET /pedido/:id/detalle
func (a *PedidoAPI) Detalle(ctx context.Context, token, id string) ([]entity.DetallePedido, error) {
	env, err := a.c.do(ctx, http.MethodGet, "/pedido/"+url.PathEscape(id)+"/detalle", token, nil)
	if err != nil {
		return nil, err
	}
	var out []entity.DetallePedido
	if err := a.c.decodificar(env, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Crear POST /pedido — cabecera con totales más las líneas.
func (a *PedidoAPI) Crear(ctx context.Context, token string, p entity.Pedido, detalles []entity.DetallePedido) (*entity.Pedido, error) {
	body := crearPedidoBody{
		IDCliente:  p.IDCliente,
		IDVendedor: p.IDVendedor,
		Subtotal:   p.Subtotal,
		IVA:        p.IVA,
		Total:      p.Total,
		Detalles:   make([]detalleBody, 0, len(detalles)),
	}
	for _, d := range detalles {
		body.Detalles = append(body.Detalles, detalleBody{
			IDProducto: d.IDProducto,
			Cantidad:   d.Cantidad,
			ValorVenta: d.ValorVenta,
			Descuento:  d.Descuento,
		})
	}
	env, err := a.c.do(ctx, http.MethodPost, "/pedido", token, body)
	if err != nil {
		return nil, err
	}
	var out entity.Pedido
	if err := a.c.decodificar(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Actualizar PUT /pedido/:id — solo cabecera, sin líneas.
func (a *PedidoAPI) Actualizar(ctx context.Context, token, id string, p entity.Pedido) (*entity.Pedido, error) {
	body := crearPedidoBody{
		IDCliente:  p.IDCliente,
		IDVendedor: p.IDVendedor,
		Subtotal:   p.Subtotal,
		IVA:        p.IVA,
		Total:      p.Total,
	}
	env, err := a.c.do(ctx, http.MethodPut, "/pedido/"+url.PathEscape(id), token, body)
	if err != nil {
		return nil, err
	}
	var out entity.Pedido
	if err := a.c.decodificar(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Eliminar DELETE /pedido/:id
func (a *PedidoAPI) Eliminar(ctx context.Context, token, id string) error {
	_, err := a.c.do(ctx, http.MethodDelete, "/pedido/"+url.PathEscape(id), token, nil)
	return err
}

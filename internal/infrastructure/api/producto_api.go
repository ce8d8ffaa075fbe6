package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/comercio-admin/internal/domain/entity"
	"github.com/jhoicas/comercio-admin/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoAPI)(nil)

// ProductoAPI adaptador del recurso producto sobre el API remoto.
type ProductoAPI struct {
	c *Client
}

// NewProductoAPI construye el adaptador.
func NewProductoAPI(c *Client) *ProductoAPI {
	return &ProductoAPI{c: c}
}

type productoBody struct {
	Nombre       string          `json:"Nombre_Producto"`
	Descripcion  *string         `json:"Descripcion_Producto"`
	Stock        int             `json:"Stock_Producto"`
	Valor        decimal.Decimal `json:"Valor_Producto"`
	UnidadMedida *string         `json:"Unidad_Medida"`
}

func cuerpoProducto(p entity.Producto) productoBody {
	return productoBody{
		Nombre:       p.Nombre,
		Descripcion:  nilSiVacio(p.Descripcion),
		Stock:        p.Stock,
		Valor:        p.Valor,
		UnidadMedida: nilSiVacio(p.UnidadMedida),
	}
}

// Listar GET /producto
func (a *ProductoAPI) Listar(ctx context.Context, token string) ([]entity.Producto, error) {
	env, err := a.c.do(ctx, http.MethodGet, "/producto", token, nil)
	if err != nil {
		return nil, err
	}
	var out []entity.Producto
	if err := a.c.decodificar(env, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Crear POST /producto
func (a *ProductoAPI) Crear(ctx context.Context, token string, p entity.Producto) (*entity.Producto, error) {
	env, err := a.c.do(ctx, http.MethodPost, "/producto", token, cuerpoProducto(p))
	if err != nil {
		return nil, err
	}
	var out entity.Producto
	if err := a.c.decodificar(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Actualizar PUT /producto/:id
func (a *ProductoAPI) Actualizar(ctx context.Context, token, id string, p entity.Producto) (*entity.Producto, error) {
	env, err := a.c.do(ctx, http.MethodPut, "/producto/"+url.PathEscape(id), token, cuerpoProducto(p))
	if err != nil {
		return nil, err
	}
	var out entity.Producto
	if err := a.c.decodificar(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Eliminar DELETE /producto/:id
func (a *ProductoAPI) Eliminar(ctx context.Context, token, id string) error {
	_, err := a.c.do(ctx, http.MethodDelete, "/producto/"+url.PathEscape(id), token, nil)
	return err
}

package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/comercio-admin/internal/domain/entity"
	"github.com/jhoicas/comercio-admin/internal/domain/repository"
)

var _ repository.VendedorRepository = (*VendedorAPI)(nil)

// VendedorAPI adaptador del recurso vendedor sobre el API remoto.
type VendedorAPI struct {
	c *Client
}

// NewVendedorAPI construye el adaptador.
func NewVendedorAPI(c *Client) *VendedorAPI {
	return &VendedorAPI{c: c}
}

type vendedorBody struct {
	Nombre    string  `json:"Nombre_Vendedor"`
	Direccion *string `json:"Direccion_Vendedor"`
	Telefono  *string `json:"Telefono_Vendedor"`
	Correo    *string `json:"Correo_Vendedor"`
}

func cuerpoVendedor(v entity.Vendedor) vendedorBody {
	return vendedorBody{
		Nombre:    v.Nombre,
		Direccion: nilSiVacio(v.Direccion),
		Telefono:  nilSiVacio(v.Telefono),
		Correo:    nilSiVacio(v.Correo),
	}
}

// Listar GET /vendedor
func (a *VendedorAPI) Listar(ctx context.Context, token string) ([]entity.Vendedor, error) {
	env, err := a.c.do(ctx, http.MethodGet, "/vendedor", token, nil)
	if err != nil {
		return nil, err
	}
	var out []entity.Vendedor
	if err := a.c.decodificar(env, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Crear POST /vendedor
func (a *VendedorAPI) Crear(ctx context.Context, token string, v entity.Vendedor) (*entity.Vendedor, error) {
	env, err := a.c.do(ctx, http.MethodPost, "/vendedor", token, cuerpoVendedor(v))
	if err != nil {
		return nil, err
	}
	var out entity.Vendedor
	if err := a.c.decodificar(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Actualizar PUT /vendedor/:id
func (a *VendedorAPI) Actualizar(ctx context.Context, token, id string, v entity.Vendedor) (*entity.Vendedor, error) {
	env, err := a.c.do(ctx, http.MethodPut, "/vendedor/"+url.PathEscape(id), token, cuerpoVendedor(v))
	if err != nil {
		return nil, err
	}
	var out entity.Vendedor
	if err := a.c.decodificar(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Eliminar DELETE /vendedor/:id
func (a *VendedorAPI) Eliminar(ctx context.Context, token, id string) error {
	_, err := a.c.do(ctx, http.MethodDelete, "/vendedor/"+url.PathEscape(id), token, nil)
	return err
}

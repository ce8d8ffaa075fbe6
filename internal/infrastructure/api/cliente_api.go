package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/comercio-admin/internal/domain/entity"
	"github.com/jhoicas/comercio-admin/internal/domain/repository"
)

// Verificar en tiempo de compilación que ClienteAPI implementa el puerto.
var _ repository.ClienteRepository = (*ClienteAPI)(nil)

// ClienteAPI adaptador del recurso cliente sobre el API remoto.
type ClienteAPI struct {
	c *Client
}

// NewClienteAPI construye el adaptador.
func NewClienteAPI(c *Client) *ClienteAPI {
	return &ClienteAPI{c: c}
}

// clienteBody cuerpo de alta/edición: los campos opcionales en blanco viajan
// como nulo, como espera el servidor.
type clienteBody struct {
	Nombre    string  `json:"Nombre_Cliente"`
	Direccion *string `json:"Direccion_Cliente"`
	Telefono  *string `json:"Telefono_Cliente"`
	Correo    *string `json:"Correo_Cliente"`
}

func cuerpoCliente(cl entity.Cliente) clienteBody {
	return clienteBody{
		Nombre:    cl.Nombre,
		Direccion: nilSiVacio(cl.Direccion),
		Telefono:  nilSiVacio(cl.Telefono),
		Correo:    nilSiVacio(cl.Correo),
	}
}

// Listar GET /cliente
func (a *ClienteAPI) Listar(ctx context.Context, token string) ([]entity.Cliente, error) {
	env, err := a.c.do(ctx, http.MethodGet, "/cliente", token, nil)
	if err != nil {
		return nil, err
	}
	var out []entity.Cliente
	if err := a.c.decodificar(env, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Crear POST /cliente
func (a *ClienteAPI) Crear(ctx context.Context, token string, cl entity.Cliente) (*entity.Cliente, error) {
	env, err := a.c.do(ctx, http.MethodPost, "/cliente", token, cuerpoCliente(cl))
	if err != nil {
		return nil, err
	}
	var out entity.Cliente
	if err := a.c.decodificar(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Actualizar PUT /cliente/:id
func (a *ClienteAPI) Actualizar(ctx context.Context, token, id string, cl entity.Cliente) (*entity.Cliente, error) {
	env, err := a.c.do(ctx, http.MethodPut, "/cliente/"+url.PathEscape(id), token, cuerpoCliente(cl))
	if err != nil {
		return nil, err
	}
	var out entity.Cliente
	if err := a.c.decodificar(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Eliminar DELETE /cliente/:id
func (a *ClienteAPI) Eliminar(ctx context.Context, token, id string) error {
	_, err := a.c.do(ctx, http.MethodDelete, "/cliente/"+url.PathEscape(id), token, nil)
	return err
}

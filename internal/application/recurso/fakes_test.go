package recurso_test

import (
	"context"

	"github.com/jhoicas/comercio-admin/internal/domain"
	"github.com/jhoicas/comercio-admin/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria de los puertos que consumen los casos de uso.
// ──────────────────────────────────────────────────────────────────────────────

// sesionesFake implementa repository.SesionRepository sobre un campo.
type sesionesFake struct {
	sesion entity.Sesion
}

func sesionesCon(username string, rol entity.Rol) *sesionesFake {
	return &sesionesFake{sesion: entity.Sesion{
		Token:   "tok-test",
		Usuario: entity.Usuario{Username: username, DbRole: rol},
	}}
}

func (f *sesionesFake) Guardar(s entity.Sesion) error { f.sesion = s; return nil }
func (f *sesionesFake) Actual() entity.Sesion         { return f.sesion }
func (f *sesionesFake) Limpiar() error                { f.sesion = entity.Sesion{}; return nil }

// bitacoraFake acumula lo registrado para poder afirmarlo.
type bitacoraFake struct {
	entradas []entity.Actividad
}

func (f *bitacoraFake) Agregar(a entity.Actividad) error {
	f.entradas = append([]entity.Actividad{a}, f.entradas...)
	return nil
}
func (f *bitacoraFake) Recientes() []entity.Actividad { return f.entradas }
func (f *bitacoraFake) Suscribir() (<-chan []entity.Actividad, func()) {
	ch := make(chan []entity.Actividad)
	return ch, func() {}
}

// clientesFake implementa repository.ClienteRepository con desenlaces fijos.
type clientesFake struct {
	lista       []entity.Cliente
	errListar   error
	errCrear    error
	errBorrar   error
	borrados    []string
	ultimoToken string
}

func (f *clientesFake) Listar(_ context.Context, token string) ([]entity.Cliente, error) {
	f.ultimoToken = token
	return f.lista, f.errListar
}

func (f *clientesFake) Crear(_ context.Context, _ string, c entity.Cliente) (*entity.Cliente, error) {
	if f.errCrear != nil {
		return nil, f.errCrear
	}
	c.ID = "C-001"
	return &c, nil
}

func (f *clientesFake) Actualizar(_ context.Context, _ string, id string, c entity.Cliente) (*entity.Cliente, error) {
	c.ID = id
	return &c, nil
}

func (f *clientesFake) Eliminar(_ context.Context, _ string, id string) error {
	if f.errBorrar != nil {
		return f.errBorrar
	}
	f.borrados = append(f.borrados, id)
	return nil
}

// vendedoresFake y productosFake solo listan; los usan los catálogos de pedido.
type vendedoresFake struct {
	lista []entity.Vendedor
	err   error
}

func (f *vendedoresFake) Listar(_ context.Context, _ string) ([]entity.Vendedor, error) {
	return f.lista, f.err
}
func (f *vendedoresFake) Crear(_ context.Context, _ string, v entity.Vendedor) (*entity.Vendedor, error) {
	v.ID = "V-001"
	return &v, nil
}
func (f *vendedoresFake) Actualizar(_ context.Context, _ string, id string, v entity.Vendedor) (*entity.Vendedor, error) {
	v.ID = id
	return &v, nil
}
func (f *vendedoresFake) Eliminar(_ context.Context, _ string, _ string) error { return nil }

type productosFake struct {
	lista []entity.Producto
	err   error
}

func (f *productosFake) Listar(_ context.Context, _ string) ([]entity.Producto, error) {
	return f.lista, f.err
}
func (f *productosFake) Crear(_ context.Context, _ string, p entity.Producto) (*entity.Producto, error) {
	p.ID = "P-001"
	return &p, nil
}
func (f *productosFake) Actualizar(_ context.Context, _ string, id string, p entity.Producto) (*entity.Producto, error) {
	p.ID = id
	return &p, nil
}
func (f *productosFake) Eliminar(_ context.Context, _ string, _ string) error { return nil }

// pedidosFake registra la cabecera y las líneas con las que se llamó Crear.
type pedidosFake struct {
	lista        []entity.Pedido
	detalle      []entity.DetallePedido
	errListar    error
	creadoCab    *entity.Pedido
	creadoLineas []entity.DetallePedido
	errBorrar    error
}

func (f *pedidosFake) Listar(_ context.Context, _ string) ([]entity.Pedido, error) {
	return f.lista, f.errListar
}
func (f *pedidosFake) Detalle(_ context.Context, _ string, _ string) ([]entity.DetallePedido, error) {
	return f.detalle, nil
}
func (f *pedidosFake) Crear(_ context.Context, _ string, p entity.Pedido, detalles []entity.DetallePedido) (*entity.Pedido, error) {
	p.ID = "PED-001"
	f.creadoCab = &p
	f.creadoLineas = detalles
	return &p, nil
}
func (f *pedidosFake) Actualizar(_ context.Context, _ string, id string, p entity.Pedido) (*entity.Pedido, error) {
	p.ID = id
	return &p, nil
}
func (f *pedidosFake) Eliminar(_ context.Context, _ string, _ string) error { return f.errBorrar }

// errorRemoto arma el error que produce el cliente HTTP ante un status dado.
func errorRemoto(status int, mensaje string, base error) error {
	return &domain.RemoteError{Status: status, Mensaje: mensaje, Err: base}
}

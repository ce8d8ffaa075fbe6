package recurso_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comercio-admin/internal/application/dto"
	"github.com/jhoicas/comercio-admin/internal/application/recurso"
	"github.com/jhoicas/comercio-admin/internal/domain"
	"github.com/jhoicas/comercio-admin/internal/domain/entity"
)

func pedidoUC(pedidos *pedidosFake, productos *productosFake, clientes *clientesFake, vendedores *vendedoresFake) *recurso.PedidoUseCase {
	return recurso.NewPedidoUseCase(
		pedidos, clientes, vendedores, productos,
		sesionesCon("operador", entity.RolEscritura), &bitacoraFake{},
	)
}

func catalogoProductos() *productosFake {
	return &productosFake{lista: []entity.Producto{
		{ID: "P-1", Nombre: "Teclado", Valor: decimal.NewFromInt(10)},
		{ID: "P-2", Nombre: "Mouse", Valor: decimal.NewFromInt(7)},
	}}
}

// ──────────────────────────────────────────────────────────────────────────────
// Cotización: resolución de precios y desglose decimal exacto
// ──────────────────────────────────────────────────────────────────────────────

func TestPedidoCotizar_ResuelvePreciosYCalculaTotales(t *testing.T) {
	uc := pedidoUC(&pedidosFake{}, catalogoProductos(), &clientesFake{}, &vendedoresFake{})

	out, err := uc.Cotizar(context.Background(), []dto.LineaPedidoRequest{
		{IDProducto: "P-1", Cantidad: 1},
		{IDProducto: "P-2", Cantidad: 2},
	})
	require.NoError(t, err)

	require.Len(t, out.Detalles, 2)
	assert.Equal(t, "Teclado", out.Detalles[0].NombreProducto)
	assert.True(t, out.Detalles[0].ValorVenta.Equal(decimal.NewFromInt(10)))
	assert.True(t, out.Detalles[1].ValorVenta.Equal(decimal.NewFromInt(14)), "valor del producto × cantidad")

	assert.True(t, out.Totales.Subtotal.Equal(decimal.NewFromInt(24)))
	assert.True(t, out.Totales.IVA.Equal(decimal.NewFromFloat(2.88)))
	assert.True(t, out.Totales.Total.Equal(decimal.NewFromFloat(26.88)))
}

func TestPedidoCotizar_LineaInvalida(t *testing.T) {
	uc := pedidoUC(&pedidosFake{}, catalogoProductos(), &clientesFake{}, &vendedoresFake{})

	casos := [][]dto.LineaPedidoRequest{
		{{IDProducto: "", Cantidad: 1}},
		{{IDProducto: "P-1", Cantidad: 0}},
		{{IDProducto: "P-999", Cantidad: 1}}, // producto inexistente
	}
	for _, lineas := range casos {
		_, err := uc.Cotizar(context.Background(), lineas)
		assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta: validación de cabecera y líneas enviadas al servidor
// ──────────────────────────────────────────────────────────────────────────────

func TestPedidoCrear_ExigeClienteVendedorYLineas(t *testing.T) {
	uc := pedidoUC(&pedidosFake{}, catalogoProductos(), &clientesFake{}, &vendedoresFake{})

	casos := []dto.CrearPedidoRequest{
		{IDVendedor: "V-1", Lineas: []dto.LineaPedidoRequest{{IDProducto: "P-1", Cantidad: 1}}},
		{IDCliente: "C-1", Lineas: []dto.LineaPedidoRequest{{IDProducto: "P-1", Cantidad: 1}}},
		{IDCliente: "C-1", IDVendedor: "V-1"},
	}
	for _, in := range casos {
		_, err := uc.Crear(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
	}
}

func TestPedidoCrear_EnviaCabeceraConTotalesYLineasCotizadas(t *testing.T) {
	pedidos := &pedidosFake{}
	uc := pedidoUC(pedidos, catalogoProductos(), &clientesFake{}, &vendedoresFake{})

	out, err := uc.Crear(context.Background(), dto.CrearPedidoRequest{
		IDCliente:  "C-1",
		IDVendedor: "V-1",
		Lineas: []dto.LineaPedidoRequest{
			{IDProducto: "P-1", Cantidad: 1},
			{IDProducto: "P-2", Cantidad: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "created", out.Action)
	assert.Equal(t, `Pedido "PED-001" creado`, out.Toast.Mensaje)

	require.NotNil(t, pedidos.creadoCab)
	assert.True(t, pedidos.creadoCab.Subtotal.Equal(decimal.NewFromInt(24)))
	assert.True(t, pedidos.creadoCab.IVA.Equal(decimal.NewFromFloat(2.88)))
	assert.True(t, pedidos.creadoCab.Total.Equal(decimal.NewFromFloat(26.88)))
	assert.Len(t, pedidos.creadoLineas, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogos: lecturas independientes; la que falla deja su lista vacía
// ──────────────────────────────────────────────────────────────────────────────

func TestPedidoCatalogos_FalloParcialNoDerribaElResto(t *testing.T) {
	clientes := &clientesFake{errListar: errorRemoto(500, "", domain.ErrServidorNoDisponible)}
	vendedores := &vendedoresFake{lista: []entity.Vendedor{{ID: "V-1", Nombre: "Luis"}}}
	uc := pedidoUC(&pedidosFake{}, catalogoProductos(), clientes, vendedores)

	out, err := uc.Catalogos(context.Background())
	require.NoError(t, err)

	assert.Empty(t, out.Clientes)
	assert.Len(t, out.Vendedores, 1)
	assert.Len(t, out.Productos, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado y eliminación
// ──────────────────────────────────────────────────────────────────────────────

func TestPedidoListar_FiltraPorIdYNombresResueltos(t *testing.T) {
	pedidos := &pedidosFake{lista: []entity.Pedido{
		{ID: "PED-1", NombreCliente: "José Pérez", NombreVendedor: "Luis"},
		{ID: "PED-2", NombreCliente: "Ana Gómez", NombreVendedor: "Marta"},
	}}
	uc := pedidoUC(pedidos, catalogoProductos(), &clientesFake{}, &vendedoresFake{})

	porCliente, err := uc.Listar(context.Background(), "gomez")
	require.NoError(t, err)
	require.Len(t, porCliente, 1)
	assert.Equal(t, "PED-2", porCliente[0].ID)

	porID, err := uc.Listar(context.Background(), "PED-1")
	require.NoError(t, err)
	require.Len(t, porID, 1)
}

func TestPedidoEliminar_SinRamaDeConflicto(t *testing.T) {
	// Un 409 al eliminar un pedido no tiene mensaje especial: cae al genérico.
	pedidos := &pedidosFake{errBorrar: errorRemoto(409, "", domain.ErrConflicto)}
	uc := pedidoUC(pedidos, catalogoProductos(), &clientesFake{}, &vendedoresFake{})

	out, err := uc.Eliminar(context.Background(), "PED-1")
	require.NoError(t, err)

	assert.False(t, out.Eliminado)
	assert.Equal(t, "No se pudo eliminar el pedido", out.Toast.Mensaje)
	assert.Equal(t, dto.NivelError, out.Toast.Nivel)
}

package recurso

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jhoicas/comercio-admin/internal/application/dto"
	"github.com/jhoicas/comercio-admin/internal/domain"
	"github.com/jhoicas/comercio-admin/internal/domain/entity"
	"github.com/jhoicas/comercio-admin/internal/domain/repository"
)

// PedidoUseCase casos de uso de la pantalla de pedidos y su formulario:
// listado, detalle, catálogos para los selectores, cotización de líneas y
// alta/edición/eliminación.
type PedidoUseCase struct {
	pedidos    repository.PedidoRepository
	clientes   repository.ClienteRepository
	vendedores repository.VendedorRepository
	productos  repository.ProductoRepository
	sesiones   repository.SesionRepository
	bitacora   repository.ActividadRepository
}

// NewPedidoUseCase construye el caso de uso.
func NewPedidoUseCase(
	pedidos repository.PedidoRepository,
	clientes repository.ClienteRepository,
	vendedores repository.VendedorRepository,
	productos repository.ProductoRepository,
	sesiones repository.SesionRepository,
	bitacora repository.ActividadRepository,
) *PedidoUseCase {
	return &PedidoUseCase{
		pedidos:    pedidos,
		clientes:   clientes,
		vendedores: vendedores,
		productos:  productos,
		sesiones:   sesiones,
		bitacora:   bitacora,
	}
}

// Listar trae los pedidos y aplica la búsqueda por id o nombres resueltos.
func (uc *PedidoUseCase) Listar(ctx context.Context, q string) ([]entity.Pedido, error) {
	tok, err := tokenActual(uc.sesiones)
	if err != nil {
		return nil, err
	}
	lista, err := uc.pedidos.Listar(ctx, tok)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(q) == "" {
		return lista, nil
	}
	filtrados := make([]entity.Pedido, 0, len(lista))
	for _, p := range lista {
		if Coincide(q, p.ID, p.NombreCliente, p.NombreVendedor) {
			filtrados = append(filtrados, p)
		}
	}
	return filtrados, nil
}

// Detalle devuelve las líneas de un pedido existente.
func (uc *PedidoUseCase) Detalle(ctx context.Context, id string) ([]entity.DetallePedido, error) {
	tok, err := tokenActual(uc.sesiones)
	if err != nil {
		return nil, err
	}
	return uc.pedidos.Detalle(ctx, tok, id)
}

// Catalogos carga clientes, vendedores y productos para los selectores del
// formulario. Las tres lecturas corren en paralelo y son independientes: la
// que falle deja su lista vacía sin afectar a las demás.
func (uc *PedidoUseCase) Catalogos(ctx context.Context) (*dto.CatalogosPedido, error) {
	tok, err := tokenActual(uc.sesiones)
	if err != nil {
		return nil, err
	}

	out := &dto.CatalogosPedido{}
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		if lista, err := uc.clientes.Listar(ctx, tok); err == nil {
			out.Clientes = lista
		}
	}()
	go func() {
		defer wg.Done()
		if lista, err := uc.vendedores.Listar(ctx, tok); err == nil {
			out.Vendedores = lista
		}
	}()
	go func() {
		defer wg.Done()
		if lista, err := uc.productos.Listar(ctx, tok); err == nil {
			out.Productos = lista
		}
	}()
	wg.Wait()
	return out, nil
}

// Cotizar resuelve cada línea contra el catálogo de productos y calcula el
// desglose: ValorVenta = valor del producto × cantidad, descuento cero,
// subtotal = Σ netos, IVA = subtotal × 0.12, total = subtotal + IVA.
func (uc *PedidoUseCase) Cotizar(ctx context.Context, lineas []dto.LineaPedidoRequest) (*dto.CotizacionPedido, error) {
	tok, err := tokenActual(uc.sesiones)
	if err != nil {
		return nil, err
	}
	productos, err := uc.productos.Listar(ctx, tok)
	if err != nil {
		return nil, err
	}
	porID := make(map[string]entity.Producto, len(productos))
	for _, p := range productos {
		porID[p.ID] = p
	}

	detalles := make([]entity.DetallePedido, 0, len(lineas))
	for _, l := range lineas {
		if l.IDProducto == "" || l.Cantidad < 1 {
			return nil, domain.ErrEntradaInvalida
		}
		p, ok := porID[l.IDProducto]
		if !ok {
			return nil, domain.ErrEntradaInvalida
		}
		detalles = append(detalles, entity.DetallePedido{
			IDProducto:     p.ID,
			NombreProducto: p.Nombre,
			Cantidad:       l.Cantidad,
			ValorVenta:     p.Valor.Mul(decimalDesdeInt(l.Cantidad)),
		})
	}

	subtotal, iva, total := entity.CalcularTotales(detalles)
	return &dto.CotizacionPedido{
		Detalles: detalles,
		Totales:  dto.TotalesPedido{Subtotal: subtotal, IVA: iva, Total: total},
	}, nil
}

// Crear cotiza las líneas, arma la cabecera con los totales y da de alta el
// pedido. Exige cliente, vendedor y al menos una línea.
func (uc *PedidoUseCase) Crear(ctx context.Context, in dto.CrearPedidoRequest) (*dto.ResultadoForm, error) {
	tok, err := tokenActual(uc.sesiones)
	if err != nil {
		return nil, err
	}
	if in.IDCliente == "" || in.IDVendedor == "" || len(in.Lineas) == 0 {
		return nil, domain.ErrEntradaInvalida
	}
	cotizacion, err := uc.Cotizar(ctx, in.Lineas)
	if err != nil {
		return nil, err
	}
	cabecera := entity.Pedido{
		IDCliente:  in.IDCliente,
		IDVendedor: in.IDVendedor,
		Subtotal:   cotizacion.Totales.Subtotal,
		IVA:        cotizacion.Totales.IVA,
		Total:      cotizacion.Totales.Total,
	}
	creado, err := uc.pedidos.Crear(ctx, tok, cabecera, cotizacion.Detalles)
	if err != nil {
		return nil, err
	}
	registrar(uc.bitacora, "Pedido creado: "+creado.ID, entity.ActividadCrear, iconoCrear)
	return &dto.ResultadoForm{
		Action: "created",
		Data:   creado,
		Toast:  dto.NuevoToast(fmt.Sprintf("Pedido %q creado", creado.ID), dto.NivelExito),
	}, nil
}

// Actualizar reenvía solo la cabecera; las líneas de un pedido existente no se
// editan en este flujo.
func (uc *PedidoUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarPedidoRequest) (*dto.ResultadoForm, error) {
	tok, err := tokenActual(uc.sesiones)
	if err != nil {
		return nil, err
	}
	if in.IDCliente == "" || in.IDVendedor == "" {
		return nil, domain.ErrEntradaInvalida
	}
	actualizado, err := uc.pedidos.Actualizar(ctx, tok, id, entity.Pedido{
		IDCliente:  in.IDCliente,
		IDVendedor: in.IDVendedor,
		Subtotal:   in.Subtotal,
		IVA:        in.IVA,
		Total:      in.Total,
	})
	if err != nil {
		return nil, err
	}
	registrar(uc.bitacora, "Pedido actualizado: "+actualizado.ID, entity.ActividadActualizar, iconoActualizar)
	return &dto.ResultadoForm{
		Action: "updated",
		Data:   actualizado,
		Toast:  dto.NuevoToast(fmt.Sprintf("Pedido %q actualizado", actualizado.ID), dto.NivelExito),
	}, nil
}

// Confirmacion arma el diálogo previo a eliminar.
func (uc *PedidoUseCase) Confirmacion(id string) dto.Confirmacion {
	return dto.Confirmacion{
		Titulo:  "Eliminar pedido",
		Mensaje: fmt.Sprintf("¿Deseas eliminar el pedido %q?", id),
		Aceptar: "Eliminar",
		Rechazo: "Cancelar",
	}
}

// Eliminar borra el pedido. A diferencia de los catálogos, un pedido no es
// referenciado por otros registros: no hay rama especial para 409.
func (uc *PedidoUseCase) Eliminar(ctx context.Context, id string) (*dto.ResultadoEliminar, error) {
	tok, err := tokenActual(uc.sesiones)
	if err != nil {
		return nil, err
	}
	errRemoto := uc.pedidos.Eliminar(ctx, tok, id)
	if errRemoto == nil {
		registrar(uc.bitacora, "Pedido eliminado: "+id, entity.ActividadEliminar, iconoEliminar)
	}
	toast := toastEliminar(errRemoto, id, mensajesEliminar{
		exito:        func(n string) string { return fmt.Sprintf("Pedido %q eliminado", n) },
		generico:     "No se pudo eliminar el pedido",
		noEncontrado: "Pedido no encontrado",
	})
	return &dto.ResultadoEliminar{Eliminado: errRemoto == nil, Toast: toast}, nil
}

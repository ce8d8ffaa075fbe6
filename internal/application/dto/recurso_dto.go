package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/comercio-admin/internal/domain/entity"
)

// ClienteRequest datos del formulario de cliente. Solo el nombre es obligatorio;
// el resto de campos en blanco se normalizan a nulo antes de transmitir.
type ClienteRequest struct {
	Nombre    string `json:"Nombre_Cliente"`
	Direccion string `json:"Direccion_Cliente"`
	Telefono  string `json:"Telefono_Cliente"`
	Correo    string `json:"Correo_Cliente"`
}

// VendedorRequest datos del formulario de vendedor.
type VendedorRequest struct {
	Nombre    string `json:"Nombre_Vendedor"`
	Direccion string `json:"Direccion_Vendedor"`
	Telefono  string `json:"Telefono_Vendedor"`
	Correo    string `json:"Correo_Vendedor"`
}

// ProductoRequest datos del formulario de producto.
type ProductoRequest struct {
	Nombre       string          `json:"Nombre_Producto"`
	Descripcion  string          `json:"Descripcion_Producto"`
	Stock        int             `json:"Stock_Producto"`
	Valor        decimal.Decimal `json:"Valor_Producto"`
	UnidadMedida string          `json:"Unidad_Medida"`
}

// LineaPedidoRequest línea elegida en el formulario de pedido: producto y cantidad.
// El valor de venta se resuelve contra el catálogo de productos.
type LineaPedidoRequest struct {
	IDProducto string `json:"Id_Producto"`
	Cantidad   int    `json:"Cantidad"`
}

// CrearPedidoRequest alta de pedido: cabecera más al menos una línea.
type CrearPedidoRequest struct {
	IDCliente  string               `json:"Id_Cliente"`
	IDVendedor string               `json:"Id_Vendedor"`
	Lineas     []LineaPedidoRequest `json:"detalles"`
}

// ActualizarPedidoRequest edición de pedido: solo campos de cabecera,
// las líneas existentes no se reenvían en este flujo.
type ActualizarPedidoRequest struct {
	IDCliente  string          `json:"Id_Cliente"`
	IDVendedor string          `json:"Id_Vendedor"`
	Subtotal   decimal.Decimal `json:"Subtotal_Pedido"`
	IVA        decimal.Decimal `json:"IVA"`
	Total      decimal.Decimal `json:"Total_Pedido"`
}

// TotalesPedido desglose de totales calculado a partir de las líneas.
type TotalesPedido struct {
	Subtotal decimal.Decimal `json:"Subtotal_Pedido"`
	IVA      decimal.Decimal `json:"IVA"`
	Total    decimal.Decimal `json:"Total_Pedido"`
}

// CotizacionPedido líneas resueltas contra el catálogo más el desglose de totales.
type CotizacionPedido struct {
	Detalles []entity.DetallePedido `json:"detalles"`
	Totales  TotalesPedido          `json:"totales"`
}

// CatalogosPedido catálogos que alimentan los selectores del formulario de pedido.
// Cada lista se carga de forma independiente; una que falle llega vacía.
type CatalogosPedido struct {
	Clientes   []entity.Cliente  `json:"clientes"`
	Vendedores []entity.Vendedor `json:"vendedores"`
	Productos  []entity.Producto `json:"productos"`
}

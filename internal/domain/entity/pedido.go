package entity

import "github.com/shopspring/decimal"

// TasaIVA tasa de impuesto aplicada sobre el subtotal de un pedido.
var TasaIVA = decimal.NewFromFloat(0.12)

// Pedido cabecera de un pedido. Los totales los calcula el formulario antes
// de enviarlos; el servidor los persiste tal cual.
type Pedido struct {
	ID         string          `json:"Id_Pedido"`
	IDCliente  string          `json:"Id_Cliente"`
	IDVendedor string          `json:"Id_Vendedor"`
	Subtotal   decimal.Decimal `json:"Subtotal_Pedido"`
	IVA        decimal.Decimal `json:"IVA"`
	Total      decimal.Decimal `json:"Total_Pedido"`

	// Nombres que el listado del servidor trae ya resueltos para mostrar.
	NombreCliente  string `json:"Nombre_Cliente,omitempty"`
	NombreVendedor string `json:"Nombre_Vendedor,omitempty"`
}

// DetallePedido línea de un pedido: producto, cantidad y valor de venta.
type DetallePedido struct {
	IDProducto     string          `json:"Id_Producto"`
	NombreProducto string          `json:"Nombre_Producto,omitempty"`
	Cantidad       int             `json:"Cantidad"`
	ValorVenta     decimal.Decimal `json:"ValorVenta"`
	Descuento      decimal.Decimal `json:"Descuento"`
}

// Neto devuelve el importe neto de la línea (valor de venta menos descuento).
func (d DetallePedido) Neto() decimal.Decimal {
	return d.ValorVenta.Sub(d.Descuento)
}

// CalcularTotales recalcula subtotal, IVA y total a partir de las líneas.
// subtotal = Σ(ValorVenta − Descuento); IVA = subtotal × 0.12; total = subtotal + IVA.
func CalcularTotales(detalles []DetallePedido) (subtotal, iva, total decimal.Decimal) {
	subtotal = decimal.Zero
	for _, d := range detalles {
		subtotal = subtotal.Add(d.Neto())
	}
	iva = subtotal.Mul(TasaIVA)
	total = subtotal.Add(iva)
	return subtotal, iva, total
}

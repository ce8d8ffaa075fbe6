package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/comercio-admin/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Totales de pedido: subtotal = Σ(valor − descuento), IVA al 12%, total exacto
// en aritmética decimal. El vector 24 / 2.88 / 26.88 viene de dos líneas de
// 10 y 14 sin descuento.
// ──────────────────────────────────────────────────────────────────────────────

func linea(valor float64, descuento float64) entity.DetallePedido {
	return entity.DetallePedido{
		Cantidad:   1,
		ValorVenta: decimal.NewFromFloat(valor),
		Descuento:  decimal.NewFromFloat(descuento),
	}
}

func TestCalcularTotales_VectorExacto(t *testing.T) {
	subtotal, iva, total := entity.CalcularTotales([]entity.DetallePedido{
		linea(10, 0),
		linea(14, 0),
	})

	assert.True(t, subtotal.Equal(decimal.NewFromInt(24)), "subtotal = %s", subtotal)
	assert.True(t, iva.Equal(decimal.NewFromFloat(2.88)), "iva = %s", iva)
	assert.True(t, total.Equal(decimal.NewFromFloat(26.88)), "total = %s", total)
}

func TestCalcularTotales_DescuentoRestaDelSubtotal(t *testing.T) {
	subtotal, iva, total := entity.CalcularTotales([]entity.DetallePedido{
		linea(100, 20),
	})

	assert.True(t, subtotal.Equal(decimal.NewFromInt(80)))
	assert.True(t, iva.Equal(decimal.NewFromFloat(9.6)))
	assert.True(t, total.Equal(decimal.NewFromFloat(89.6)))
}

func TestCalcularTotales_SinLineas(t *testing.T) {
	subtotal, iva, total := entity.CalcularTotales(nil)

	assert.True(t, subtotal.IsZero())
	assert.True(t, iva.IsZero())
	assert.True(t, total.IsZero())
}

func TestDetallePedido_Neto(t *testing.T) {
	d := linea(15.50, 0.50)
	assert.True(t, d.Neto().Equal(decimal.NewFromInt(15)))
}

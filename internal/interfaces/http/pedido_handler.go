package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comercio-admin/internal/application/dto"
	"github.com/jhoicas/comercio-admin/internal/application/recurso"
)

type PedidoHandler struct {
	uc *recurso.PedidoUseCase
}

func NewPedidoHandler(uc *recurso.PedidoUseCase) *PedidoHandler {
	return &PedidoHandler{uc: uc}
}

func (h *PedidoHandler) Listar(c *fiber.Ctx) error {
	pedidos, err := h.uc.Listar(c.UserContext(), c.Query("q"))
	if err != nil {
		return responderFalloCarga(c, err, "Error cargando pedidos")
	}
	return c.JSON(pedidos)
}

// Catalogos entrega clientes, vendedores y productos en una sola respuesta
// para poblar el formulario de pedido.
func (h *PedidoHandler) Catalogos(c *fiber.Ctx) error {
	out, err := h.uc.Catalogos(c.UserContext())
	if err != nil {
		return responderFalloCarga(c, err, "Error cargando catálogos")
	}
	return c.JSON(out)
}

// Totales cotiza las líneas recibidas sin crear nada: el formulario la usa
// para recalcular subtotal, IVA y total en cada cambio.
func (h *PedidoHandler) Totales(c *fiber.Ctx) error {
	var in dto.CrearPedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NuevoToast("Cuerpo de la petición inválido", dto.NivelError))
	}
	out, err := h.uc.Cotizar(c.UserContext(), in.Lineas)
	if err != nil {
		return responderFalloForm(c, err, "Revisa las líneas del pedido", "No se pudieron calcular los totales")
	}
	return c.JSON(out)
}

func (h *PedidoHandler) Detalle(c *fiber.Ctx) error {
	detalles, err := h.uc.Detalle(c.UserContext(), c.Params("id"))
	if err != nil {
		return responderFalloCarga(c, err, "Error obteniendo detalle del pedido")
	}
	return c.JSON(detalles)
}

func (h *PedidoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearPedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NuevoToast("Cuerpo de la petición inválido", dto.NivelError))
	}
	out, err := h.uc.Crear(c.UserContext(), in)
	if err != nil {
		return responderFalloForm(c, err, "Completa cliente, vendedor y al menos un producto", "No se pudo guardar el pedido")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *PedidoHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.ActualizarPedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NuevoToast("Cuerpo de la petición inválido", dto.NivelError))
	}
	out, err := h.uc.Actualizar(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return responderFalloForm(c, err, "Cliente y vendedor son obligatorios", "No se pudo guardar el pedido")
	}
	return c.JSON(out)
}

func (h *PedidoHandler) Confirmacion(c *fiber.Ctx) error {
	return c.JSON(h.uc.Confirmacion(c.Params("id")))
}

func (h *PedidoHandler) Eliminar(c *fiber.Ctx) error {
	out, err := h.uc.Eliminar(c.UserContext(), c.Params("id"))
	if err != nil {
		return responderFalloCarga(c, err, "No se pudo eliminar el pedido")
	}
	return c.JSON(out)
}

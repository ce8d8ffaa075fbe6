package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comercio-admin/internal/application/dto"
	"github.com/jhoicas/comercio-admin/internal/application/recurso"
)

type ClienteHandler struct {
	uc *recurso.ClienteUseCase
}

func NewClienteHandler(uc *recurso.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// Listar devuelve los clientes, opcionalmente filtrados por ?q=.
func (h *ClienteHandler) Listar(c *fiber.Ctx) error {
	clientes, err := h.uc.Listar(c.UserContext(), c.Query("q"))
	if err != nil {
		return responderFalloCarga(c, err, "Error cargando clientes")
	}
	return c.JSON(clientes)
}

func (h *ClienteHandler) Crear(c *fiber.Ctx) error {
	var in dto.ClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NuevoToast("Cuerpo de la petición inválido", dto.NivelError))
	}
	out, err := h.uc.Crear(c.UserContext(), in)
	if err != nil {
		return responderFalloForm(c, err, "El nombre del cliente es obligatorio", "No se pudo guardar el cliente")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ClienteHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.ClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NuevoToast("Cuerpo de la petición inválido", dto.NivelError))
	}
	out, err := h.uc.Actualizar(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return responderFalloForm(c, err, "El nombre del cliente es obligatorio", "No se pudo guardar el cliente")
	}
	return c.JSON(out)
}

// Confirmacion entrega el diálogo previo al borrado; el nombre viaja por query
// para componer el mensaje sin otra consulta al servidor.
func (h *ClienteHandler) Confirmacion(c *fiber.Ctx) error {
	return c.JSON(h.uc.Confirmacion(c.Query("nombre")))
}

// Eliminar ejecuta el borrado ya confirmado. El desenlace, incluido el rechazo
// por pedidos asociados, viaja como notificación en un 200.
func (h *ClienteHandler) Eliminar(c *fiber.Ctx) error {
	out, err := h.uc.Eliminar(c.UserContext(), c.Params("id"), c.Query("nombre"))
	if err != nil {
		return responderFalloCarga(c, err, "No se pudo eliminar el cliente")
	}
	return c.JSON(out)
}

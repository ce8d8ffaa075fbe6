package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comercio-admin/internal/application/dto"
	"github.com/jhoicas/comercio-admin/internal/application/recurso"
)

type VendedorHandler struct {
	uc *recurso.VendedorUseCase
}

func NewVendedorHandler(uc *recurso.VendedorUseCase) *VendedorHandler {
	return &VendedorHandler{uc: uc}
}

func (h *VendedorHandler) Listar(c *fiber.Ctx) error {
	vendedores, err := h.uc.Listar(c.UserContext(), c.Query("q"))
	if err != nil {
		return responderFalloCarga(c, err, "Error cargando vendedores")
	}
	return c.JSON(vendedores)
}

func (h *VendedorHandler) Crear(c *fiber.Ctx) error {
	var in dto.VendedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NuevoToast("Cuerpo de la petición inválido", dto.NivelError))
	}
	out, err := h.uc.Crear(c.UserContext(), in)
	if err != nil {
		return responderFalloForm(c, err, "El nombre del vendedor es obligatorio", "No se pudo guardar el vendedor")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *VendedorHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.VendedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NuevoToast("Cuerpo de la petición inválido", dto.NivelError))
	}
	out, err := h.uc.Actualizar(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return responderFalloForm(c, err, "El nombre del vendedor es obligatorio", "No se pudo guardar el vendedor")
	}
	return c.JSON(out)
}

func (h *VendedorHandler) Confirmacion(c *fiber.Ctx) error {
	return c.JSON(h.uc.Confirmacion(c.Query("nombre")))
}

func (h *VendedorHandler) Eliminar(c *fiber.Ctx) error {
	out, err := h.uc.Eliminar(c.UserContext(), c.Params("id"), c.Query("nombre"))
	if err != nil {
		return responderFalloCarga(c, err, "No se pudo eliminar el vendedor")
	}
	return c.JSON(out)
}

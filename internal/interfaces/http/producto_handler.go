package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comercio-admin/internal/application/dto"
	"github.com/jhoicas/comercio-admin/internal/application/recurso"
)

type ProductoHandler struct {
	uc *recurso.ProductoUseCase
}

func NewProductoHandler(uc *recurso.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

func (h *ProductoHandler) Listar(c *fiber.Ctx) error {
	productos, err := h.uc.Listar(c.UserContext(), c.Query("q"))
	if err != nil {
		return responderFalloCarga(c, err, "Error cargando productos")
	}
	return c.JSON(productos)
}

func (h *ProductoHandler) Crear(c *fiber.Ctx) error {
	var in dto.ProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NuevoToast("Cuerpo de la petición inválido", dto.NivelError))
	}
	out, err := h.uc.Crear(c.UserContext(), in)
	if err != nil {
		return responderFalloForm(c, err, "El nombre del producto es obligatorio", "No se pudo guardar el producto")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ProductoHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.ProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NuevoToast("Cuerpo de la petición inválido", dto.NivelError))
	}
	out, err := h.uc.Actualizar(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return responderFalloForm(c, err, "El nombre del producto es obligatorio", "No se pudo guardar el producto")
	}
	return c.JSON(out)
}

func (h *ProductoHandler) Confirmacion(c *fiber.Ctx) error {
	return c.JSON(h.uc.Confirmacion(c.Query("nombre")))
}

func (h *ProductoHandler) Eliminar(c *fiber.Ctx) error {
	out, err := h.uc.Eliminar(c.UserContext(), c.Params("id"), c.Query("nombre"))
	if err != nil {
		return responderFalloCarga(c, err, "No se pudo eliminar el producto")
	}
	return c.JSON(out)
}

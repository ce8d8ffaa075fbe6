package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comercio-admin/internal/application/dto"
	"github.com/jhoicas/comercio-admin/internal/application/usuarios"
)

// UsuariosHandler gestiona los logins de base de datos; solo se monta bajo
// el área sa con el guard de owner.
type UsuariosHandler struct {
	uc *usuarios.UseCase
}

func NewUsuariosHandler(uc *usuarios.UseCase) *UsuariosHandler {
	return &UsuariosHandler{uc: uc}
}

func (h *UsuariosHandler) CrearLogin(c *fiber.Ctx) error {
	var in dto.CrearLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NuevoToast("Cuerpo de la petición inválido", dto.NivelError))
	}
	out, err := h.uc.CrearLogin(c.UserContext(), in)
	if err != nil {
		return responderFalloForm(c, err, "Usuario, contraseña y rol son obligatorios", "Error creando usuario")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *UsuariosHandler) Roles(c *fiber.Ctx) error {
	return c.JSON(h.uc.Roles())
}

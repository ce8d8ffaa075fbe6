package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comercio-admin/internal/application/auth"
	"github.com/jhoicas/comercio-admin/internal/application/dto"
	"github.com/jhoicas/comercio-admin/internal/domain"
)

type AuthHandler struct {
	uc *auth.UseCase
}

func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Pantalla de login. Solo confirma que la ruta existe; las credenciales
// viajan por POST.
func (h *AuthHandler) Pantalla(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Inicia sesión para continuar"})
}

// Login autentica contra el servidor remoto y deja la sesión persistida.
// Responde el destino al que debe navegar el cliente según su rol.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "CUERPO_INVALIDO",
			Message: "Cuerpo de la petición inválido",
		})
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrServidorNoDisponible) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "SERVIDOR_NO_DISPONIBLE",
				Message: "No se pudo conectar con el servidor. Intenta más tarde.",
			})
		}
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code:    "LOGIN_INVALIDO",
			Message: mensajeRemoto(err, "Login inválido"),
		})
	}
	return c.JSON(out)
}

// Logout descarta la sesión local y vuelve al login. Siempre tiene éxito.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    "LOGOUT_FALLIDO",
			Message: "No se pudo cerrar la sesión",
		})
	}
	return c.Redirect("/login", fiber.StatusFound)
}

// Sesion expone el estado actual para que el cliente decida qué mostrar.
func (h *AuthHandler) Sesion(c *fiber.Ctx) error {
	return c.JSON(h.uc.Info())
}

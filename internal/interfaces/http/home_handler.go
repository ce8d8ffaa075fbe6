package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comercio-admin/internal/application/auth"
	"github.com/jhoicas/comercio-admin/internal/application/bitacora"
)

// HomeHandler arma las dos pantallas de inicio. La de admin muestra el
// usuario, su rol efectivo y la actividad reciente; la de sa añade el acceso
// a la gestión de logins.
type HomeHandler struct {
	auth     *auth.UseCase
	bitacora *bitacora.UseCase
}

func NewHomeHandler(a *auth.UseCase, b *bitacora.UseCase) *HomeHandler {
	return &HomeHandler{auth: a, bitacora: b}
}

func (h *HomeHandler) Admin(c *fiber.Ctx) error {
	s := h.auth.Info()
	return c.JSON(fiber.Map{
		"username":       s.Username,
		"dbRole":         s.DbRole,
		"isOwner":        s.EsOwner,
		"canRead":        s.PuedeLeer,
		"canWrite":       s.PuedeEscribir,
		"recentActivity": h.bitacora.Recientes(),
	})
}

func (h *HomeHandler) SA(c *fiber.Ctx) error {
	s := h.auth.Info()
	return c.JSON(fiber.Map{
		"username":       s.Username,
		"dbRole":         s.DbRole,
		"isOwner":        s.EsOwner,
		"recentActivity": h.bitacora.Recientes(),
		"sections":       []string{"usuarios", "cliente", "vendedor", "producto", "pedido"},
	})
}

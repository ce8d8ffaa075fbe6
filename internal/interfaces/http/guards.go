package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comercio-admin/internal/domain/repository"
)

// Guards de navegación: funciones puras sobre el estado de sesión evaluadas
// de forma síncrona al momento de atender la ruta. Ninguna reintenta ni
// suspende; todas resuelven con redirección o con paso al handler.

// RequireAuth exige sesión iniciada; sin ella redirige al login.
func RequireAuth(sesiones repository.SesionRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !sesiones.Actual().Autenticada() {
			return c.Redirect("/login", fiber.StatusFound)
		}
		return c.Next()
	}
}

// RoleRoute despacha una ruta genérica de recurso al área que corresponde a
// la sesión: /sa/<recurso> para el usuario "sa", /admin/<recurso> para el
// resto, /login sin sesión. La ruta genérica nunca se sirve directamente.
func RoleRoute(sesiones repository.SesionRepository, recurso string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := sesiones.Actual()
		if !s.Autenticada() {
			return c.Redirect("/login", fiber.StatusFound)
		}
		return c.Redirect("/"+s.Area()+"/"+recurso, fiber.StatusFound)
	}
}

// OwnerOnly protege la pantalla de mayor privilegio: exige db_owner y usuario
// "sa" a la vez. Las dos condiciones son independientes y ambas deben valer;
// cualquier otra combinación vuelve al home de admin.
func OwnerOnly(sesiones repository.SesionRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := sesiones.Actual()
		if !s.Autenticada() {
			return c.Redirect("/login", fiber.StatusFound)
		}
		if !s.EsOwner() || !s.EsSA() {
			return c.Redirect("/home-admin", fiber.StatusFound)
		}
		return c.Next()
	}
}

// NotSA bloquea las pantallas del área admin para el usuario "sa",
// devolviéndolo a su propio home.
func NotSA(sesiones repository.SesionRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := sesiones.Actual()
		if !s.Autenticada() {
			return c.Redirect("/login", fiber.StatusFound)
		}
		if s.EsSA() {
			return c.Redirect("/home-sa", fiber.StatusFound)
		}
		return c.Next()
	}
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comercio-admin/internal/application/dto"
	"github.com/jhoicas/comercio-admin/internal/domain"
)

// Toda falla remota se convierte aquí en una respuesta dirigida al usuario;
// ningún error de fetch se propaga más allá del handler.

// esFalloDeSesion agrupa "no hay sesión local" y "el servidor rechazó el
// token" (401): ambos fuerzan volver al login.
func esFalloDeSesion(err error) bool {
	return errors.Is(err, domain.ErrSesionAusente) || errors.Is(err, domain.ErrNoAutorizado)
}

// estadoRemoto elige el código HTTP con el que responder un fallo remoto.
func estadoRemoto(err error) int {
	var re *domain.RemoteError
	if errors.As(err, &re) && re.Status > 0 {
		return re.Status
	}
	if errors.Is(err, domain.ErrServidorNoDisponible) {
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusBadGateway
}

// mensajeRemoto prefiere el mensaje del servidor y cae al texto genérico.
func mensajeRemoto(err error, generico string) string {
	var re *domain.RemoteError
	if errors.As(err, &re) && re.Mensaje != "" {
		return re.Mensaje
	}
	return generico
}

// entradaInvalidaLocal distingue la validación propia del formulario de un
// 400 remoto (que también envuelve ErrEntradaInvalida, pero como RemoteError).
func entradaInvalidaLocal(err error) bool {
	var re *domain.RemoteError
	return errors.Is(err, domain.ErrEntradaInvalida) && !errors.As(err, &re)
}

// responderFalloCarga fallo al cargar un listado: 401/sesión → login,
// el resto una notificación genérica de error.
func responderFalloCarga(c *fiber.Ctx, err error, generico string) error {
	if esFalloDeSesion(err) {
		return c.Redirect("/login", fiber.StatusFound)
	}
	return c.Status(estadoRemoto(err)).JSON(dto.NuevoToast(generico, dto.NivelError))
}

// responderFalloForm fallo al enviar un formulario: validación local con su
// mensaje propio, lo demás con el mensaje del servidor o el genérico.
func responderFalloForm(c *fiber.Ctx, err error, msgInvalido, generico string) error {
	if esFalloDeSesion(err) {
		return c.Redirect("/login", fiber.StatusFound)
	}
	if entradaInvalidaLocal(err) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NuevoToast(msgInvalido, dto.NivelError))
	}
	return c.Status(estadoRemoto(err)).JSON(dto.NuevoToast(mensajeRemoto(err, generico), dto.NivelError))
}

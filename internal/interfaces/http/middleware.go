package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/comercio-admin/pkg/logger"
)

// RequestLogger asigna un id a cada petición y deja una línea estructurada
// con método, ruta, estado y duración al terminar.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := uuid.NewString()
		c.Locals("request_id", id)
		inicio := time.Now()

		err := c.Next()

		log.Info().
			Str("request_id", id).
			Str("metodo", c.Method()).
			Str("ruta", c.Path()).
			Int("estado", c.Response().StatusCode()).
			Dur("duracion", time.Since(inicio)).
			Msg("peticion atendida")
		return err
	}
}

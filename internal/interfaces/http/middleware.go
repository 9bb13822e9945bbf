package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/gfarias/locadora-api/pkg/logger"
)

// RequestLogger registra cada requisição atendida com um id de correlação,
// método, rota, status e duração.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inicio := time.Now()
		requestID := uuid.New().String()
		c.Locals("request_id", requestID)

		err := c.Next()

		log.Info().
			Str("request_id", requestID).
			Str("metodo", c.Method()).
			Str("rota", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duracao", time.Since(inicio)).
			Str("ip", c.IP()).
			Msg("requisição HTTP")
		return err
	}
}

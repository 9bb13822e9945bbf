package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/gfarias/locadora-api/internal/application/dto"
	"github.com/gfarias/locadora-api/internal/domain"
)

// respondeErro converte erros de domínio em status HTTP com corpo {"erro": ...}.
// Falhas de banco e inesperadas expõem a mensagem subjacente no corpo; só o
// adaptador de catálogo esconde a causa do chamador.
func respondeErro(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Erro: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Erro: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Erro: err.Error()})
	case errors.Is(err, domain.ErrUpstream):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Erro: err.Error()})
	default:
		log.Error().Err(err).Msg("falha de armazenamento ou inesperada")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Erro: "Erro interno no DB: " + err.Error()})
	}
}

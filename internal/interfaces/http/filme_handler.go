package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gfarias/locadora-api/internal/application/dto"
	"github.com/gfarias/locadora-api/internal/application/usecase"
	"github.com/gfarias/locadora-api/internal/domain"
)

// FilmeHandler atende a busca externa de filmes.
type FilmeHandler struct {
	uc *usecase.FilmeUseCase
}

// NewFilmeHandler constrói o handler.
func NewFilmeHandler(uc *usecase.FilmeUseCase) *FilmeHandler {
	return &FilmeHandler{uc: uc}
}

// BuscaExterna godoc
// @Summary      Buscar filme no catálogo externo
// @Tags         filmes
// @Produce      json
// @Param        titulo  query  string  true  "Título do filme"
// @Success      200  {object}  dto.FilmeEncontrado
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /filmes/busca_externa [get]
func (h *FilmeHandler) BuscaExterna(c *fiber.Ctx) error {
	titulo := c.Query("titulo")

	filme, err := h.uc.BuscaExterna(c.UserContext(), titulo)
	if err != nil {
		switch {
		// Na superfície da busca externa, "não encontrado" é erro de envio de
		// dados (400), distinto do catálogo fora do ar (503).
		case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Erro: err.Error()})
		case errors.Is(err, domain.ErrUpstream):
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Erro: err.Error()})
		default:
			return respondeErro(c, err)
		}
	}
	return c.JSON(filme)
}

package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/gfarias/locadora-api/internal/application/dto"
	"github.com/gfarias/locadora-api/internal/application/usecase"
)

// ClienteHandler atende as rotas HTTP do registro de clientes.
type ClienteHandler struct {
	uc *usecase.ClienteUseCase
}

// NewClienteHandler constrói o handler.
func NewClienteHandler(uc *usecase.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// Cadastra godoc
// @Summary      Cadastrar cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CadastraClienteRequest  true  "Dados do cliente"
// @Success      201   {object}  dto.ClienteCadastradoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /clientes/ [post]
func (h *ClienteHandler) Cadastra(c *fiber.Ctx) error {
	var in dto.CadastraClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Erro: "Corpo JSON inválido."})
	}

	criado, err := h.uc.Cadastra(c.UserContext(), in)
	if err != nil {
		return respondeErro(c, err)
	}

	log.Info().Int64("cliente_id", criado.ID).Msg("cliente cadastrado")
	return c.Status(fiber.StatusCreated).JSON(dto.ClienteCadastradoResponse{
		Mensagem: "Cliente cadastrado!",
		Cliente:  criado,
	})
}

// Lista godoc
// @Summary      Listar clientes
// @Tags         clientes
// @Produce      json
// @Success      200  {array}  entity.Cliente
// @Router       /clientes/ [get]
func (h *ClienteHandler) Lista(c *fiber.Ctx) error {
	clientes, err := h.uc.Lista(c.UserContext())
	if err != nil {
		return respondeErro(c, err)
	}
	return c.JSON(clientes)
}

// Atualiza godoc
// @Summary      Atualizar cliente (parcial)
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        id    path  int             true  "ID do cliente"
// @Param        body  body  map[string]any  true  "Campos a atualizar"
// @Success      200   {object}  dto.MensagemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /clientes/{id} [put]
func (h *ClienteHandler) Atualiza(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		// Id não numérico se comporta como rota inexistente.
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Erro: "Cliente não encontrado."})
	}

	campos := map[string]any{}
	if corpo := c.Body(); len(corpo) > 0 {
		if err := json.Unmarshal(corpo, &campos); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Erro: "Corpo JSON inválido."})
		}
	}

	if err := h.uc.Atualiza(c.UserContext(), int64(id), campos); err != nil {
		return respondeErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Cliente atualizado!"})
}

// Remove godoc
// @Summary      Remover cliente
// @Tags         clientes
// @Param        id  path  int  true  "ID do cliente"
// @Success      204  "Sem conteúdo"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /clientes/{id} [delete]
func (h *ClienteHandler) Remove(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Erro: "Cliente não encontrado."})
	}

	if err := h.uc.Remove(c.UserContext(), int64(id)); err != nil {
		return respondeErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

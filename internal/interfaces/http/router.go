package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gfarias/locadora-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ClienteUC *usecase.ClienteUseCase
	FilmeUC   *usecase.FilmeUseCase
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	// Rota raiz, fora da documentação.
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API da Locadora está rodando! Acesse /docs para a documentação.")
	})

	clientes := app.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Cadastra)
	clientes.Get("/", clienteHandler.Lista)
	clientes.Put("/:id", clienteHandler.Atualiza)
	clientes.Delete("/:id", clienteHandler.Remove)

	filmes := app.Group("/filmes")
	filmeHandler := NewFilmeHandler(deps.FilmeUC)
	filmes.Get("/busca_externa", filmeHandler.BuscaExterna)
}

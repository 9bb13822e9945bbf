package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gfarias/locadora-api/internal/application/dto"
	"github.com/gfarias/locadora-api/internal/application/usecase"
	"github.com/gfarias/locadora-api/internal/infrastructure/sqlite"
	"github.com/gfarias/locadora-api/internal/infrastructure/tmdb"
	apphttp "github.com/gfarias/locadora-api/internal/interfaces/http"
	"github.com/gfarias/locadora-api/pkg/config"
	"github.com/gfarias/locadora-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	db, err := sqlite.Abre(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Str("caminho", cfg.DB.Caminho).Msg("abrir banco SQLite")
	}
	defer db.Close()

	// Esquema não inicializado é condição fatal de startup.
	if err := db.GaranteEsquema(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("inicializar esquema do banco")
	}

	txRunner := sqlite.NewTxRunner(db)
	clienteUC := usecase.NewClienteUseCase(txRunner)

	catalogo := tmdb.NewClient(tmdb.Config{
		APIKey:   cfg.TMDB.APIKey,
		BaseURL:  cfg.TMDB.BaseURL,
		Language: cfg.TMDB.Language,
		Timeout:  cfg.TMDB.Timeout,
	})
	filmeUC := usecase.NewFilmeUseCase(catalogo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		// Toda falha que escapa dos handlers (inclusive panics recuperados)
		// ainda produz corpo JSON com a chave "erro".
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			codigo := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				codigo = fe.Code
			}
			if codigo == fiber.StatusInternalServerError {
				return c.Status(codigo).JSON(dto.ErrorResponse{Erro: "Erro inesperado: " + err.Error()})
			}
			return c.Status(codigo).JSON(dto.ErrorResponse{Erro: err.Error()})
		},
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(apphttp.RequestLogger(log))

	// Swagger UI em /docs servindo o documento OpenAPI commitado.
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "API Sistema de Gestão de Locadora",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	apphttp.Router(app, apphttp.RouterDeps{
		ClienteUC: clienteUC,
		FilmeUC:   filmeUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP no ar")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tponsmiquel/almacen/internal/application/auth"
	"github.com/tponsmiquel/almacen/internal/application/orders"
	"github.com/tponsmiquel/almacen/internal/application/usecase"
	"github.com/tponsmiquel/almacen/internal/infrastructure/mail"
	"github.com/tponsmiquel/almacen/internal/infrastructure/postgres"
	httpRouter "github.com/tponsmiquel/almacen/internal/interfaces/http"
	"github.com/tponsmiquel/almacen/pkg/config"
	"github.com/tponsmiquel/almacen/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, "info")
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	articleRepo := postgres.NewArticleRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	entryRepo := postgres.NewEntryRepository(pool)
	exitRepo := postgres.NewExitRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	notifier := mail.NewNotifier(cfg.Mail)

	articleUC := usecase.NewArticleUseCase(articleRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	entryUC := usecase.NewEntryUseCase(entryRepo, articleRepo)
	exitUC := usecase.NewExitUseCase(exitRepo, articleRepo, clientRepo)
	submitBatchUC := orders.NewSubmitBatchUseCase(clientRepo, articleRepo, exitRepo, notifier)
	authorizeUC := orders.NewAuthorizeOrderUseCase(exitRepo, txRunner)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ArticleUC:   articleUC,
		ClientUC:    clientUC,
		EntryUC:     entryUC,
		ExitUC:      exitUC,
		SubmitBatch: submitBatchUC,
		AuthorizeUC: authorizeUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/boleteria-api/internal/application/sales"
	"github.com/jhoicas/boleteria-api/internal/application/usecase"
	"github.com/jhoicas/boleteria-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/boleteria-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/boleteria-api/internal/interfaces/http"
	"github.com/jhoicas/boleteria-api/pkg/config"
	"github.com/jhoicas/boleteria-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Estado enteramente en memoria de proceso: se pierde al apagar.
	customerRepo := memory.NewCustomerRepository()
	ticketRepo := memory.NewTicketRepository()
	purchaseRepo := memory.NewPurchaseRepository()

	customerUC := usecase.NewCustomerUseCase(customerRepo)
	ticketUC := usecase.NewTicketUseCase(ticketRepo)
	purchaseUC := sales.NewPurchaseUseCase(customerRepo, ticketRepo, purchaseRepo, sales.NewCodeSequence())

	// PDF: tirilla de compra finalizada
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator(cfg.App.Venue)
	receiptUC := sales.NewReceiptUseCase(purchaseRepo, receiptGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Boleteria API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC: customerUC,
		TicketUC:   ticketUC,
		PurchaseUC: purchaseUC,
		ReceiptUC:  receiptUC,
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

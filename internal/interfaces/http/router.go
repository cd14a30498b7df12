package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/boleteria-api/internal/application/sales"
	"github.com/jhoicas/boleteria-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *usecase.CustomerUseCase
	TicketUC   *usecase.TicketUseCase
	PurchaseUC *sales.PurchaseUseCase
	ReceiptUC  *sales.ReceiptUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Customers (colaborador administrativo)
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:email", customerHandler.GetByEmail)
	customers.Put("/:email", customerHandler.Update)
	customers.Delete("/:email", customerHandler.Delete)

	// Tickets (colaborador administrativo)
	tickets := api.Group("/tickets")
	ticketHandler := NewTicketHandler(deps.TicketUC)
	tickets.Post("/", ticketHandler.Create)
	tickets.Get("/", ticketHandler.List)
	tickets.Get("/:name", ticketHandler.GetByName)
	tickets.Put("/:name", ticketHandler.Update)
	tickets.Delete("/:name", ticketHandler.Delete)

	// Purchases (flujo de venta)
	purchases := api.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC, deps.ReceiptUC)
	purchases.Post("/", purchaseHandler.Start)
	purchases.Get("/", purchaseHandler.List)
	// /total va antes de /:code para que el path no se capture como código
	purchases.Get("/total", purchaseHandler.FinalizedTotal)
	purchases.Get("/:code", purchaseHandler.Get)
	purchases.Post("/:code/items", purchaseHandler.AddItem)
	purchases.Post("/:code/finalize", purchaseHandler.Finalize)
	purchases.Get("/:code/receipt", purchaseHandler.Receipt)
}

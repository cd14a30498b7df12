package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StartPurchaseRequest entrada para iniciar una compra.
type StartPurchaseRequest struct {
	CustomerEmail string `json:"customer_email" validate:"required,email"`
}

// AddItemRequest entrada para agregar un item a una compra abierta.
type AddItemRequest struct {
	Ticket   string `json:"ticket" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// PurchaseItemResponse salida de una línea de compra.
type PurchaseItemResponse struct {
	ID        string          `json:"id"`
	Ticket    string          `json:"ticket"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// PurchaseResponse salida de una compra.
type PurchaseResponse struct {
	Code      string                 `json:"code"`
	Customer  string                 `json:"customer"`
	Status    string                 `json:"status"`
	Items     []PurchaseItemResponse `json:"items"`
	Total     decimal.Decimal        `json:"total"`
	CreatedAt time.Time              `json:"created_at"`
}

// FinalizedTotalResponse salida del agregado de ventas finalizadas.
type FinalizedTotalResponse struct {
	Total decimal.Decimal `json:"total"`
}

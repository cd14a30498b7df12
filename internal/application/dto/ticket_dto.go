package dto

import "github.com/shopspring/decimal"

// CreateTicketRequest entrada para crear un tipo de boleta.
type CreateTicketRequest struct {
	Name      string          `json:"name" validate:"required,min=1,max=100"`
	Price     decimal.Decimal `json:"price"`
	Available int             `json:"available" validate:"min=0"`
}

// UpdateTicketRequest entrada para actualizar precio y/o disponibilidad.
// El stock se reemplaza administrativamente; las ventas pasan por la compra.
type UpdateTicketRequest struct {
	Price     *decimal.Decimal `json:"price"`
	Available *int             `json:"available"`
}

// TicketResponse salida de un tipo de boleta.
type TicketResponse struct {
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Available int             `json:"available"`
}

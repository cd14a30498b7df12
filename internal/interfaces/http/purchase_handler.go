package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/boleteria-api/internal/application/dto"
	"github.com/jhoicas/boleteria-api/internal/application/sales"
	"github.com/jhoicas/boleteria-api/internal/domain"
)

// PurchaseHandler maneja el flujo de venta. Aquí termina la propagación de
// los errores de dominio: cada uno se traduce a un cuerpo {code, message}
// y nunca sube más allá de esta capa.
type PurchaseHandler struct {
	uc      *sales.PurchaseUseCase
	receipt *sales.ReceiptUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(uc *sales.PurchaseUseCase, receipt *sales.ReceiptUseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc, receipt: receipt}
}

// Start POST /api/purchases
func (h *PurchaseHandler) Start(c *fiber.Ctx) error {
	var in dto.StartPurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CustomerEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customer_email es requerido"})
	}
	purchase, err := h.uc.Start(in.CustomerEmail)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(purchase)
}

// AddItem POST /api/purchases/:code/items
func (h *PurchaseHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	purchase, err := h.uc.AddItem(c.Params("code"), in.Ticket, in.Quantity)
	if err != nil {
		return purchaseError(c, err)
	}
	return c.JSON(purchase)
}

// Finalize POST /api/purchases/:code/finalize
func (h *PurchaseHandler) Finalize(c *fiber.Ctx) error {
	purchase, err := h.uc.Finalize(c.Params("code"))
	if err != nil {
		return purchaseError(c, err)
	}
	return c.JSON(purchase)
}

// Get GET /api/purchases/:code
func (h *PurchaseHandler) Get(c *fiber.Ctx) error {
	purchase, err := h.uc.Get(c.Params("code"))
	if err != nil {
		return purchaseError(c, err)
	}
	return c.JSON(purchase)
}

// List GET /api/purchases
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// FinalizedTotal GET /api/purchases/total
func (h *PurchaseHandler) FinalizedTotal(c *fiber.Ctx) error {
	total, err := h.uc.FinalizedTotal()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(total)
}

// Receipt GET /api/purchases/:code/receipt
func (h *PurchaseHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, err := h.receipt.Generate(c.UserContext(), c.Params("code"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "compra finalizada no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+c.Params("code")+`.pdf"`)
	return c.Send(pdfBytes)
}

// purchaseError traduce los errores de negocio del flujo de venta.
func purchaseError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "compra o tipo de boleta no encontrado"})
	case domain.ErrInvalidQuantity:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "la cantidad debe ser mayor que cero"})
	case domain.ErrInsufficientStock:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "no hay boletas suficientes"})
	case domain.ErrPurchaseFinalized:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PURCHASE_FINALIZED", Message: "la compra ya está finalizada"})
	case domain.ErrEmptyPurchase:
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "EMPTY_PURCHASE", Message: "no se puede finalizar una compra sin items"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

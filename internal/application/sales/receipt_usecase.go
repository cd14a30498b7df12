package sales

import (
	"context"

	"github.com/jhoicas/boleteria-api/internal/domain"
	"github.com/jhoicas/boleteria-api/internal/domain/entity"
	"github.com/jhoicas/boleteria-api/internal/domain/repository"
)

// ReceiptUseCase genera el PDF de una compra finalizada. Las compras
// abiertas no tienen tirilla: todavía no son un documento público.
type ReceiptUseCase struct {
	purchaseRepo repository.PurchaseRepository
	generator    ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(purchaseRepo repository.PurchaseRepository, generator ReceiptPDFGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{purchaseRepo: purchaseRepo, generator: generator}
}

// Generate busca la compra finalizada y devuelve los bytes del PDF.
func (uc *ReceiptUseCase) Generate(ctx context.Context, code string) ([]byte, error) {
	purchase, err := uc.purchaseRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if purchase == nil || purchase.Status() != entity.PurchaseStatusFinalized {
		return nil, domain.ErrNotFound
	}
	return uc.generator.GenerateReceiptPDF(ctx, purchase)
}

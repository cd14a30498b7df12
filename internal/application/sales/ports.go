package sales

import (
	"context"

	"github.com/jhoicas/boleteria-api/internal/domain/entity"
)

// ReceiptPDFGenerator genera la representación gráfica (tirilla PDF) de una
// compra finalizada. Implementado en infrastructure/pdf.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, purchase *entity.Purchase) ([]byte, error)
}

// Package sales implementa el flujo de venta: iniciar una compra, agregar
// items con descuento de stock y finalizarla. Es la frontera donde los
// errores de dominio se absorben hacia la capa de presentación.
package sales

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/boleteria-api/internal/application/dto"
	"github.com/jhoicas/boleteria-api/internal/domain"
	"github.com/jhoicas/boleteria-api/internal/domain/entity"
	"github.com/jhoicas/boleteria-api/internal/domain/repository"
)

// PurchaseUseCase coordina el ciclo de vida de una compra. Las compras
// abiertas viven en una tabla propia del coordinador; el repositorio solo
// recibe la compra cuando Finalize tiene éxito, y después de eso la compra
// no vuelve a mutarse.
type PurchaseUseCase struct {
	customerRepo repository.CustomerRepository
	ticketRepo   repository.TicketRepository
	purchaseRepo repository.PurchaseRepository
	seq          *CodeSequence

	mu   sync.Mutex
	open map[string]*entity.Purchase
}

// NewPurchaseUseCase construye el coordinador con su propia secuencia de códigos.
func NewPurchaseUseCase(
	customerRepo repository.CustomerRepository,
	ticketRepo repository.TicketRepository,
	purchaseRepo repository.PurchaseRepository,
	seq *CodeSequence,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		customerRepo: customerRepo,
		ticketRepo:   ticketRepo,
		purchaseRepo: purchaseRepo,
		seq:          seq,
		open:         make(map[string]*entity.Purchase),
	}
}

// Start inicia una compra abierta para el cliente indicado. Genera el código
// siguiente de la secuencia y NO persiste todavía: la compra queda en la
// tabla de abiertas del coordinador.
func (uc *PurchaseUseCase) Start(customerEmail string) (*dto.PurchaseResponse, error) {
	customer, err := uc.customerRepo.GetByEmail(customerEmail)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	purchase := entity.NewPurchase(uc.seq.Next(), customer)

	uc.mu.Lock()
	uc.open[strings.ToLower(purchase.Code)] = purchase
	uc.mu.Unlock()

	return toPurchaseResponse(purchase), nil
}

// AddItem agrega un tipo de boleta con su cantidad a una compra abierta.
// Delegación pura: la validación de estado y stock es de Purchase/Ticket.
func (uc *PurchaseUseCase) AddItem(code, ticketName string, qty int) (*dto.PurchaseResponse, error) {
	purchase, err := uc.find(code)
	if err != nil {
		return nil, err
	}
	ticket, err := uc.ticketRepo.GetByName(ticketName)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := purchase.AddItem(ticket, qty); err != nil {
		return nil, err
	}
	return toPurchaseResponse(purchase), nil
}

// Finalize cierra la compra y solo entonces la persiste en el repositorio.
// Si Finalize falla (vacía o ya finalizada) no se guarda nada.
func (uc *PurchaseUseCase) Finalize(code string) (*dto.PurchaseResponse, error) {
	purchase, err := uc.find(code)
	if err != nil {
		return nil, err
	}
	if err := purchase.Finalize(); err != nil {
		return nil, err
	}
	if err := uc.purchaseRepo.Save(purchase); err != nil {
		return nil, err
	}
	uc.mu.Lock()
	delete(uc.open, strings.ToLower(code))
	uc.mu.Unlock()

	return toPurchaseResponse(purchase), nil
}

// Get busca una compra por código, primero entre las abiertas y luego en el
// repositorio de finalizadas.
func (uc *PurchaseUseCase) Get(code string) (*dto.PurchaseResponse, error) {
	purchase, err := uc.find(code)
	if err != nil {
		return nil, err
	}
	return toPurchaseResponse(purchase), nil
}

// List lista las compras registradas en el repositorio.
func (uc *PurchaseUseCase) List() ([]*dto.PurchaseResponse, error) {
	list, err := uc.purchaseRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPurchaseResponse(p))
	}
	return out, nil
}

// FinalizedTotal suma el total de todas las compras finalizadas del
// repositorio. Compras abiertas, si alguna vez llegaran a guardarse,
// quedan excluidas del agregado.
func (uc *PurchaseUseCase) FinalizedTotal() (*dto.FinalizedTotalResponse, error) {
	list, err := uc.purchaseRepo.List()
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, p := range list {
		if p.Status() == entity.PurchaseStatusFinalized {
			total = total.Add(p.Total())
		}
	}
	return &dto.FinalizedTotalResponse{Total: total}, nil
}

// find busca una compra por código en la tabla de abiertas y, si no está,
// en el repositorio. Una compra ya finalizada se encuentra igual: mutarla
// falla con ErrPurchaseFinalized en la entidad, no con ErrNotFound aquí.
func (uc *PurchaseUseCase) find(code string) (*entity.Purchase, error) {
	uc.mu.Lock()
	purchase := uc.open[strings.ToLower(code)]
	uc.mu.Unlock()
	if purchase == nil {
		var err error
		purchase, err = uc.purchaseRepo.GetByCode(code)
		if err != nil {
			return nil, err
		}
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	return purchase, nil
}

func toPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	items := p.Items()
	out := make([]dto.PurchaseItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.PurchaseItemResponse{
			ID:        item.ID,
			Ticket:    item.Ticket.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal(),
		})
	}
	return &dto.PurchaseResponse{
		Code:      p.Code,
		Customer:  p.Customer.Email,
		Status:    p.Status(),
		Items:     out,
		Total:     p.Total(),
		CreatedAt: p.CreatedAt,
	}
}

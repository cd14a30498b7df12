package entity

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/boleteria-api/internal/domain"
)

// Estados de una compra. El único tránsito permitido es OPEN -> FINALIZED.
const (
	PurchaseStatusOpen      = "OPEN"
	PurchaseStatusFinalized = "FINALIZED"
)

// PurchaseItem es una línea de compra: un tipo de boleta con su cantidad.
// El precio unitario se captura al momento de agregar el item; cambios
// posteriores de precio del Ticket no alteran el subtotal.
// Se crea exclusivamente desde Purchase.AddItem y es inmutable después.
type PurchaseItem struct {
	ID        string
	Ticket    *Ticket // referencia compartida, no propietaria
	Quantity  int
	UnitPrice decimal.Decimal
}

// Subtotal calcula UnitPrice * Quantity con el precio capturado.
func (i *PurchaseItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Purchase agrega los items de compra de un cliente y es dueña de su
// máquina de estados: nace OPEN y pasa a FINALIZED exactamente una vez.
type Purchase struct {
	Code      string // asignado por el coordinador, inmutable
	Customer  *Customer
	CreatedAt time.Time

	mu     sync.Mutex
	status string
	items  []*PurchaseItem
}

// NewPurchase construye una compra abierta para un cliente.
func NewPurchase(code string, customer *Customer) *Purchase {
	return &Purchase{
		Code:      code,
		Customer:  customer,
		CreatedAt: time.Now(),
		status:    PurchaseStatusOpen,
	}
}

// Status devuelve el estado actual.
func (p *Purchase) Status() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// Items devuelve una copia de la lista interna, en orden de agregado.
func (p *Purchase) Items() []*PurchaseItem {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*PurchaseItem, len(p.items))
	copy(out, p.items)
	return out
}

// AddItem valida, descuenta stock y agrega un nuevo item a la compra.
// Orden de verificación: estado de la compra, cantidad, disponibilidad.
// Cualquier fallo deja la compra y el stock exactamente como estaban;
// el append no puede fallar una vez que Sell tuvo éxito, así que no se
// necesita compensación.
func (p *Purchase) AddItem(ticket *Ticket, qty int) (*PurchaseItem, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.status == PurchaseStatusFinalized {
		return nil, domain.ErrPurchaseFinalized
	}
	if qty <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	// Sell verifica y descuenta bajo el lock del ticket
	if err := ticket.Sell(qty); err != nil {
		return nil, err
	}
	item := &PurchaseItem{
		ID:        uuid.New().String(),
		Ticket:    ticket,
		Quantity:  qty,
		UnitPrice: ticket.Price(),
	}
	p.items = append(p.items, item)
	return item, nil
}

// Finalize cierra la compra. Falla con ErrEmptyPurchase si no hay items y
// con ErrPurchaseFinalized si ya estaba cerrada; el segundo Finalize nunca
// se acepta en silencio. La transición es irreversible.
func (p *Purchase) Finalize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.status == PurchaseStatusFinalized {
		return domain.ErrPurchaseFinalized
	}
	if len(p.items) == 0 {
		return domain.ErrEmptyPurchase
	}
	p.status = PurchaseStatusFinalized
	return nil
}

// Total suma los subtotales de todos los items. Siempre se recalcula desde
// los items vigentes; válido en cualquier estado.
func (p *Purchase) Total() decimal.Decimal {
	p.mu.Lock()
	defer p.mu.Unlock()
	total := decimal.Zero
	for _, item := range p.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

package entity

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/boleteria-api/internal/domain"
)

// Ticket representa un tipo de boleta para un evento (Ej: Pista, VIP, Palco)
// con precio unitario y cantidad disponible.
//
// El stock solo puede disminuir a través de Sell; el mutex interno garantiza
// que dos ventas concurrentes sobre el mismo tipo no puedan pasar ambas la
// verificación de disponibilidad y dejar el stock negativo.
type Ticket struct {
	Name string // clave natural, inmutable tras la creación

	mu        sync.Mutex
	price     decimal.Decimal
	available int
}

// NewTicket construye un tipo de boleta. El precio negativo o la cantidad
// negativa son entrada inválida del colaborador administrativo.
func NewTicket(name string, price decimal.Decimal, available int) (*Ticket, error) {
	if name == "" || price.IsNegative() || available < 0 {
		return nil, domain.ErrInvalidInput
	}
	return &Ticket{Name: name, price: price, available: available}, nil
}

// Price devuelve el precio unitario vigente.
func (t *Ticket) Price() decimal.Decimal {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.price
}

// Available devuelve la cantidad disponible actual.
func (t *Ticket) Available() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.available
}

// CheckAvailability indica si hay stock suficiente para qty unidades.
// Consulta pura, sin efectos.
func (t *Ticket) CheckAvailability(qty int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return qty <= t.available
}

// Sell descuenta qty unidades del stock. Es la única vía autorizada de
// decremento: verificación y descuento ocurren bajo el mismo lock.
// Si no hay stock suficiente retorna ErrInsufficientStock sin tocar nada.
func (t *Ticket) Sell(qty int) error {
	if qty <= 0 {
		return domain.ErrInvalidQuantity
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if qty > t.available {
		return domain.ErrInsufficientStock
	}
	t.available -= qty
	return nil
}

// SetPrice actualiza el precio unitario (colaborador administrativo).
// No afecta los subtotales de items ya agregados a una compra.
func (t *Ticket) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return domain.ErrInvalidInput
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.price = price
	return nil
}

// SetAvailable reemplaza la cantidad disponible (colaborador administrativo).
// No debe usarse para registrar ventas; para eso está Sell.
func (t *Ticket) SetAvailable(available int) error {
	if available < 0 {
		return domain.ErrInvalidInput
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.available = available
	return nil
}

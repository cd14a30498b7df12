package memory

import (
	"strings"
	"sync"

	"github.com/jhoicas/boleteria-api/internal/domain/entity"
)

// PurchaseRepository almacena compras por código.
type PurchaseRepository struct {
	mu        sync.RWMutex
	purchases map[string]*entity.Purchase
}

// NewPurchaseRepository construye el repositorio.
func NewPurchaseRepository() *PurchaseRepository {
	return &PurchaseRepository{purchases: make(map[string]*entity.Purchase)}
}

// Save inserta o reemplaza la compra por código.
func (r *PurchaseRepository) Save(purchase *entity.Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.purchases[strings.ToLower(purchase.Code)] = purchase
	return nil
}

// GetByCode busca una compra; (nil, nil) si no existe.
func (r *PurchaseRepository) GetByCode(code string) (*entity.Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.purchases[strings.ToLower(code)], nil
}

// List retorna una copia de todas las compras guardadas.
func (r *PurchaseRepository) List() ([]*entity.Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Purchase, 0, len(r.purchases))
	for _, p := range r.purchases {
		out = append(out, p)
	}
	return out, nil
}

// Delete elimina por código; no-op si no existe.
func (r *PurchaseRepository) Delete(code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.purchases, strings.ToLower(code))
	return nil
}

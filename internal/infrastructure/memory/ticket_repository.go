package memory

import (
	"strings"
	"sync"

	"github.com/jhoicas/boleteria-api/internal/domain/entity"
)

// TicketRepository almacena tipos de boleta por nombre.
type TicketRepository struct {
	mu      sync.RWMutex
	tickets map[string]*entity.Ticket
}

// NewTicketRepository construye el repositorio.
func NewTicketRepository() *TicketRepository {
	return &TicketRepository{tickets: make(map[string]*entity.Ticket)}
}

// Save inserta o reemplaza el tipo de boleta por nombre.
func (r *TicketRepository) Save(ticket *entity.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tickets[strings.ToLower(ticket.Name)] = ticket
	return nil
}

// GetByName busca un tipo de boleta; (nil, nil) si no existe.
func (r *TicketRepository) GetByName(name string) (*entity.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tickets[strings.ToLower(name)], nil
}

// List retorna una copia de todos los tipos de boleta.
func (r *TicketRepository) List() ([]*entity.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Ticket, 0, len(r.tickets))
	for _, t := range r.tickets {
		out = append(out, t)
	}
	return out, nil
}

// Delete elimina por nombre; no-op si no existe. No valida que el tipo no
// esté referenciado por compras guardadas (restricción documentada, a cargo
// del colaborador administrativo).
func (r *TicketRepository) Delete(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tickets, strings.ToLower(name))
	return nil
}

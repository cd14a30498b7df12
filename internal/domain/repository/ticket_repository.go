package repository

import "github.com/jhoicas/boleteria-api/internal/domain/entity"

// TicketRepository define el puerto de persistencia para tipos de boleta.
// La clave natural es el nombre del tipo (búsqueda case-insensitive).
type TicketRepository interface {
	Save(ticket *entity.Ticket) error
	GetByName(name string) (*entity.Ticket, error)
	List() ([]*entity.Ticket, error)
	Delete(name string) error
}

package usecase

import (
	"github.com/jhoicas/boleteria-api/internal/application/dto"
	"github.com/jhoicas/boleteria-api/internal/domain"
	"github.com/jhoicas/boleteria-api/internal/domain/entity"
	"github.com/jhoicas/boleteria-api/internal/domain/repository"
)

// TicketUseCase casos de uso CRUD para tipos de boleta (colaborador
// administrativo). El stock solo se descuenta vía venta; aquí se reemplaza
// administrativamente a través de los setters de la entidad, nunca a mano.
type TicketUseCase struct {
	repo repository.TicketRepository
}

// NewTicketUseCase construye el caso de uso.
func NewTicketUseCase(repo repository.TicketRepository) *TicketUseCase {
	return &TicketUseCase{repo: repo}
}

// Create crea un nuevo tipo de boleta.
func (uc *TicketUseCase) Create(in dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	ticket, err := entity.NewTicket(in.Name, in.Price, in.Available)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ticket); err != nil {
		return nil, err
	}
	return toTicketResponse(ticket), nil
}

// GetByName obtiene un tipo de boleta por nombre.
func (uc *TicketUseCase) GetByName(name string) (*dto.TicketResponse, error) {
	ticket, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, domain.ErrNotFound
	}
	return toTicketResponse(ticket), nil
}

// Update actualiza precio y/o disponibilidad. No debe invocarse mientras una
// compra abierta está agregando items del mismo tipo en la misma operación
// lógica (restricción documentada; no hay lock transversal entre entidades).
func (uc *TicketUseCase) Update(name string, in dto.UpdateTicketRequest) (*dto.TicketResponse, error) {
	ticket, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, domain.ErrNotFound
	}
	if in.Price != nil {
		if err := ticket.SetPrice(*in.Price); err != nil {
			return nil, err
		}
	}
	if in.Available != nil {
		if err := ticket.SetAvailable(*in.Available); err != nil {
			return nil, err
		}
	}
	return toTicketResponse(ticket), nil
}

// List lista todos los tipos de boleta.
func (uc *TicketUseCase) List() ([]*dto.TicketResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TicketResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTicketResponse(t))
	}
	return out, nil
}

// Delete elimina un tipo de boleta por nombre. No valida referencias desde
// compras guardadas (restricción documentada).
func (uc *TicketUseCase) Delete(name string) error {
	return uc.repo.Delete(name)
}

func toTicketResponse(t *entity.Ticket) *dto.TicketResponse {
	return &dto.TicketResponse{
		Name:      t.Name,
		Price:     t.Price(),
		Available: t.Available(),
	}
}

package usecase

import (
	"time"

	"github.com/jhoicas/boleteria-api/internal/application/dto"
	"github.com/jhoicas/boleteria-api/internal/domain"
	"github.com/jhoicas/boleteria-api/internal/domain/entity"
	"github.com/jhoicas/boleteria-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes (colaborador administrativo).
// La unicidad por email se valida aquí, antes del Save: el repositorio en sí
// hace upsert y no rechaza duplicados.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un nuevo cliente.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	customer := &entity.Customer{
		Name:      in.Name,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Save(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByEmail obtiene un cliente por email.
func (uc *CustomerUseCase) GetByEmail(email string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// Update actualiza el nombre de un cliente. El email no se modifica.
func (uc *CustomerUseCase) Update(email string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		customer.Name = *in.Name
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Save(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List lista todos los clientes.
func (uc *CustomerUseCase) List() ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Delete elimina un cliente por email.
func (uc *CustomerUseCase) Delete(email string) error {
	return uc.repo.Delete(email)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

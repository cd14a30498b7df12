package repository

import "github.com/jhoicas/boleteria-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
// La clave natural es el email (búsqueda case-insensitive).
// GetByEmail retorna (nil, nil) cuando no existe: la ausencia es un
// resultado normal, no un error.
type CustomerRepository interface {
	Save(customer *entity.Customer) error
	GetByEmail(email string) (*entity.Customer, error)
	List() ([]*entity.Customer, error)
	Delete(email string) error
}

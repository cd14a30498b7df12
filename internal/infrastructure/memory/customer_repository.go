// Package memory implementa los repositorios en memoria de proceso.
//
// Cada repositorio es un mapa protegido por sync.RWMutex cuya clave natural
// se normaliza a minúsculas (las búsquedas por email/nombre/código son
// case-insensitive). Save es un upsert last-write-wins, Get retorna
// (nil, nil) cuando la clave no existe, List retorna una copia defensiva y
// Delete es no-op si la clave está ausente — esa permisividad es deliberada.
package memory

import (
	"strings"
	"sync"

	"github.com/jhoicas/boleteria-api/internal/domain/entity"
)

// CustomerRepository almacena clientes por email.
type CustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]*entity.Customer
}

// NewCustomerRepository construye el repositorio.
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{customers: make(map[string]*entity.Customer)}
}

// Save inserta o reemplaza el cliente por email.
func (r *CustomerRepository) Save(customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers[strings.ToLower(customer.Email)] = customer
	return nil
}

// GetByEmail busca un cliente; (nil, nil) si no existe.
func (r *CustomerRepository) GetByEmail(email string) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.customers[strings.ToLower(email)], nil
}

// List retorna una copia de todos los clientes.
func (r *CustomerRepository) List() ([]*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, nil
}

// Delete elimina por email; no-op si no existe.
func (r *CustomerRepository) Delete(email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.customers, strings.ToLower(email))
	return nil
}

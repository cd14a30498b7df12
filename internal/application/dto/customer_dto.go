package dto

import "time"

// CreateCustomerRequest entrada para crear un cliente.
type CreateCustomerRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Email string `json:"email" validate:"required,email"`
}

// UpdateCustomerRequest entrada para actualizar un cliente.
// El email es la clave y no se modifica; solo el nombre es mutable.
type UpdateCustomerRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=200"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

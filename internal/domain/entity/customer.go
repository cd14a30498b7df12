package entity

import "time"

// Customer representa un cliente que compra boletas.
// El email es la clave natural; se considera inmutable después de la creación.
type Customer struct {
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

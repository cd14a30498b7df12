package repository

import "github.com/jhoicas/boleteria-api/internal/domain/entity"

// PurchaseRepository define el puerto de persistencia para compras.
// La clave natural es el código asignado por el coordinador.
type PurchaseRepository interface {
	Save(purchase *entity.Purchase) error
	GetByCode(code string) (*entity.Purchase, error)
	List() ([]*entity.Purchase, error)
	Delete(code string) error
}

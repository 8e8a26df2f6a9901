package repository

import "github.com/jhoicas/AlertaStock-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetBySKU busca por SKU en todo el sistema (el SKU es único global).
	// Devuelve (nil, nil) si no existe.
	GetBySKU(sku string) (*entity.Product, error)
}

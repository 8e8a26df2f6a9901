package repository

import "github.com/jhoicas/AlertaStock-api/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para Inventory (DIP).
// Las cantidades solo se alteran por el proceso externo de movimientos; aquí
// únicamente se crea la fila inicial junto al producto.
type InventoryRepository interface {
	Create(inventory *entity.Inventory) error
	ListByProduct(productID string) ([]*entity.Inventory, error)
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/AlertaStock-api/internal/domain/entity"
	"github.com/jhoicas/AlertaStock-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre
// PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste la fila de inventario inicial de un producto.
func (r *InventoryRepo) Create(inventory *entity.Inventory) error {
	query := `
		INSERT INTO inventories (id, product_id, warehouse_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		inventory.ID, inventory.ProductID, inventory.WarehouseID,
		inventory.Quantity, inventory.CreatedAt, inventory.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// ListByProduct lista los inventarios de un producto en orden de creación.
func (r *InventoryRepo) ListByProduct(productID string) ([]*entity.Inventory, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, created_at, updated_at
		FROM inventories WHERE product_id = $1
		ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list inventories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventory
	for rows.Next() {
		var inv entity.Inventory
		if err := rows.Scan(&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.Quantity, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

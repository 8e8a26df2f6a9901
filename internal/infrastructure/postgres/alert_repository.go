package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/AlertaStock-api/internal/domain/entity"
	"github.com/jhoicas/AlertaStock-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo consultas de solo lectura para la evaluación de alertas de stock
// bajo. Una sola consulta con JOIN + EXISTS + LATERAL reemplaza el escaneo
// por producto y por inventario del flujo original.
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador de alertas.
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// ListCompanyStock devuelve todas las filas de inventario de los productos de
// la empresa, con bodega, existencia de ventas y primer proveedor asociado.
// El orden replica la iteración original: productos por fecha de creación e
// inventarios dentro de cada producto por fecha de creación.
func (r *AlertRepo) ListCompanyStock(ctx context.Context, companyID string) ([]repository.StockRow, error) {
	const query = `
	SELECT
	    p.id,
	    p.name,
	    p.sku,
	    p.low_stock_threshold,
	    i.warehouse_id,
	    w.name,
	    i.quantity,
	    EXISTS (
	        SELECT 1 FROM inventory_logs l
	        WHERE l.inventory_id = i.id AND l.reason = $2
	    )                                   AS has_sale,
	    sup.id,
	    sup.name,
	    sup.contact_email
	FROM products p
	JOIN inventories i ON i.product_id   = p.id
	JOIN warehouses  w ON w.id           = i.warehouse_id
	LEFT JOIN LATERAL (
	    SELECT s.id, s.name, s.contact_email
	    FROM product_suppliers ps
	    JOIN suppliers s ON s.id = ps.supplier_id
	    WHERE ps.product_id = p.id
	    ORDER BY ps.created_at, s.id
	    LIMIT 1
	) sup ON TRUE
	WHERE p.company_id = $1
	ORDER BY p.created_at, p.id, i.created_at, i.id`

	rows, err := r.q.Query(ctx, query, companyID, entity.ReasonSale)
	if err != nil {
		return nil, fmt.Errorf("list company stock: %w", err)
	}
	defer rows.Close()

	var result []repository.StockRow
	for rows.Next() {
		var row repository.StockRow
		if err := rows.Scan(
			&row.ProductID, &row.ProductName, &row.SKU, &row.LowStockThreshold,
			&row.WarehouseID, &row.WarehouseName, &row.Quantity, &row.HasSale,
			&row.SupplierID, &row.SupplierName, &row.SupplierEmail,
		); err != nil {
			return nil, fmt.Errorf("scan stock row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

package entity

import "time"

// Razones conocidas de un InventoryLog. La evaluación de alertas solo
// considera ReasonSale; el campo es texto libre para procesos externos.
const (
	ReasonSale       = "sale"
	ReasonRestock    = "restock"
	ReasonAdjustment = "adjustment"
)

// InventoryLog es el registro append-only de un evento que afecta el stock
// de un inventario. Lo escriben procesos externos de movimiento de stock;
// esta aplicación solo lo consulta.
type InventoryLog struct {
	ID          string
	InventoryID string
	Reason      string
	CreatedAt   time.Time
}

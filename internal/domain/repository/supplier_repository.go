package repository

import "github.com/jhoicas/AlertaStock-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier y su
// vínculo N:M con productos (DIP).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	// AttachToProduct crea el vínculo producto-proveedor. Un vínculo
	// repetido devuelve domain.ErrDuplicate.
	AttachToProduct(productID, supplierID string) error
}

package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/AlertaStock-api/internal/application/dto"
	"github.com/jhoicas/AlertaStock-api/internal/domain"
	"github.com/jhoicas/AlertaStock-api/internal/domain/entity"
	"github.com/jhoicas/AlertaStock-api/internal/domain/repository"
)

// SupplierUseCase alta de proveedores y vínculo con productos.
type SupplierUseCase struct {
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(supplierRepo repository.SupplierRepository, productRepo repository.ProductRepository) *SupplierUseCase {
	return &SupplierUseCase{supplierRepo: supplierRepo, productRepo: productRepo}
}

// Create registra un proveedor.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:           uuid.New().String(),
		Name:         in.Name,
		ContactEmail: in.ContactEmail,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	return &dto.SupplierResponse{
		ID:           supplier.ID,
		Name:         supplier.Name,
		ContactEmail: supplier.ContactEmail,
		CreatedAt:    supplier.CreatedAt,
	}, nil
}

// AttachToProduct vincula un proveedor existente a un producto existente.
// El orden de creación del vínculo determina qué proveedor surfacea la alerta
// de stock bajo (siempre el primero).
func (uc *SupplierUseCase) AttachToProduct(productID, supplierID string) error {
	if productID == "" || supplierID == "" {
		return domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	supplier, err := uc.supplierRepo.GetByID(supplierID)
	if err != nil {
		return err
	}
	if product == nil || supplier == nil {
		return domain.ErrNotFound
	}
	return uc.supplierRepo.AttachToProduct(productID, supplierID)
}

package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/AlertaStock-api/internal/application/dto"
	"github.com/jhoicas/AlertaStock-api/internal/domain"
	"github.com/jhoicas/AlertaStock-api/internal/domain/entity"
	"github.com/jhoicas/AlertaStock-api/internal/domain/repository"
)

// ProductUseCase crea productos con su inventario inicial y resuelve lecturas
// puntuales. La creación es transaccional: producto e inventario se insertan
// juntos o no se inserta nada.
type ProductUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, productRepo: productRepo}
}

// Create valida la entrada, rechaza SKUs ya existentes y persiste Product +
// Inventory en una sola transacción. InitialQuantity == nil es inválido pero
// 0 se acepta. El pre-chequeo de SKU no está serializado con el insert: el
// constraint UNIQUE de la BD es la autoridad y su violación también se
// reporta como domain.ErrDuplicate.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.CreateProductResponse, error) {
	if in.Name == "" || in.SKU == "" || in.Price.IsZero() || in.WarehouseID == "" || in.InitialQuantity == nil {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.productRepo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		SKU:       in.SKU,
		Price:     in.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	inventory := &entity.Inventory{
		ID:          uuid.New().String(),
		ProductID:   product.ID,
		WarehouseID: in.WarehouseID,
		Quantity:    *in.InitialQuantity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		return inventoryRepo.Create(inventory)
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateProductResponse{
		Message:   "Product created successfully",
		ProductID: product.ID,
	}, nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		SKU:               p.SKU,
		Price:             p.Price,
		CompanyID:         p.CompanyID,
		LowStockThreshold: p.LowStockThreshold,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

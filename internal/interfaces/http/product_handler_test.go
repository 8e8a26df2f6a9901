package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/AlertaStock-api/internal/application/usecase"
	"github.com/jhoicas/AlertaStock-api/internal/domain/entity"
	"github.com/jhoicas/AlertaStock-api/internal/domain/repository"
)

type productRepoMock struct{ mock.Mock }

func (m *productRepoMock) Create(p *entity.Product) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *productRepoMock) GetByID(id string) (*entity.Product, error) {
	args := m.Called(id)
	p, _ := args.Get(0).(*entity.Product)
	return p, args.Error(1)
}

func (m *productRepoMock) GetBySKU(sku string) (*entity.Product, error) {
	args := m.Called(sku)
	p, _ := args.Get(0).(*entity.Product)
	return p, args.Error(1)
}

type inventoryRepoMock struct{ mock.Mock }

func (m *inventoryRepoMock) Create(i *entity.Inventory) error {
	args := m.Called(i)
	return args.Error(0)
}

func (m *inventoryRepoMock) ListByProduct(productID string) ([]*entity.Inventory, error) {
	args := m.Called(productID)
	list, _ := args.Get(0).([]*entity.Inventory)
	return list, args.Error(1)
}

type txRunnerStub struct {
	productRepo   repository.ProductRepository
	inventoryRepo repository.InventoryRepository
}

func (s *txRunnerStub) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
) error) error {
	return fn(s.productRepo, s.inventoryRepo)
}

func newProductApp(pRepo *productRepoMock, iRepo *inventoryRepoMock) *fiber.App {
	uc := usecase.NewProductUseCase(&txRunnerStub{productRepo: pRepo, inventoryRepo: iRepo}, pRepo)
	h := NewProductHandler(uc)

	app := fiber.New()
	app.Post("/api/products", h.Create)
	app.Get("/api/products/:id", h.GetByID)
	return app
}

func postJSON(app *fiber.App, path, body string) (int, map[string]any) {
	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, _ := app.Test(req)
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var decoded map[string]any
	_ = json.Unmarshal(raw, &decoded)
	return resp.StatusCode, decoded
}

func TestProductHandler_Create_201(t *testing.T) {
	pRepo := new(productRepoMock)
	iRepo := new(inventoryRepoMock)
	app := newProductApp(pRepo, iRepo)

	pRepo.On("GetBySKU", "CAF-001").Return(nil, nil)
	pRepo.On("Create", mock.AnythingOfType("*entity.Product")).Return(nil)
	iRepo.On("Create", mock.AnythingOfType("*entity.Inventory")).Return(nil)

	status, body := postJSON(app, "/api/products",
		`{"name":"Café","sku":"CAF-001","price":25.5,"warehouse_id":"wh-1","initial_quantity":30}`)

	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "Product created successfully", body["message"])
	assert.NotEmpty(t, body["product_id"])
}

func TestProductHandler_Create_400_MissingField(t *testing.T) {
	app := newProductApp(new(productRepoMock), new(inventoryRepoMock))

	status, body := postJSON(app, "/api/products",
		`{"sku":"CAF-001","price":25.5,"warehouse_id":"wh-1","initial_quantity":30}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Missing required fields", body["message"])
}

func TestProductHandler_Create_400_MissingInitialQuantity(t *testing.T) {
	app := newProductApp(new(productRepoMock), new(inventoryRepoMock))

	status, body := postJSON(app, "/api/products",
		`{"name":"Café","sku":"CAF-001","price":25.5,"warehouse_id":"wh-1"}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Missing required fields", body["message"])
}

func TestProductHandler_Create_400_MalformedBody(t *testing.T) {
	app := newProductApp(new(productRepoMock), new(inventoryRepoMock))

	status, body := postJSON(app, "/api/products", `{"name":`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Missing required fields", body["message"])
}

func TestProductHandler_Create_409_DuplicateSKU(t *testing.T) {
	pRepo := new(productRepoMock)
	app := newProductApp(pRepo, new(inventoryRepoMock))

	pRepo.On("GetBySKU", "CAF-001").Return(&entity.Product{ID: "otro", SKU: "CAF-001"}, nil)

	status, body := postJSON(app, "/api/products",
		`{"name":"Café","sku":"CAF-001","price":25.5,"warehouse_id":"wh-1","initial_quantity":30}`)

	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "SKU already exists", body["message"])
}

func TestProductHandler_Create_500_RepoError(t *testing.T) {
	pRepo := new(productRepoMock)
	app := newProductApp(pRepo, new(inventoryRepoMock))

	pRepo.On("GetBySKU", "CAF-001").Return(nil, errors.New("db down"))

	status, body := postJSON(app, "/api/products",
		`{"name":"Café","sku":"CAF-001","price":25.5,"warehouse_id":"wh-1","initial_quantity":30}`)

	assert.Equal(t, fiber.StatusInternalServerError, status)
	// El detalle interno no se filtra al cliente.
	assert.Equal(t, "Something went wrong while creating product", body["message"])
}

func TestProductHandler_GetByID_404(t *testing.T) {
	pRepo := new(productRepoMock)
	app := newProductApp(pRepo, new(inventoryRepoMock))

	pRepo.On("GetByID", "p-404").Return(nil, nil)

	req := httptest.NewRequest(fiber.MethodGet, "/api/products/p-404", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

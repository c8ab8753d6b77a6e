package billing_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/retail-pos/internal/application/billing"
	"github.com/tu-usuario/retail-pos/internal/application/dto"
	"github.com/tu-usuario/retail-pos/internal/domain"
	"github.com/tu-usuario/retail-pos/internal/domain/access"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
	"github.com/tu-usuario/retail-pos/pkg/logger"
)

const cashierEmail = "cashier@mystore.com"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con semántica de rollback
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	products map[string]*entity.Product
}

func (r *memProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (r *memProductRepo) GetByBarcode(code string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Barcode == code {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *memProductRepo) Delete(id string) error         { delete(r.products, id); return nil }

func (r *memProductRepo) ListByStore(storeID string, limit, offset int) ([]*entity.Product, error) {
	return r.ListAll()
}

func (r *memProductRepo) ListAll() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memProductRepo) ListLowStock(storeID string, threshold int) ([]*entity.Product, error) {
	return nil, nil
}

func (r *memProductRepo) DecrementStock(id string, qty int) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Stock < qty {
		return domain.ErrInsufficientStock
	}
	p.Stock -= qty
	return nil
}

type memSaleRepo struct {
	sales map[string]*entity.Sale
	items map[string][]entity.SaleItem
}

func newMemSaleRepo() *memSaleRepo {
	return &memSaleRepo{sales: make(map[string]*entity.Sale), items: make(map[string][]entity.SaleItem)}
}

func (r *memSaleRepo) Create(sale *entity.Sale, items []entity.SaleItem) error {
	r.sales[sale.ID] = sale
	r.items[sale.ID] = items
	return nil
}

func (r *memSaleRepo) GetByID(id string) (*entity.Sale, []entity.SaleItem, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, nil, domain.ErrNotFound
	}
	return s, r.items[id], nil
}

func (r *memSaleRepo) ListByStore(storeID string, limit int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if storeID == "" || s.StoreID == storeID {
			out = append(out, s)
		}
	}
	return out, nil
}

// memTxRunner emula la transacción: clona el estado antes de fn y lo restaura
// si fn falla, para que los tests puedan verificar la semántica de rollback.
type memTxRunner struct {
	products *memProductRepo
	sales    *memSaleRepo
}

func (tx *memTxRunner) Run(fn func(products repository.ProductRepository, sales repository.SaleRepository) error) error {
	snapshot := make(map[string]*entity.Product, len(tx.products.products))
	for id, p := range tx.products.products {
		clone := *p
		snapshot[id] = &clone
	}
	if err := fn(tx.products, tx.sales); err != nil {
		tx.products.products = snapshot
		return err
	}
	return nil
}

type fakeReceipts struct{ calls int }

func (f *fakeReceipts) Generate(sale *entity.Sale, items []entity.SaleItem, header []string) ([]byte, error) {
	f.calls++
	return []byte("%PDF-fake"), nil
}

func newBillingUC(products *memProductRepo, sales *memSaleRepo) *billing.UseCase {
	resolver := access.NewResolver(access.DefaultDirectory())
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return billing.NewUseCase(
		&memTxRunner{products: products, sales: sales},
		sales,
		&fakeReceipts{},
		resolver,
		decimal.NewFromInt(5),
		[]string{"PRABA STORE"},
		log,
	)
}

func seedCatalog() *memProductRepo {
	return &memProductRepo{products: map[string]*entity.Product{
		"RICE001":  {ID: "RICE001", Code: "RICE001", Name: "Basmati Rice 1kg", Price: decimal.NewFromInt(100), Stock: 10, StoreID: "store_001"},
		"SUGAR001": {ID: "SUGAR001", Code: "SUGAR001", Name: "White Sugar 1kg", Price: decimal.NewFromInt(50), Stock: 5, StoreID: "store_001"},
		"MILK001":  {ID: "MILK001", Code: "MILK001", Name: "Fresh Milk 500ml", Price: decimal.NewFromInt(30), Stock: 8, StoreID: "store_002"},
	}}
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateSale
// ──────────────────────────────────────────────────────────────────────────────

// Vector de totales: 2×100 + 1×50 = 250; GST 5% = 12.50;
// descuento 10% sobre (250+12.50) = 26.25; total = 236.25.
func TestCreateSale_VectorDeTotales(t *testing.T) {
	products := seedCatalog()
	uc := newBillingUC(products, newMemSaleRepo())

	out, err := uc.CreateSale(cashierEmail, dto.CreateSaleRequest{
		StoreID: "store_001",
		Items: []dto.SaleItemRequest{
			{ProductID: "RICE001", Quantity: 2},
			{ProductID: "SUGAR001", Quantity: 1},
		},
		DiscountPercent: decimal.NewFromInt(10),
		PaymentMode:     entity.PaymentCash,
	})
	require.NoError(t, err)

	assert.Equal(t, "250", out.Subtotal.String())
	assert.Equal(t, "12.5", out.GSTAmount.String())
	assert.Equal(t, "26.25", out.DiscountAmount.String())
	assert.Equal(t, "236.25", out.Total.String())
	assert.Equal(t, cashierEmail, out.CashierEmail)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Basmati Rice 1kg", out.Items[0].Name, "nombre congelado al momento de la venta")
}

func TestCreateSale_DescuentaStock(t *testing.T) {
	products := seedCatalog()
	uc := newBillingUC(products, newMemSaleRepo())

	_, err := uc.CreateSale(cashierEmail, dto.CreateSaleRequest{
		StoreID:     "store_001",
		Items:       []dto.SaleItemRequest{{ProductID: "RICE001", Quantity: 3}},
		PaymentMode: entity.PaymentUPI,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, products.products["RICE001"].Stock)
}

func TestCreateSale_NumeroDeBill(t *testing.T) {
	uc := newBillingUC(seedCatalog(), newMemSaleRepo())

	out, err := uc.CreateSale(cashierEmail, dto.CreateSaleRequest{
		StoreID:     "store_001",
		Items:       []dto.SaleItemRequest{{ProductID: "RICE001", Quantity: 1}},
		PaymentMode: entity.PaymentCard,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.BillNumber, "BILL-"))
	assert.Len(t, out.BillNumber, len("BILL-")+8)
}

// Sin stock suficiente la venta entera se revierte: ni la venta queda
// registrada ni se descuenta el stock de las líneas anteriores.
func TestCreateSale_StockInsuficienteHaceRollback(t *testing.T) {
	products := seedCatalog()
	sales := newMemSaleRepo()
	uc := newBillingUC(products, sales)

	_, err := uc.CreateSale(cashierEmail, dto.CreateSaleRequest{
		StoreID: "store_001",
		Items: []dto.SaleItemRequest{
			{ProductID: "RICE001", Quantity: 2},
			{ProductID: "SUGAR001", Quantity: 99},
		},
		PaymentMode: entity.PaymentCash,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Empty(t, sales.sales)
	assert.Equal(t, 10, products.products["RICE001"].Stock, "el descuento previo debe revertirse")
}

func TestCreateSale_Autorizacion(t *testing.T) {
	uc := newBillingUC(seedCatalog(), newMemSaleRepo())

	req := dto.CreateSaleRequest{
		StoreID:     "store_001",
		Items:       []dto.SaleItemRequest{{ProductID: "RICE001", Quantity: 1}},
		PaymentMode: entity.PaymentCash,
	}

	_, err := uc.CreateSale("unknown@x.com", req)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	req.StoreID = "store_002"
	req.Items = []dto.SaleItemRequest{{ProductID: "MILK001", Quantity: 1}}
	_, err = uc.CreateSale(cashierEmail, req)
	assert.ErrorIs(t, err, domain.ErrForbidden, "el cajero no factura en otra tienda")
}

func TestCreateSale_ProductoDeOtraTienda(t *testing.T) {
	uc := newBillingUC(seedCatalog(), newMemSaleRepo())

	// MILK001 pertenece a store_002: facturarlo en store_001 no debe pasar.
	_, err := uc.CreateSale(cashierEmail, dto.CreateSaleRequest{
		StoreID:     "store_001",
		Items:       []dto.SaleItemRequest{{ProductID: "MILK001", Quantity: 1}},
		PaymentMode: entity.PaymentCash,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateSale_EntradasInvalidas(t *testing.T) {
	uc := newBillingUC(seedCatalog(), newMemSaleRepo())

	base := dto.CreateSaleRequest{
		StoreID:     "store_001",
		Items:       []dto.SaleItemRequest{{ProductID: "RICE001", Quantity: 1}},
		PaymentMode: entity.PaymentCash,
	}

	noItems := base
	noItems.Items = nil
	_, err := uc.CreateSale(cashierEmail, noItems)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	badDiscount := base
	badDiscount.DiscountPercent = decimal.NewFromInt(101)
	_, err = uc.CreateSale(cashierEmail, badDiscount)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	badPayment := base
	badPayment.PaymentMode = "bitcoin"
	_, err = uc.CreateSale(cashierEmail, badPayment)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas y recibo
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSale_YRecibo(t *testing.T) {
	sales := newMemSaleRepo()
	uc := newBillingUC(seedCatalog(), sales)

	created, err := uc.CreateSale(cashierEmail, dto.CreateSaleRequest{
		StoreID:     "store_001",
		Items:       []dto.SaleItemRequest{{ProductID: "RICE001", Quantity: 1}},
		PaymentMode: entity.PaymentCash,
	})
	require.NoError(t, err)

	got, err := uc.GetSale(cashierEmail, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.BillNumber, got.BillNumber)
	require.Len(t, got.Items, 1)

	pdf, err := uc.Receipt(cashierEmail, created.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}

func TestListSales_AlcancePorTienda(t *testing.T) {
	sales := newMemSaleRepo()
	uc := newBillingUC(seedCatalog(), sales)

	_, err := uc.CreateSale(cashierEmail, dto.CreateSaleRequest{
		StoreID:     "store_001",
		Items:       []dto.SaleItemRequest{{ProductID: "RICE001", Quantity: 1}},
		PaymentMode: entity.PaymentCash,
	})
	require.NoError(t, err)

	mine, err := uc.ListSales(cashierEmail, 10)
	require.NoError(t, err)
	assert.Len(t, mine.Items, 1)

	none, err := uc.ListSales("unknown@x.com", 10)
	require.NoError(t, err)
	assert.Empty(t, none.Items)
}

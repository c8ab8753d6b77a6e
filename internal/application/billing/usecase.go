// Package billing implementa el cierre de ventas en caja: cálculo de totales
// con GST y descuento, descuento de stock transaccional y emisión del recibo.
package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/retail-pos/internal/application/dto"
	"github.com/tu-usuario/retail-pos/internal/application/ports"
	"github.com/tu-usuario/retail-pos/internal/domain"
	"github.com/tu-usuario/retail-pos/internal/domain/access"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
	"github.com/tu-usuario/retail-pos/pkg/logger"
)

var oneHundred = decimal.NewFromInt(100)

// UseCase orquesta la facturación. El descuento de stock y la inserción de la
// venta ocurren en la misma transacción: una venta jamás queda registrada con
// stock sin descontar.
type UseCase struct {
	tx         ports.TxRunner
	sales      repository.SaleRepository
	receipts   ports.ReceiptGenerator
	resolver   *access.Resolver
	gstPercent decimal.Decimal
	header     []string
	log        *logger.Logger
}

// NewUseCase construye el caso de uso. gstPercent es la tasa GST vigente de la
// tienda; header son las líneas de cabecera del recibo.
func NewUseCase(tx ports.TxRunner, sales repository.SaleRepository, receipts ports.ReceiptGenerator, resolver *access.Resolver, gstPercent decimal.Decimal, header []string, log *logger.Logger) *UseCase {
	return &UseCase{
		tx:         tx,
		sales:      sales,
		receipts:   receipts,
		resolver:   resolver,
		gstPercent: gstPercent,
		header:     header,
		log:        log,
	}
}

// CreateSale registra una venta: valida acceso, congela nombre y precio de
// cada línea, descuenta stock y persiste todo en una transacción.
//
// Totales (redondeo a 2 decimales en cada paso):
//
//	subtotal  = Σ precio×cantidad
//	gst       = subtotal × gstPercent / 100
//	descuento = (subtotal + gst) × discountPercent / 100
//	total     = subtotal + gst − descuento
func (uc *UseCase) CreateSale(email string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if !uc.resolver.HasPermission(email, access.PermManageBilling) {
		return nil, domain.ErrForbidden
	}
	if !uc.resolver.CanAccessStore(email, in.StoreID) {
		return nil, domain.ErrForbidden
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.DiscountPercent.IsNegative() || in.DiscountPercent.GreaterThan(oneHundred) {
		return nil, domain.ErrInvalidInput
	}
	switch in.PaymentMode {
	case entity.PaymentCash, entity.PaymentCard, entity.PaymentUPI:
	default:
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:              uuid.New().String(),
		BillNumber:      billNumber(now),
		StoreID:         in.StoreID,
		CashierEmail:    email,
		GSTPercent:      uc.gstPercent,
		DiscountPercent: in.DiscountPercent,
		PaymentMode:     in.PaymentMode,
		CreatedAt:       now,
	}

	var items []entity.SaleItem
	err := uc.tx.Run(func(products repository.ProductRepository, sales repository.SaleRepository) error {
		subtotal := decimal.Zero
		for _, line := range in.Items {
			if line.Quantity <= 0 {
				return domain.ErrInvalidInput
			}
			p, err := products.GetByID(line.ProductID)
			if err != nil {
				return err
			}
			if p.StoreID != in.StoreID {
				return domain.ErrNotFound
			}
			if err := products.DecrementStock(p.ID, line.Quantity); err != nil {
				return err
			}

			lineTotal := p.Price.Mul(decimal.NewFromInt(int64(line.Quantity))).Round(2)
			items = append(items, entity.SaleItem{
				SaleID:    sale.ID,
				ProductID: p.ID,
				Name:      p.Name,
				Price:     p.Price,
				Quantity:  line.Quantity,
				Total:     lineTotal,
			})
			subtotal = subtotal.Add(lineTotal)
			sale.ItemCount += line.Quantity
		}

		sale.Subtotal = subtotal.Round(2)
		sale.GSTAmount = sale.Subtotal.Mul(uc.gstPercent).Div(oneHundred).Round(2)
		gross := sale.Subtotal.Add(sale.GSTAmount)
		sale.DiscountAmount = gross.Mul(in.DiscountPercent).Div(oneHundred).Round(2)
		sale.Total = gross.Sub(sale.DiscountAmount).Round(2)

		return sales.Create(sale, items)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("bill_number", sale.BillNumber).
		Str("store_id", sale.StoreID).
		Str("total", sale.Total.String()).
		Int("items", sale.ItemCount).
		Msg("venta registrada")

	return toSaleResponse(sale, items), nil
}

// GetSale obtiene una venta con sus líneas.
func (uc *UseCase) GetSale(email, id string) (*dto.SaleResponse, error) {
	sale, items, err := uc.sales.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !uc.resolver.CanAccessStore(email, sale.StoreID) {
		return nil, domain.ErrForbidden
	}
	return toSaleResponse(sale, items), nil
}

// ListSales lista las ventas recientes del alcance del usuario.
func (uc *UseCase) ListSales(email string, limit int) (*dto.SaleListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var storeID string
	switch ids := uc.resolver.AccessibleStoreIDs(email); {
	case ids == nil:
		storeID = ""
	case len(ids) == 0:
		return &dto.SaleListResponse{Items: []dto.SaleResponse{}}, nil
	default:
		storeID = ids[0]
	}

	sales, err := uc.sales.ListByStore(storeID, limit)
	if err != nil {
		return nil, err
	}
	out := &dto.SaleListResponse{Items: make([]dto.SaleResponse, 0, len(sales))}
	for _, s := range sales {
		out.Items = append(out.Items, *toSaleResponse(s, nil))
	}
	return out, nil
}

// Receipt renderiza el recibo PDF de una venta.
func (uc *UseCase) Receipt(email, id string) ([]byte, error) {
	sale, items, err := uc.sales.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !uc.resolver.CanAccessStore(email, sale.StoreID) {
		return nil, domain.ErrForbidden
	}
	return uc.receipts.Generate(sale, items, uc.header)
}

// billNumber deriva el número de bill del timestamp: BILL- más los últimos 8
// dígitos de los milisegundos unix, legible en el mostrador y único en la
// práctica a escala de una tienda.
func billNumber(t time.Time) string {
	ms := fmt.Sprintf("%d", t.UnixMilli())
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return "BILL-" + ms
}

func toSaleResponse(s *entity.Sale, items []entity.SaleItem) *dto.SaleResponse {
	out := &dto.SaleResponse{
		ID:              s.ID,
		BillNumber:      s.BillNumber,
		StoreID:         s.StoreID,
		CashierEmail:    s.CashierEmail,
		Items:           make([]dto.SaleItemResponse, 0, len(items)),
		Subtotal:        s.Subtotal,
		GSTPercent:      s.GSTPercent,
		GSTAmount:       s.GSTAmount,
		DiscountPercent: s.DiscountPercent,
		DiscountAmount:  s.DiscountAmount,
		Total:           s.Total,
		PaymentMode:     s.PaymentMode,
		CreatedAt:       s.CreatedAt,
	}
	for _, it := range items {
		out.Items = append(out.Items, dto.SaleItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Total:     it.Total,
		})
	}
	return out
}

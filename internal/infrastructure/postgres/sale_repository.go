package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/retail-pos/internal/domain"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, bill_number, store_id, cashier_email, subtotal, gst_percent, gst_amount,
	discount_percent, discount_amount, total, payment_mode, item_count, created_at`

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la venta con sus líneas. Debe llamarse dentro de una
// transacción (vía TxRunner) para que venta y líneas sean atómicas.
func (r *SaleRepo) Create(sale *entity.Sale, items []entity.SaleItem) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx,
		`INSERT INTO sales (`+saleColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		sale.ID, sale.BillNumber, sale.StoreID, sale.CashierEmail, sale.Subtotal,
		sale.GSTPercent, sale.GSTAmount, sale.DiscountPercent, sale.DiscountAmount,
		sale.Total, sale.PaymentMode, sale.ItemCount, sale.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}

	for _, it := range items {
		_, err := r.q.Exec(ctx,
			`INSERT INTO sale_items (sale_id, product_id, name, price, quantity, total)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			sale.ID, it.ProductID, it.Name, it.Price, it.Quantity, it.Total,
		)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una venta con sus líneas.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, []entity.SaleItem, error) {
	ctx := context.Background()

	var s entity.Sale
	err := r.q.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id).Scan(
		&s.ID, &s.BillNumber, &s.StoreID, &s.CashierEmail, &s.Subtotal,
		&s.GSTPercent, &s.GSTAmount, &s.DiscountPercent, &s.DiscountAmount,
		&s.Total, &s.PaymentMode, &s.ItemCount, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("get sale: %w", err)
	}

	rows, err := r.q.Query(ctx,
		`SELECT sale_id, product_id, name, price, quantity, total
		 FROM sale_items WHERE sale_id = $1 ORDER BY name ASC`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("get sale items: %w", err)
	}
	defer rows.Close()

	var items []entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.SaleID, &it.ProductID, &it.Name, &it.Price, &it.Quantity, &it.Total); err != nil {
			return nil, nil, fmt.Errorf("scan sale item: %w", err)
		}
		items = append(items, it)
	}
	return &s, items, rows.Err()
}

// ListByStore lista ventas recientes (desc por fecha); storeID vacío = todas.
func (r *SaleRepo) ListByStore(storeID string, limit int) ([]*entity.Sale, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+saleColumns+`
		 FROM sales
		 WHERE ($1 = '' OR store_id = $1)
		 ORDER BY created_at DESC
		 LIMIT $2`, storeID, limit)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var out []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(
			&s.ID, &s.BillNumber, &s.StoreID, &s.CashierEmail, &s.Subtotal,
			&s.GSTPercent, &s.GSTAmount, &s.DiscountPercent, &s.DiscountAmount,
			&s.Total, &s.PaymentMode, &s.ItemCount, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

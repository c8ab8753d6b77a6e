package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/retail-pos/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas para reportes, directamente en SQL: agregar
// en la base evita paginar el histórico completo de ventas en memoria.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// SalesSummary agrega ventas en [from, to); storeID vacío = todas las tiendas.
func (r *ReportRepo) SalesSummary(storeID string, from, to time.Time) (*repository.SalesSummary, error) {
	var s repository.SalesSummary
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(total), 0), COUNT(*), COALESCE(SUM(item_count), 0)
		 FROM sales
		 WHERE created_at >= $2 AND created_at < $3 AND ($1 = '' OR store_id = $1)`,
		storeID, from, to,
	).Scan(&s.TotalRevenue, &s.BillCount, &s.ItemsSold)
	if err != nil {
		return nil, fmt.Errorf("sales summary: %w", err)
	}
	return &s, nil
}

// TopProducts devuelve los productos más vendidos del rango, por unidades.
func (r *ReportRepo) TopProducts(storeID string, from, to time.Time, limit int) ([]repository.TopProduct, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT i.product_id, i.name, SUM(i.quantity)::int, COALESCE(SUM(i.total), 0)
		 FROM sale_items i
		 JOIN sales s ON s.id = i.sale_id
		 WHERE s.created_at >= $2 AND s.created_at < $3 AND ($1 = '' OR s.store_id = $1)
		 GROUP BY i.product_id, i.name
		 ORDER BY SUM(i.quantity) DESC, i.name ASC
		 LIMIT $4`,
		storeID, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()

	var out []repository.TopProduct
	for rows.Next() {
		var t repository.TopProduct
		if err := rows.Scan(&t.ProductID, &t.Name, &t.Quantity, &t.Revenue); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesSummary agrega las ventas de un rango de fechas.
type SalesSummary struct {
	TotalRevenue decimal.Decimal
	BillCount    int
	ItemsSold    int
}

// TopProduct es un producto ordenado por unidades vendidas en el rango.
type TopProduct struct {
	ProductID string
	Name      string
	Quantity  int
	Revenue   decimal.Decimal
}

// ReportRepository define el puerto de consultas agregadas para reportes.
type ReportRepository interface {
	// SalesSummary agrega ventas en [from, to); storeID vacío = todas las tiendas.
	SalesSummary(storeID string, from, to time.Time) (*SalesSummary, error)
	// TopProducts devuelve los productos más vendidos del rango.
	TopProducts(storeID string, from, to time.Time, limit int) ([]TopProduct, error)
}

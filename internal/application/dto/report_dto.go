package dto

import "github.com/shopspring/decimal"

// ReportRequest rango y alcance de un reporte de ventas.
type ReportRequest struct {
	StoreID string `query:"store_id"`
	From    string `query:"from" validate:"required"`
	To      string `query:"to" validate:"required"`
}

// SalesSummaryResponse agregados de ventas del rango.
type SalesSummaryResponse struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	BillCount    int             `json:"bill_count"`
	ItemsSold    int             `json:"items_sold"`
}

// TopProductResponse un producto ordenado por unidades vendidas.
type TopProductResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// ReportResponse reporte completo: resumen más productos destacados.
type ReportResponse struct {
	Summary     SalesSummaryResponse `json:"summary"`
	TopProducts []TopProductResponse `json:"top_products"`
}

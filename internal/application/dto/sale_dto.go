package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest una línea del carrito al facturar.
type SaleItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CreateSaleRequest entrada para registrar una venta.
type CreateSaleRequest struct {
	StoreID         string            `json:"store_id" validate:"required"`
	Items           []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
	DiscountPercent decimal.Decimal   `json:"discount_percent"`
	PaymentMode     string            `json:"payment_mode" validate:"required,oneof=cash card upi"`
}

// SaleItemResponse una línea de la venta ya registrada.
type SaleItemResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
}

// SaleResponse salida de una venta con sus totales.
type SaleResponse struct {
	ID              string             `json:"id"`
	BillNumber      string             `json:"bill_number"`
	StoreID         string             `json:"store_id"`
	CashierEmail    string             `json:"cashier_email"`
	Items           []SaleItemResponse `json:"items"`
	Subtotal        decimal.Decimal    `json:"subtotal"`
	GSTPercent      decimal.Decimal    `json:"gst_percent"`
	GSTAmount       decimal.Decimal    `json:"gst_amount"`
	DiscountPercent decimal.Decimal    `json:"discount_percent"`
	DiscountAmount  decimal.Decimal    `json:"discount_amount"`
	Total           decimal.Decimal    `json:"total"`
	PaymentMode     string             `json:"payment_mode"`
	CreatedAt       time.Time          `json:"created_at"`
}

// SaleListResponse listado de ventas recientes.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
}

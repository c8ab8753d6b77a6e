package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Modos de pago aceptados en caja.
const (
	PaymentCash = "cash"
	PaymentCard = "card"
	PaymentUPI  = "upi"
)

// Sale representa una venta (bill) cerrada en caja.
type Sale struct {
	ID              string
	BillNumber      string // BILL-XXXXXXXX, derivado del timestamp
	StoreID         string
	CashierEmail    string
	Subtotal        decimal.Decimal
	GSTPercent      decimal.Decimal
	GSTAmount       decimal.Decimal
	DiscountPercent decimal.Decimal
	DiscountAmount  decimal.Decimal
	Total           decimal.Decimal
	PaymentMode     string // cash, card, upi
	ItemCount       int
	CreatedAt       time.Time
}

// SaleItem es una línea de venta. Name y Price se copian del producto al
// momento de la venta: el recibo no cambia si el catálogo cambia después.
type SaleItem struct {
	SaleID    string
	ProductID string
	Name      string
	Price     decimal.Decimal
	Quantity  int
	Total     decimal.Decimal
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Code y Barcode son
// opcionales: si faltan, se generan a partir del nombre.
type CreateProductRequest struct {
	Code     string          `json:"code" validate:"omitempty,max=9"`
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock" validate:"min=0"`
	Barcode  string          `json:"barcode" validate:"omitempty,len=11"`
	StoreID  string          `json:"store_id" validate:"required"`
}

// UpdateProductRequest entrada para actualizar un producto. Code y Barcode no
// se tocan aquí: se regeneran vía las operaciones de asignación masiva.
type UpdateProductRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category *string          `json:"category"`
	Price    *decimal.Decimal `json:"price"`
	Stock    *int             `json:"stock" validate:"omitempty,min=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	Barcode   string          `json:"barcode"`
	StoreID   string          `json:"store_id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// SuggestCodesResponse sugerencias de código para un nombre.
type SuggestCodesResponse struct {
	Name        string   `json:"name"`
	Suggestions []string `json:"suggestions"`
}

// BulkAssignResponse resultado de una asignación masiva de códigos o barcodes.
type BulkAssignResponse struct {
	Assigned int `json:"assigned"`
	Skipped  int `json:"skipped"`
}

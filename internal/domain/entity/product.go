package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de una tienda.
// ID es el código generado (ej. RICE001) cuando el producto se crea desde la app;
// Code repite ese código como campo explícito para búsquedas y migraciones.
type Product struct {
	ID        string
	Code      string // código legible [A-Z]{3,6}\d{3}
	Name      string
	Category  string
	Price     decimal.Decimal
	Stock     int
	Barcode   string // 11 dígitos con dígito verificador, puede estar vacío
	StoreID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CodeOrID devuelve el identificador usado para verificar unicidad de códigos:
// el ID si existe, si no el Code (los catálogos migrados pueden tener solo uno).
func (p *Product) CodeOrID() string {
	if p.ID != "" {
		return p.ID
	}
	return p.Code
}

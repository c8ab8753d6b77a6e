package repository

import "github.com/tu-usuario/retail-pos/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByBarcode(barcode string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	// ListByStore lista con paginación; storeID vacío = todas las tiendas.
	ListByStore(storeID string, limit, offset int) ([]*entity.Product, error)
	// ListAll enumera el catálogo completo para los chequeos de unicidad de
	// códigos y barcodes (escala de catálogo: cientos a pocos miles).
	ListAll() ([]*entity.Product, error)
	// ListLowStock lista productos con stock <= threshold; storeID vacío = todas.
	ListLowStock(storeID string, threshold int) ([]*entity.Product, error)
	// DecrementStock descuenta qty unidades; retorna domain.ErrInsufficientStock
	// si el stock no alcanza y domain.ErrNotFound si el producto no existe.
	DecrementStock(id string, qty int) error
}

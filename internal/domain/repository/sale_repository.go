package repository

import "github.com/tu-usuario/retail-pos/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale (DIP).
type SaleRepository interface {
	// Create persiste la venta con sus líneas (misma transacción).
	Create(sale *entity.Sale, items []entity.SaleItem) error
	GetByID(id string) (*entity.Sale, []entity.SaleItem, error)
	// ListByStore lista ventas recientes (desc por fecha); storeID vacío = todas.
	ListByStore(storeID string, limit int) ([]*entity.Sale, error)
}

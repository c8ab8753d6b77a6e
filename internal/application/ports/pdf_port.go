package ports

import "github.com/tu-usuario/retail-pos/internal/domain/entity"

// ReceiptGenerator define el puerto de salida para renderizar el recibo de
// una venta. Cualquier adaptador (maroto, mock) debe implementar esta interfaz.
type ReceiptGenerator interface {
	// Generate renderiza el recibo en PDF. header son las líneas de cabecera
	// de la tienda (nombre, dirección, teléfono).
	Generate(sale *entity.Sale, items []entity.SaleItem, header []string) ([]byte, error)
}

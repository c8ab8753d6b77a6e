package ports

import "github.com/tu-usuario/retail-pos/internal/domain/entity"

// ProductCache define el puerto de salida para el caché de lecturas de
// productos. Es best-effort: los adaptadores absorben y loguean sus errores,
// un caché caído nunca debe tumbar una lectura.
type ProductCache interface {
	Get(id string) (*entity.Product, bool)
	Set(product *entity.Product)
	Delete(id string)
}

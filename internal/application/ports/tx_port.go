package ports

import "github.com/tu-usuario/retail-pos/internal/domain/repository"

// TxRunner define el puerto para ejecutar una unidad de trabajo transaccional.
// fn recibe repositorios ligados a la misma transacción: si fn retorna error
// se hace rollback, si no, commit.
type TxRunner interface {
	Run(fn func(products repository.ProductRepository, sales repository.SaleRepository) error) error
}

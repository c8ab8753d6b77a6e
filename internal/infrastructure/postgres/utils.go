package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation es el código SQLSTATE de violación de constraint único.
const uniqueViolation = "23505"

// isUniqueViolation detecta el alta de un código, barcode o email repetido,
// para que los repositorios lo traduzcan a domain.ErrDuplicate.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

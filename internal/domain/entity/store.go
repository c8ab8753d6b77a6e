package entity

import "time"

// Store representa una tienda física. El storeId es la clave de alcance
// de los datos: usuarios admin y cashier ven solo su tienda.
type Store struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

package repository

import "github.com/tu-usuario/retail-pos/internal/domain/entity"

// UserRepository define el puerto de persistencia para las cuentas con
// credenciales (el rol vive en el directorio de autorización, no aquí).
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List() ([]*entity.User, error)
}

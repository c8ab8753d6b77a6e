package entity

import "time"

// User representa una cuenta con credenciales para login.
// El rol NO se guarda aquí: se resuelve contra el directorio de usuarios
// autorizados (internal/domain/access); una cuenta sin entrada en el
// directorio no puede iniciar sesión.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

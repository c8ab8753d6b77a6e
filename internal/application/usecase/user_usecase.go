package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/retail-pos/internal/application/dto"
	"github.com/tu-usuario/retail-pos/internal/domain"
	"github.com/tu-usuario/retail-pos/internal/domain/access"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
)

// UserUseCase gestión de cuentas y del directorio de autorización. Las cuentas
// guardan credenciales; el rol vive en el directorio y es de solo lectura aquí.
type UserUseCase struct {
	repo     repository.UserRepository
	dir      access.Directory
	resolver *access.Resolver
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, dir access.Directory, resolver *access.Resolver) *UserUseCase {
	return &UserUseCase{repo: repo, dir: dir, resolver: resolver}
}

// RegisterRequest entrada para crear una cuenta.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,min=1"`
}

// Register crea la cuenta de un email que ya figura en el directorio.
// Solo super admin gestiona usuarios.
func (uc *UserUseCase) Register(actorEmail string, in RegisterRequest) error {
	if !uc.resolver.HasPermission(actorEmail, access.PermManageUsers) {
		return domain.ErrForbidden
	}
	if _, ok := uc.dir.Lookup(in.Email); !ok {
		// Una cuenta sin entrada en el directorio jamás podría iniciar
		// sesión; se rechaza en el alta para que el error sea visible.
		return domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	return uc.repo.Create(&entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// Directory lista las entradas del directorio de autorización.
func (uc *UserUseCase) Directory(actorEmail string) ([]dto.DirectoryUserResponse, error) {
	if !uc.resolver.HasPermission(actorEmail, access.PermManageUsers) {
		return nil, domain.ErrForbidden
	}
	users := uc.dir.All()
	out := make([]dto.DirectoryUserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.DirectoryUserResponse{
			Email:     u.Email,
			Role:      string(u.Role),
			StoreID:   u.StoreID,
			StoreName: u.StoreName,
		})
	}
	return out, nil
}

// Package auth implementa login con credenciales y emisión de JWT. Autenticar
// no basta: el email además debe figurar en el directorio de autorización, si
// no, el login se rechaza aunque la contraseña sea correcta.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/retail-pos/internal/application/dto"
	"github.com/tu-usuario/retail-pos/internal/domain"
	"github.com/tu-usuario/retail-pos/internal/domain/access"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
	"github.com/tu-usuario/retail-pos/pkg/jwt"
	"github.com/tu-usuario/retail-pos/pkg/logger"
)

// Config parámetros de emisión de tokens.
type Config struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}

// UseCase casos de uso de autenticación e identidad.
type UseCase struct {
	users    repository.UserRepository
	resolver *access.Resolver
	cfg      Config
	log      *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(users repository.UserRepository, resolver *access.Resolver, cfg Config, log *logger.Logger) *UseCase {
	return &UseCase{users: users, resolver: resolver, cfg: cfg, log: log}
}

// Login verifica credenciales y autorización, y emite el token. Todos los
// caminos de fallo responden ErrUnauthorized: no se revela si el email existe.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.FindByEmail(in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if user.Status != "active" {
		return nil, domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}

	role := uc.resolver.Role(user.Email)
	if role == "" {
		uc.log.Warn().Str("email", user.Email).Msg("login con credenciales válidas pero sin entrada en el directorio")
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.cfg.Secret, user.Email, string(role), uc.resolver.StoreID(user.Email), uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	me := uc.me(user.Email, user.Name)
	return &dto.LoginResponse{Token: token, User: *me}, nil
}

// Me devuelve identidad, permisos y navegación del usuario autenticado.
func (uc *UseCase) Me(email string) (*dto.MeResponse, error) {
	if !uc.resolver.IsAuthorized(email) {
		return nil, domain.ErrUnauthorized
	}
	name := ""
	if user, err := uc.users.FindByEmail(email); err == nil {
		name = user.Name
	}
	return uc.me(email, name), nil
}

func (uc *UseCase) me(email, name string) *dto.MeResponse {
	role := uc.resolver.Role(email)

	perms := uc.resolver.Permissions(email)
	permStrings := make([]string, 0, len(perms))
	for _, p := range perms {
		permStrings = append(permStrings, string(p))
	}

	nav := uc.resolver.NavigationItems(email)
	navOut := make([]dto.NavItem, 0, len(nav))
	for _, n := range nav {
		navOut = append(navOut, dto.NavItem{ID: n.ID, Label: n.Label, Icon: n.Icon})
	}

	return &dto.MeResponse{
		Email:       email,
		Name:        name,
		Role:        string(role),
		RoleDisplay: access.RoleDisplayName(role),
		StoreID:     uc.resolver.StoreID(email),
		StoreName:   uc.resolver.StoreName(email),
		Permissions: permStrings,
		Navigation:  navOut,
	}
}

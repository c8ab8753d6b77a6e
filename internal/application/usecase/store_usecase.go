package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/retail-pos/internal/application/dto"
	"github.com/tu-usuario/retail-pos/internal/domain"
	"github.com/tu-usuario/retail-pos/internal/domain/access"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
)

// StoreUseCase CRUD de tiendas. Solo super admin gestiona tiendas.
type StoreUseCase struct {
	repo     repository.StoreRepository
	resolver *access.Resolver
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(repo repository.StoreRepository, resolver *access.Resolver) *StoreUseCase {
	return &StoreUseCase{repo: repo, resolver: resolver}
}

// Create crea una tienda.
func (uc *StoreUseCase) Create(email string, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	if !uc.resolver.HasPermission(email, access.PermManageStores) {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	store := &entity.Store{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// GetByID obtiene una tienda por ID; debe estar dentro del alcance del usuario.
func (uc *StoreUseCase) GetByID(email, id string) (*dto.StoreResponse, error) {
	if !uc.resolver.CanAccessStore(email, id) {
		return nil, domain.ErrForbidden
	}
	store, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// Update actualiza una tienda.
func (uc *StoreUseCase) Update(email, id string, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	if !uc.resolver.HasPermission(email, access.PermManageStores) {
		return nil, domain.ErrForbidden
	}
	store, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		store.Name = *in.Name
	}
	if in.Address != nil {
		store.Address = *in.Address
	}
	if in.Phone != nil {
		store.Phone = *in.Phone
	}
	store.UpdatedAt = time.Now()
	if err := uc.repo.Update(store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// Delete elimina una tienda.
func (uc *StoreUseCase) Delete(email, id string) error {
	if !uc.resolver.HasPermission(email, access.PermManageStores) {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

// List lista las tiendas dentro del alcance del usuario: todas para super
// admin, solo la propia para el resto.
func (uc *StoreUseCase) List(email string) ([]dto.StoreResponse, error) {
	stores, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	scoped := access.FilterByStore(uc.resolver, email, stores, func(s *entity.Store) string { return s.ID })
	out := make([]dto.StoreResponse, 0, len(scoped))
	for _, s := range scoped {
		out = append(out, *toStoreResponse(s))
	}
	return out, nil
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	return &dto.StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		Address:   s.Address,
		Phone:     s.Phone,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

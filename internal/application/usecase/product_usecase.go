package usecase

import (
	"time"

	"github.com/tu-usuario/retail-pos/internal/application/dto"
	"github.com/tu-usuario/retail-pos/internal/application/ports"
	"github.com/tu-usuario/retail-pos/internal/domain"
	"github.com/tu-usuario/retail-pos/internal/domain/access"
	"github.com/tu-usuario/retail-pos/internal/domain/barcode"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
	"github.com/tu-usuario/retail-pos/internal/domain/productcode"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo: CRUD, generación de códigos y
// barcodes, stock bajo. El alcance por tienda lo impone el resolver de acceso.
type ProductUseCase struct {
	repo              repository.ProductRepository
	cache             ports.ProductCache
	resolver          *access.Resolver
	lowStockThreshold int
}

// NewProductUseCase construye el caso de uso. cache puede ser un no-op.
func NewProductUseCase(repo repository.ProductRepository, cache ports.ProductCache, resolver *access.Resolver, lowStockThreshold int) *ProductUseCase {
	return &ProductUseCase{repo: repo, cache: cache, resolver: resolver, lowStockThreshold: lowStockThreshold}
}

// Create crea un producto. Si Code o Barcode vienen vacíos se generan a partir
// del nombre, únicos contra el catálogo completo; el código pasa a ser el ID.
func (uc *ProductUseCase) Create(email string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !uc.resolver.HasPermission(email, access.PermManageInventory) {
		return nil, domain.ErrForbidden
	}
	if !uc.resolver.CanAccessStore(email, in.StoreID) {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	all, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}

	code := in.Code
	if code == "" {
		code = productcode.GenerateUnique(in.Name, all)
	} else if !productcode.Validate(code) {
		return nil, domain.ErrInvalidInput
	}

	bc := in.Barcode
	if bc == "" {
		bc, err = barcode.GenerateUnique(in.Name, code, all)
		if err != nil {
			return nil, err
		}
	} else if !barcode.Validate(bc) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	product := &entity.Product{
		ID:        code,
		Code:      code,
		Name:      in.Name,
		Category:  in.Category,
		Price:     in.Price,
		Stock:     in.Stock,
		Barcode:   bc,
		StoreID:   in.StoreID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	uc.cache.Set(product)
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID, con paso previo por el caché.
func (uc *ProductUseCase) GetByID(email, id string) (*dto.ProductResponse, error) {
	if p, ok := uc.cache.Get(id); ok {
		if !uc.resolver.CanAccessStore(email, p.StoreID) {
			return nil, domain.ErrForbidden
		}
		return toProductResponse(p), nil
	}
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !uc.resolver.CanAccessStore(email, p.StoreID) {
		return nil, domain.ErrForbidden
	}
	uc.cache.Set(p)
	return toProductResponse(p), nil
}

// GetByBarcode busca un producto por barcode (camino caliente de facturación).
func (uc *ProductUseCase) GetByBarcode(email, code string) (*dto.ProductResponse, error) {
	if !barcode.Validate(code) {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.repo.GetByBarcode(code)
	if err != nil {
		return nil, err
	}
	if !uc.resolver.CanAccessStore(email, p.StoreID) {
		return nil, domain.ErrForbidden
	}
	return toProductResponse(p), nil
}

// Update actualiza campos editables. Code y Barcode no se tocan aquí.
func (uc *ProductUseCase) Update(email, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if !uc.resolver.HasPermission(email, access.PermManageInventory) {
		return nil, domain.ErrForbidden
	}
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !uc.resolver.CanAccessStore(email, p.StoreID) {
		return nil, domain.ErrForbidden
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		p.Stock = *in.Stock
	}
	p.UpdatedAt = time.Now()

	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	uc.cache.Set(p)
	return toProductResponse(p), nil
}

// Delete elimina un producto y lo purga del caché.
func (uc *ProductUseCase) Delete(email, id string) error {
	if !uc.resolver.HasPermission(email, access.PermManageInventory) {
		return domain.ErrForbidden
	}
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if !uc.resolver.CanAccessStore(email, p.StoreID) {
		return domain.ErrForbidden
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.cache.Delete(id)
	return nil
}

// List lista el catálogo dentro del alcance de tienda del usuario.
func (uc *ProductUseCase) List(email string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()

	storeID, empty := uc.scope(email)
	if empty {
		return &dto.ProductListResponse{Items: []dto.ProductResponse{}, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
	}

	products, err := uc.repo.ListByStore(storeID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// LowStock lista productos con stock en o bajo el umbral configurado, dentro
// del alcance de tienda del usuario.
func (uc *ProductUseCase) LowStock(email string) ([]dto.ProductResponse, error) {
	storeID, empty := uc.scope(email)
	if empty {
		return []dto.ProductResponse{}, nil
	}
	products, err := uc.repo.ListLowStock(storeID, uc.lowStockThreshold)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// SuggestCodes devuelve códigos candidatos para un nombre (salida consultiva).
func (uc *ProductUseCase) SuggestCodes(name string, count int) (*dto.SuggestCodesResponse, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if count <= 0 {
		count = 3
	}
	return &dto.SuggestCodesResponse{Name: name, Suggestions: productcode.Suggest(name, count)}, nil
}

// AssignMissingCodes asigna código a todo producto del catálogo que no tenga,
// alimentando cada código generado de vuelta al acumulador del lote.
func (uc *ProductUseCase) AssignMissingCodes(email string) (*dto.BulkAssignResponse, error) {
	if !uc.resolver.HasPermission(email, access.PermManageInventory) {
		return nil, domain.ErrForbidden
	}
	all, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}

	used := productcode.NewUsedCodes(all)
	out := &dto.BulkAssignResponse{}
	for _, p := range all {
		if p.Code != "" {
			out.Skipped++
			continue
		}
		p.Code = used.Generate(p.Name)
		p.UpdatedAt = time.Now()
		if err := uc.repo.Update(p); err != nil {
			return nil, err
		}
		uc.cache.Set(p)
		out.Assigned++
	}
	return out, nil
}

// AssignMissingBarcodes genera barcode para todo producto que no tenga.
// El inventario completo actúa como conjunto de colisión.
func (uc *ProductUseCase) AssignMissingBarcodes(email string) (*dto.BulkAssignResponse, error) {
	if !uc.resolver.HasPermission(email, access.PermManageBarcodes) {
		return nil, domain.ErrForbidden
	}
	all, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}

	out := &dto.BulkAssignResponse{}
	for _, p := range all {
		if p.Barcode != "" {
			out.Skipped++
			continue
		}
		code, err := barcode.GenerateUnique(p.Name, p.CodeOrID(), all)
		if err != nil {
			return nil, err
		}
		p.Barcode = code
		p.UpdatedAt = time.Now()
		if err := uc.repo.Update(p); err != nil {
			return nil, err
		}
		uc.cache.Set(p)
		out.Assigned++
	}
	return out, nil
}

// scope traduce el alcance del usuario a un filtro de ListByStore:
// storeID vacío = todas las tiendas; empty=true = sin acceso a ninguna.
func (uc *ProductUseCase) scope(email string) (storeID string, empty bool) {
	ids := uc.resolver.AccessibleStoreIDs(email)
	switch {
	case ids == nil:
		return "", false
	case len(ids) == 0:
		return "", true
	default:
		return ids[0], false
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Code:      p.Code,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		Stock:     p.Stock,
		Barcode:   p.Barcode,
		StoreID:   p.StoreID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

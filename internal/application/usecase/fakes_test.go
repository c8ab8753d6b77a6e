package usecase_test

import (
	"sort"

	"github.com/tu-usuario/retail-pos/internal/domain"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
)

// fakeProductRepo repositorio en memoria para los tests de casos de uso.
type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(seed ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range seed {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	if _, ok := r.products[p.ID]; ok {
		return domain.ErrDuplicate
	}
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) GetByBarcode(code string) (*entity.Product, error) {
	for _, p := range r.all() {
		if p.Barcode == code {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) ListByStore(storeID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.all() {
		if storeID == "" || p.StoreID == storeID {
			out = append(out, p)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeProductRepo) ListAll() ([]*entity.Product, error) {
	return r.all(), nil
}

func (r *fakeProductRepo) ListLowStock(storeID string, threshold int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.all() {
		if (storeID == "" || p.StoreID == storeID) && p.Stock <= threshold {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) DecrementStock(id string, qty int) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Stock < qty {
		return domain.ErrInsufficientStock
	}
	p.Stock -= qty
	return nil
}

// all devuelve los productos ordenados por ID para que los tests sean
// deterministas (los maps de Go no garantizan orden).
func (r *fakeProductRepo) all() []*entity.Product {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// fakeCache caché en memoria que registra borrados para verificación.
type fakeCache struct {
	entries map[string]*entity.Product
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]*entity.Product)}
}

func (c *fakeCache) Get(id string) (*entity.Product, bool) {
	p, ok := c.entries[id]
	return p, ok
}

func (c *fakeCache) Set(p *entity.Product) { c.entries[p.ID] = p }

func (c *fakeCache) Delete(id string) {
	delete(c.entries, id)
	c.deleted = append(c.deleted, id)
}

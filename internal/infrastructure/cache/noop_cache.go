package cache

import (
	"github.com/tu-usuario/retail-pos/internal/application/ports"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
)

var _ ports.ProductCache = (*NoopCache)(nil)

// NoopCache caché nulo para cuando Redis no está configurado.
type NoopCache struct{}

// NewNoopCache construye el caché nulo.
func NewNoopCache() *NoopCache { return &NoopCache{} }

func (NoopCache) Get(string) (*entity.Product, bool) { return nil, false }
func (NoopCache) Set(*entity.Product)                {}
func (NoopCache) Delete(string)                      {}

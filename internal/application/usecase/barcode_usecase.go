package usecase

import (
	"github.com/tu-usuario/retail-pos/internal/application/dto"
	"github.com/tu-usuario/retail-pos/internal/application/ports"
	"github.com/tu-usuario/retail-pos/internal/domain"
	"github.com/tu-usuario/retail-pos/internal/domain/barcode"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
)

// BarcodeUseCase operaciones sueltas de barcode: generar, decodificar,
// renderizar como imagen y exponer la tabla de categorías.
type BarcodeUseCase struct {
	products repository.ProductRepository
	renderer ports.BarcodeRenderer
}

// NewBarcodeUseCase construye el caso de uso.
func NewBarcodeUseCase(products repository.ProductRepository, renderer ports.BarcodeRenderer) *BarcodeUseCase {
	return &BarcodeUseCase{products: products, renderer: renderer}
}

// Generate genera un barcode único contra el catálogo para el nombre dado.
func (uc *BarcodeUseCase) Generate(in dto.GenerateBarcodeRequest) (*dto.BarcodeResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	all, err := uc.products.ListAll()
	if err != nil {
		return nil, err
	}
	code, err := barcode.GenerateUnique(in.Name, in.ProductID, all)
	if err != nil {
		return nil, err
	}
	return toBarcodeResponse(code), nil
}

// Decode descompone un barcode en sus componentes.
func (uc *BarcodeUseCase) Decode(code string) (*dto.BarcodeResponse, error) {
	if barcode.ParseInfo(code) == nil {
		return nil, domain.ErrInvalidInput
	}
	return toBarcodeResponse(code), nil
}

// Image renderiza el barcode como PNG escaneable (CODE128).
func (uc *BarcodeUseCase) Image(code string, width, height int) ([]byte, error) {
	if !barcode.Validate(code) {
		return nil, domain.ErrInvalidInput
	}
	if width <= 0 {
		width = 300
	}
	if height <= 0 {
		height = 100
	}
	return uc.renderer.Render(code, width, height)
}

// Categories expone la tabla ordenada de categorías de barcode.
func (uc *BarcodeUseCase) Categories() []dto.BarcodeCategoryResponse {
	cats := barcode.Categories()
	out := make([]dto.BarcodeCategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, dto.BarcodeCategoryResponse{Code: c.Code, Name: c.Name, Keywords: c.Keywords})
	}
	return out
}

func toBarcodeResponse(code string) *dto.BarcodeResponse {
	info := barcode.ParseInfo(code)
	return &dto.BarcodeResponse{
		Barcode:         info.FullBarcode,
		StorePrefix:     info.StorePrefix,
		CategoryCode:    info.CategoryCode,
		CategoryName:    info.CategoryName,
		ProductSequence: info.ProductSequence,
		CheckDigit:      info.CheckDigit,
	}
}

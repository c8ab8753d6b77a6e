package dto

// GenerateBarcodeRequest entrada para generar un barcode suelto.
type GenerateBarcodeRequest struct {
	Name      string `json:"name" validate:"required,min=1"`
	ProductID string `json:"product_id"`
}

// BarcodeResponse barcode generado con su desglose.
type BarcodeResponse struct {
	Barcode         string `json:"barcode"`
	StorePrefix     string `json:"store_prefix"`
	CategoryCode    string `json:"category_code"`
	CategoryName    string `json:"category_name"`
	ProductSequence string `json:"product_sequence"`
	CheckDigit      string `json:"check_digit"`
}

// BarcodeCategoryResponse una fila de la tabla de categorías.
type BarcodeCategoryResponse struct {
	Code     string   `json:"code"`
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

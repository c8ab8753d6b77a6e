// Package barcodeimg renderiza barcodes como PNG escaneable (CODE128) para
// imprimir etiquetas de góndola.
package barcodeimg

import (
	"bytes"
	"fmt"
	"image/png"

	bbarcode "github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"

	"github.com/tu-usuario/retail-pos/internal/application/ports"
)

var _ ports.BarcodeRenderer = (*Code128Renderer)(nil)

// Code128Renderer implementa ports.BarcodeRenderer con CODE128.
type Code128Renderer struct{}

// NewCode128Renderer construye el renderizador.
func NewCode128Renderer() *Code128Renderer { return &Code128Renderer{} }

// Render codifica el texto como CODE128 y lo escala al tamaño pedido.
func (Code128Renderer) Render(code string, width, height int) ([]byte, error) {
	encoded, err := code128.Encode(code)
	if err != nil {
		return nil, fmt.Errorf("barcodeimg: codificar %q: %w", code, err)
	}
	scaled, err := bbarcode.Scale(encoded, width, height)
	if err != nil {
		return nil, fmt.Errorf("barcodeimg: escalar: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("barcodeimg: png: %w", err)
	}
	return buf.Bytes(), nil
}

package ports

// BarcodeRenderer define el puerto de salida para renderizar un barcode como
// imagen escaneable (PNG).
type BarcodeRenderer interface {
	Render(code string, width, height int) ([]byte, error)
}

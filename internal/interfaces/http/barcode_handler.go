package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/retail-pos/internal/application/dto"
	"github.com/tu-usuario/retail-pos/internal/application/usecase"
)

// BarcodeHandler operaciones sueltas de barcode (protegido).
type BarcodeHandler struct {
	uc *usecase.BarcodeUseCase
}

// NewBarcodeHandler construye el handler.
func NewBarcodeHandler(uc *usecase.BarcodeUseCase) *BarcodeHandler {
	return &BarcodeHandler{uc: uc}
}

// Generate godoc
// @Summary      Generar un barcode único para un nombre de producto
// @Tags         barcodes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateBarcodeRequest  true  "Nombre y (opcional) ID"
// @Success      200   {object}  dto.BarcodeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/barcodes/generate [post]
func (h *BarcodeHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateBarcodeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Generate(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Decode godoc
// @Summary      Descomponer un barcode en sus componentes
// @Tags         barcodes
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "Barcode de 11 dígitos"
// @Success      200   {object}  dto.BarcodeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/barcodes/{code} [get]
func (h *BarcodeHandler) Decode(c *fiber.Ctx) error {
	out, err := h.uc.Decode(c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Image godoc
// @Summary      Renderizar un barcode como PNG (CODE128)
// @Tags         barcodes
// @Security     Bearer
// @Produce      png
// @Param        code    path   string  true   "Barcode de 11 dígitos"
// @Param        width   query  int     false  "Ancho en px"   default(300)
// @Param        height  query  int     false  "Alto en px"    default(100)
// @Success      200  {file}  binary
// @Router       /api/barcodes/{code}/image [get]
func (h *BarcodeHandler) Image(c *fiber.Ctx) error {
	img, err := h.uc.Image(c.Params("code"), c.QueryInt("width", 300), c.QueryInt("height", 100))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(img)
}

// Categories godoc
// @Summary      Tabla de categorías de barcode (orden = precedencia)
// @Tags         barcodes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BarcodeCategoryResponse
// @Router       /api/barcodes/categories [get]
func (h *BarcodeHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(h.uc.Categories())
}

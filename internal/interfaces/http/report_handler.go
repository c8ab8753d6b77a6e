package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/retail-pos/internal/application/dto"
	"github.com/tu-usuario/retail-pos/internal/application/usecase"
)

// ReportHandler reportes de ventas (protegido).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Sales godoc
// @Summary      Reporte de ventas por rango de fechas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from      query  string  true   "Desde (2006-01-02)"
// @Param        to        query  string  true   "Hasta (2006-01-02, inclusivo)"
// @Param        store_id  query  string  false  "Tienda (solo super admin)"
// @Success      200  {object}  dto.ReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	in := dto.ReportRequest{
		StoreID: c.Query("store_id"),
		From:    c.Query("from"),
		To:      c.Query("to"),
	}
	if in.From == "" || in.To == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from y to son requeridos"})
	}
	out, err := h.uc.SalesReport(GetEmail(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

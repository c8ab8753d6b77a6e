package usecase

import (
	"time"

	"github.com/tu-usuario/retail-pos/internal/application/dto"
	"github.com/tu-usuario/retail-pos/internal/domain"
	"github.com/tu-usuario/retail-pos/internal/domain/access"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
)

const topProductsLimit = 5

// ReportUseCase reportes de ventas agregados por rango de fechas.
type ReportUseCase struct {
	repo     repository.ReportRepository
	resolver *access.Resolver
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository, resolver *access.Resolver) *ReportUseCase {
	return &ReportUseCase{repo: repo, resolver: resolver}
}

// SalesReport genera el reporte del rango [from, to]. Fechas en formato
// 2006-01-02; to es inclusivo (se extiende al fin del día). El alcance de
// tienda se fuerza al del usuario salvo para super admin.
func (uc *ReportUseCase) SalesReport(email string, in dto.ReportRequest) (*dto.ReportResponse, error) {
	if !uc.resolver.HasPermission(email, access.PermViewReports) {
		return nil, domain.ErrForbidden
	}

	from, err := time.Parse("2006-01-02", in.From)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	to, err := time.Parse("2006-01-02", in.To)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	to = to.AddDate(0, 0, 1)

	// Super admin elige la tienda libremente (vacío = todas); el resto queda
	// forzado a su tienda asignada.
	storeID := in.StoreID
	if !uc.resolver.IsSuperAdmin(email) {
		if storeID == "" {
			storeID = uc.resolver.StoreID(email)
		} else if !uc.resolver.CanAccessStore(email, storeID) {
			return nil, domain.ErrForbidden
		}
	}

	summary, err := uc.repo.SalesSummary(storeID, from, to)
	if err != nil {
		return nil, err
	}
	top, err := uc.repo.TopProducts(storeID, from, to, topProductsLimit)
	if err != nil {
		return nil, err
	}

	out := &dto.ReportResponse{
		Summary: dto.SalesSummaryResponse{
			TotalRevenue: summary.TotalRevenue,
			BillCount:    summary.BillCount,
			ItemsSold:    summary.ItemsSold,
		},
		TopProducts: make([]dto.TopProductResponse, 0, len(top)),
	}
	for _, t := range top {
		out.TopProducts = append(out.TopProducts, dto.TopProductResponse{
			ProductID: t.ProductID,
			Name:      t.Name,
			Quantity:  t.Quantity,
			Revenue:   t.Revenue,
		})
	}
	return out, nil
}

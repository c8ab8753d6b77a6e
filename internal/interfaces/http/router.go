package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/retail-pos/internal/application/auth"
	"github.com/tu-usuario/retail-pos/internal/application/billing"
	"github.com/tu-usuario/retail-pos/internal/application/usecase"
	"github.com/tu-usuario/retail-pos/internal/domain/access"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.UseCase
	ProductUC *usecase.ProductUseCase
	BarcodeUC *usecase.BarcodeUseCase
	StoreUC   *usecase.StoreUseCase
	UserUC    *usecase.UserUseCase
	ReportUC  *usecase.ReportUseCase
	BillingUC *billing.UseCase
	Resolver  *access.Resolver
	JWTSecret string
}

// Router registra las rutas de la API. Cada grupo queda detrás del permiso
// que exige; los usecases vuelven a validar (defensa en capas, el resolver es
// la fuente de verdad).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público, identidad protegida)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	perm := func(p access.Permission) fiber.Handler {
		return RequirePermission(deps.Resolver, p)
	}

	// Products: lecturas con view_inventory, escrituras con manage_inventory.
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", perm(access.PermViewInventory), productHandler.List)
	products.Get("/low-stock", perm(access.PermViewInventory), productHandler.LowStock)
	products.Get("/suggest-codes", perm(access.PermManageInventory), productHandler.SuggestCodes)
	products.Get("/barcode/:barcode", perm(access.PermViewInventory), productHandler.GetByBarcode)
	products.Get("/:id", perm(access.PermViewInventory), productHandler.GetByID)
	products.Post("/", perm(access.PermManageInventory), productHandler.Create)
	products.Put("/:id", perm(access.PermManageInventory), productHandler.Update)
	products.Delete("/:id", perm(access.PermManageInventory), productHandler.Delete)
	products.Post("/assign-codes", perm(access.PermManageInventory), productHandler.AssignMissingCodes)
	products.Post("/assign-barcodes", perm(access.PermManageBarcodes), productHandler.AssignMissingBarcodes)

	// Barcodes sueltos (generador / decodificador / etiqueta PNG)
	barcodes := protected.Group("/barcodes", perm(access.PermManageBarcodes))
	barcodeHandler := NewBarcodeHandler(deps.BarcodeUC)
	barcodes.Post("/generate", barcodeHandler.Generate)
	barcodes.Get("/categories", barcodeHandler.Categories)
	barcodes.Get("/:code", barcodeHandler.Decode)
	barcodes.Get("/:code/image", barcodeHandler.Image)

	// Sales (caja)
	sales := protected.Group("/sales", perm(access.PermManageBilling))
	saleHandler := NewSaleHandler(deps.BillingUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Get("/:id/receipt", saleHandler.Receipt)

	// Stores: lectura para cualquier autorizado, escritura solo super admin.
	stores := protected.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Get("/", perm(access.PermViewDashboard), storeHandler.List)
	stores.Get("/:id", perm(access.PermViewDashboard), storeHandler.GetByID)
	stores.Post("/", perm(access.PermManageStores), storeHandler.Create)
	stores.Put("/:id", perm(access.PermManageStores), storeHandler.Update)
	stores.Delete("/:id", perm(access.PermManageStores), storeHandler.Delete)

	// Users (solo super admin)
	users := protected.Group("/users", perm(access.PermManageUsers))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Register)
	users.Get("/directory", userHandler.Directory)

	// Reports
	reports := protected.Group("/reports", perm(access.PermViewReports))
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/sales", reportHandler.Sales)
}

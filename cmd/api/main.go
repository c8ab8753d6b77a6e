package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/retail-pos/internal/application/auth"
	"github.com/tu-usuario/retail-pos/internal/application/billing"
	"github.com/tu-usuario/retail-pos/internal/application/ports"
	"github.com/tu-usuario/retail-pos/internal/application/usecase"
	"github.com/tu-usuario/retail-pos/internal/domain/access"
	"github.com/tu-usuario/retail-pos/internal/infrastructure/barcodeimg"
	"github.com/tu-usuario/retail-pos/internal/infrastructure/cache"
	"github.com/tu-usuario/retail-pos/internal/infrastructure/directory"
	infrapdf "github.com/tu-usuario/retail-pos/internal/infrastructure/pdf"
	"github.com/tu-usuario/retail-pos/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/retail-pos/internal/interfaces/http"
	"github.com/tu-usuario/retail-pos/pkg/config"
	"github.com/tu-usuario/retail-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Directorio de autorización: archivo YAML o el directorio por defecto.
	// Si el archivo está configurado pero no se puede leer, no arrancamos.
	dir, err := directory.Load(cfg.Store.UsersFile, log)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.Store.UsersFile).Msg("cargar directorio de usuarios")
	}
	resolver := access.NewResolver(dir)

	// Caché de productos: Redis si está configurado, si no no-op.
	var productCache ports.ProductCache = cache.NewNoopCache()
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisProductCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, log)
		if err := redisCache.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("Redis no disponible, caché deshabilitada")
		} else {
			productCache = redisCache
			defer redisCache.Close()
		}
	}

	gstPercent, err := decimal.NewFromString(cfg.Store.GSTPercent)
	if err != nil {
		log.Fatal().Err(err).Str("value", cfg.Store.GSTPercent).Msg("STORE_GST_PERCENT inválido")
	}

	receiptGen := infrapdf.NewMarotoReceiptGenerator()
	barcodeRenderer := barcodeimg.NewCode128Renderer()

	productUC := usecase.NewProductUseCase(productRepo, productCache, resolver, cfg.Store.LowStockLevel)
	barcodeUC := usecase.NewBarcodeUseCase(productRepo, barcodeRenderer)
	storeUC := usecase.NewStoreUseCase(storeRepo, resolver)
	userUC := usecase.NewUserUseCase(userRepo, dir, resolver)
	reportUC := usecase.NewReportUseCase(reportRepo, resolver)
	billingUC := billing.NewUseCase(txRunner, saleRepo, receiptGen, resolver, gstPercent, cfg.Store.ReceiptHeader, log)
	authUC := auth.NewUseCase(userRepo, resolver, auth.Config{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		ExpMinutes: cfg.JWT.Expiration,
	}, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Retail POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		ProductUC: productUC,
		BarcodeUC: barcodeUC,
		StoreUC:   storeUC,
		UserUC:    userUC,
		ReportUC:  reportUC,
		BillingUC: billingUC,
		Resolver:  resolver,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

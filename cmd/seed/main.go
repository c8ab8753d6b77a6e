// seed puebla la base con datos de arranque: la tienda principal, un catálogo
// de ejemplo con códigos y barcodes generados, y cuentas para los emails del
// directorio por defecto.
//
// Uso: go run ./cmd/seed [-password <clave inicial>]
// Idempotente a nivel de fila: los duplicados se saltan con aviso.
package main

import (
	"context"
	"errors"
	"flag"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/retail-pos/internal/domain"
	"github.com/tu-usuario/retail-pos/internal/domain/access"
	"github.com/tu-usuario/retail-pos/internal/domain/barcode"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
	"github.com/tu-usuario/retail-pos/internal/domain/productcode"
	"github.com/tu-usuario/retail-pos/internal/infrastructure/postgres"
	"github.com/tu-usuario/retail-pos/pkg/config"
	"github.com/tu-usuario/retail-pos/pkg/logger"
)

const mainStoreID = "store_001"

type seedProduct struct {
	name  string
	price string
	stock int
}

// Catálogo inicial de la tienda principal.
var catalog = []seedProduct{
	{"Apple Fuji (kg)", "4.50", 50},
	{"Whole Milk 1L", "2.10", 30},
	{"Brown Bread", "1.80", 20},
	{"Pasta 500g", "1.25", 100},
	{"Eggs Dozen", "3.00", 40},
	{"Orange Juice 1L", "2.75", 25},
	{"Cheddar Cheese 200g", "3.50", 15},
	{"Chicken Breast (kg)", "7.20", 60},
	{"Rice 1kg", "1.90", 80},
	{"Banana (kg)", "3.00", 70},
	{"Yogurt 150g", "0.90", 45},
	{"Cereal Box", "4.00", 35},
	{"Butter 250g", "2.50", 55},
	{"Tomato Sauce 500g", "1.60", 90},
	{"Lettuce", "1.20", 40},
	{"Cucumber", "0.80", 50},
	{"Carrots (kg)", "1.50", 60},
	{"Potatoes (kg)", "2.00", 70},
	{"Onions (kg)", "1.30", 80},
	{"Garlic Bulb", "0.70", 100},
}

func main() {
	password := flag.String("password", "changeme123", "clave inicial de las cuentas sembradas")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	storeRepo := postgres.NewStoreRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	now := time.Now()

	// Tienda principal
	err = storeRepo.Create(&entity.Store{
		ID:        mainStoreID,
		Name:      "Main Store",
		Address:   "123 Market Street",
		Phone:     "000-000-0000",
		CreatedAt: now,
		UpdatedAt: now,
	})
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		log.Info().Str("store", mainStoreID).Msg("tienda ya existe, se salta")
	case err != nil:
		log.Fatal().Err(err).Msg("crear tienda principal")
	default:
		log.Info().Str("store", mainStoreID).Msg("tienda creada")
	}

	// Catálogo: los códigos se generan en lote (acumulador secuencial) y cada
	// barcode contra el inventario que crece con el propio lote.
	products := make([]*entity.Product, 0, len(catalog))
	for _, sp := range catalog {
		price, perr := decimal.NewFromString(sp.price)
		if perr != nil {
			log.Fatal().Err(perr).Str("product", sp.name).Msg("precio inválido en el catálogo")
		}
		products = append(products, &entity.Product{
			Name:      sp.name,
			Category:  barcode.CategoryName(barcode.CategoryCode(sp.name)),
			Price:     price,
			Stock:     sp.stock,
			StoreID:   mainStoreID,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	existing, err := productRepo.ListAll()
	if err != nil {
		log.Fatal().Err(err).Msg("listar productos existentes")
	}
	productcode.GenerateBulk(products, productcode.NewUsedCodes(existing))

	inventory := append([]*entity.Product{}, existing...)
	created, skipped := 0, 0
	for _, p := range products {
		bc, berr := barcode.GenerateUnique(p.Name, p.ID, inventory)
		if berr != nil {
			log.Fatal().Err(berr).Str("product", p.Name).Msg("generar barcode")
		}
		p.Barcode = bc
		inventory = append(inventory, p)

		if cerr := productRepo.Create(p); cerr != nil {
			if errors.Is(cerr, domain.ErrDuplicate) {
				skipped++
				continue
			}
			log.Fatal().Err(cerr).Str("product", p.Name).Msg("crear producto")
		}
		created++
	}
	log.Info().Int("created", created).Int("skipped", skipped).Msg("catálogo sembrado")

	// Cuentas para los emails del directorio por defecto
	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear clave inicial")
	}
	for _, u := range access.DefaultUsers() {
		cerr := userRepo.Create(&entity.User{
			ID:           uuid.New().String(),
			Email:        u.Email,
			PasswordHash: string(hash),
			Name:         u.Email,
			Status:       "active",
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		switch {
		case errors.Is(cerr, domain.ErrDuplicate):
			log.Info().Str("email", u.Email).Msg("cuenta ya existe, se salta")
		case cerr != nil:
			log.Fatal().Err(cerr).Str("email", u.Email).Msg("crear cuenta")
		default:
			log.Info().Str("email", u.Email).Str("role", string(u.Role)).Msg("cuenta creada")
		}
	}

	log.Info().Msg("seed completado")
}

// seed pobla la base con los usuarios iniciales y un inventario de ejemplo.
//
// Uso: go run ./cmd/seed
// Idempotente: items y usuarios ya existentes se saltan sin error.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/application/auth"
	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/ledger"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/infrastructure/postgres"
	"github.com/jhoicas/estoque-api/pkg/config"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

type seedItem struct {
	code     string
	name     string
	unit     string
	quantity int64
	minimum  int64
	maximum  int64
	location string
	supplier string
	price    string
}

var demoItems = []seedItem{
	{"001", "ABRAÇADEIRA TIPO D 1/2", "PÇ", 50, 10, 100, "A-01", "Fornecedor A", "2.50"},
	{"002", "ABRAÇADEIRA TIPO D 3/4", "PÇ", 30, 15, 80, "A-02", "Fornecedor A", "3.00"},
	{"003", "ABRAÇADEIRA TIPO D 1", "PÇ", 5, 20, 60, "A-03", "Fornecedor A", "3.50"},
	{"004", "ABRAÇADEIRA TIPO D 2", "PÇ", 25, 10, 50, "A-04", "Fornecedor B", "4.50"},
	{"005", "ABRAÇADEIRA TIPO U 1/2", "PÇ", 100, 30, 200, "B-01", "Fornecedor B", "1.80"},
	{"006", "ABRAÇADEIRA TIPO U 3/4", "PÇ", 75, 25, 150, "B-02", "Fornecedor C", "2.20"},
	{"007", "PARAFUSO SEXTAVADO 1/2 x 2", "PÇ", 200, 50, 300, "C-01", "Fornecedor C", "0.50"},
	{"008", "PORCA SEXTAVADA 1/2", "PÇ", 150, 50, 250, "C-02", "Fornecedor D", "0.30"},
	{"009", "ARRUELA LISA 1/2", "PÇ", 180, 100, 300, "C-03", "Fornecedor D", "0.15"},
	{"010", "BUCHA DE REDUÇÃO 1 x 3/4", "PÇ", 8, 20, 60, "D-01", "Fornecedor E", "5.00"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	itemRepo := postgres.NewItemRepository(pool)
	movRepo := postgres.NewMovementRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledgerUC := ledger.NewUseCase(txRunner, itemRepo, movRepo, ledger.Config{}, log)
	authUC := auth.NewUseCase(userRepo, cfg.JWT, log)

	users := []dto.CreateUserRequest{
		{Username: "admin", Password: "admin123", Name: "Administrador", Role: entity.RoleAdmin},
		{Username: "user", Password: "user123", Name: "Operador", Role: entity.RoleOperador},
	}
	for _, u := range users {
		if _, err := authUC.CreateUser(ctx, u); err != nil {
			if errors.Is(err, domain.ErrUserAlreadyExists) {
				log.Info().Str("username", u.Username).Msg("usuario ya existe, se salta")
				continue
			}
			log.Fatal().Err(err).Str("username", u.Username).Msg("crear usuario")
		}
	}

	for _, it := range demoItems {
		price, err := decimal.NewFromString(it.price)
		if err != nil {
			log.Fatal().Err(err).Str("code", it.code).Msg("precio inválido")
		}
		err = ledgerUC.Create(ctx, ledger.CreateInput{
			Code:        it.code,
			Name:        it.name,
			Description: "Item de ejemplo",
			Unit:        it.unit,
			Quantity:    it.quantity,
			Minimum:     it.minimum,
			Maximum:     it.maximum,
			Location:    it.location,
			Supplier:    it.supplier,
			Price:       price,
		}, "admin")
		if err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				log.Info().Str("code", it.code).Msg("item ya existe, se salta")
				continue
			}
			log.Fatal().Err(err).Str("code", it.code).Msg("crear item")
		}
	}

	log.Info().Int("items", len(demoItems)).Int("users", len(users)).Msg("seed completado")
}

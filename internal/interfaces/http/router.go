package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/auth"
	"github.com/jhoicas/estoque-api/internal/application/ledger"
	"github.com/jhoicas/estoque-api/internal/application/report"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LedgerUC  *ledger.UseCase
	ReportUC  *report.UseCase
	AuthUC    *auth.UseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)
	anyRole := RequireRole(entity.RoleAdmin, entity.RoleOperador)

	// Items (alta y exclusión solo admin; lectura y edición para ambos roles)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.LedgerUC, deps.ReportUC)
	items.Post("/", adminOnly, itemHandler.Create)
	items.Get("/", anyRole, itemHandler.List)
	items.Get("/:code", anyRole, itemHandler.Get)
	items.Patch("/:code", anyRole, itemHandler.Update)
	items.Delete("/:code", adminOnly, itemHandler.Delete)

	// Movimientos (entradas/salidas y consulta del histórico)
	movementHandler := NewMovementHandler(deps.LedgerUC)
	items.Post("/:code/entries", anyRole, movementHandler.Entry)
	items.Post("/:code/exits", anyRole, movementHandler.Exit)
	items.Get("/:code/movements", anyRole, movementHandler.HistoryByItem)
	protected.Get("/movements", anyRole, movementHandler.History)

	// Informes y exportaciones
	reports := protected.Group("/reports", anyRole)
	reportHandler := NewReportHandler(deps.ReportUC, deps.LedgerUC)
	reports.Get("/summary", reportHandler.Summary)
	reports.Get("/alerts", reportHandler.Alerts)
	reports.Get("/abc", reportHandler.ABC)
	reports.Get("/replenishment", reportHandler.Replenishment)
	reports.Get("/suppliers", reportHandler.Suppliers)
	reports.Get("/locations", reportHandler.Locations)

	exports := protected.Group("/exports", anyRole)
	exports.Get("/csv", reportHandler.ExportCSV)
	exports.Get("/pdf", reportHandler.ExportPDF)

	// Usuarios (solo admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.AuthUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
}

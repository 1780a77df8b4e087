// Package http expone la API REST de la flota sobre Fiber.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/frenchys-amb/ambutrack-api/internal/application/analytics"
	"github.com/frenchys-amb/ambutrack-api/internal/application/auth"
	"github.com/frenchys-amb/ambutrack-api/internal/application/inventory"
	"github.com/frenchys-amb/ambutrack-api/internal/application/report"
	"github.com/frenchys-amb/ambutrack-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	AmbulanceUC   *usecase.AmbulanceUseCase
	StorageUC     *usecase.StorageUseCase
	StandardUC    *usecase.StandardUseCase
	UserUC        *usecase.UserUseCase
	ActivityUC    *usecase.ActivityUseCase
	ShortageUC    *inventory.ShortageUseCase
	RequisitionUC *inventory.RequisitionUseCase
	UsageUC       *inventory.UsageUseCase
	ChecklistUC   *inventory.ChecklistUseCase
	DashboardUC   *analytics.DashboardUseCase
	ExportUC      *report.ExportUseCase
	JWTSecret     string
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
	admin := RequireAdmin()

	// Flota
	ambulances := protected.Group("/ambulances")
	ambulanceHandler := NewAmbulanceHandler(deps.AmbulanceUC)
	ambulances.Post("/", admin, ambulanceHandler.Create)
	ambulances.Get("/", ambulanceHandler.List)
	ambulances.Get("/:id", ambulanceHandler.GetByID)
	ambulances.Put("/:id", admin, ambulanceHandler.Update)
	ambulances.Delete("/:id", admin, ambulanceHandler.Delete)
	ambulances.Get("/:id/stock", ambulanceHandler.Stock)

	// Motor de inventario por unidad
	inventoryHandler := NewInventoryHandler(deps.ShortageUC, deps.RequisitionUC, deps.UsageUC)
	ambulances.Get("/:id/inventory", inventoryHandler.Status)
	ambulances.Get("/:id/shortfalls", inventoryHandler.Shortfalls)
	ambulances.Get("/:id/shortfalls/critical", inventoryHandler.Critical)
	ambulances.Get("/:id/usage", inventoryHandler.ListUsage)

	// Almacén central (mutaciones solo admin)
	storage := protected.Group("/storage")
	storageHandler := NewStorageHandler(deps.StorageUC)
	storage.Post("/", admin, storageHandler.Create)
	storage.Get("/", storageHandler.List)
	storage.Get("/:id", storageHandler.GetByID)
	storage.Put("/:id", admin, storageHandler.Update)
	storage.Delete("/:id", admin, storageHandler.Delete)

	// Catálogo de estándares (mutaciones solo admin)
	standards := protected.Group("/standards")
	standardHandler := NewStandardHandler(deps.StandardUC)
	standards.Post("/", admin, standardHandler.Create)
	standards.Get("/", standardHandler.List)
	standards.Put("/:id", admin, standardHandler.UpdateQuantity)
	standards.Delete("/:id", admin, standardHandler.Delete)

	// Requisiciones y consumo
	requisitions := protected.Group("/requisitions")
	requisitions.Post("/", inventoryHandler.CreateRequisition)
	requisitions.Get("/", inventoryHandler.ListRequisitions)
	requisitions.Get("/:id", inventoryHandler.GetRequisition)
	protected.Post("/usage", inventoryHandler.RecordUsage)

	// Checklists
	checklists := protected.Group("/checklists")
	checklistHandler := NewChecklistHandler(deps.ChecklistUC)
	checklists.Post("/", checklistHandler.Submit)
	checklists.Get("/:id", checklistHandler.GetByID)
	ambulances.Get("/:id/checklists", checklistHandler.ListByAmbulance)

	// Reportes descargables
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ExportUC)
	reports.Get("/storage", reportHandler.StorageExport)
	reports.Get("/ambulances/:id/inventory", reportHandler.UnitInventoryExport)
	reports.Get("/ambulances/:id/shortfalls.pdf", reportHandler.ShortagePDF)
	reports.Get("/requisitions/:id.pdf", reportHandler.RequisitionPDF)

	// Panel y bitácora (solo admin)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", admin, dashboardHandler.Get)
	activityHandler := NewActivityHandler(deps.ActivityUC)
	protected.Get("/activity", admin, activityHandler.List)

	// Usuarios (solo admin)
	users := protected.Group("/users", admin)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}

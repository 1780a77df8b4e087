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

	appanalytics "github.com/frenchys-amb/ambutrack-api/internal/application/analytics"
	"github.com/frenchys-amb/ambutrack-api/internal/application/audit"
	"github.com/frenchys-amb/ambutrack-api/internal/application/auth"
	appinv "github.com/frenchys-amb/ambutrack-api/internal/application/inventory"
	"github.com/frenchys-amb/ambutrack-api/internal/application/report"
	"github.com/frenchys-amb/ambutrack-api/internal/application/usecase"
	infraexport "github.com/frenchys-amb/ambutrack-api/internal/infrastructure/export"
	infrapdf "github.com/frenchys-amb/ambutrack-api/internal/infrastructure/pdf"
	"github.com/frenchys-amb/ambutrack-api/internal/infrastructure/postgres"
	httpRouter "github.com/frenchys-amb/ambutrack-api/internal/interfaces/http"
	"github.com/frenchys-amb/ambutrack-api/pkg/config"
	"github.com/frenchys-amb/ambutrack-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	ambulanceRepo := postgres.NewAmbulanceRepository(pool)
	storageRepo := postgres.NewStorageItemRepository(pool)
	stockRepo := postgres.NewAmbulanceStockRepository(pool)
	standardRepo := postgres.NewStandardRepository(pool)
	requisitionRepo := postgres.NewRequisitionRepository(pool)
	checklistRepo := postgres.NewChecklistRepository(pool)
	usageRepo := postgres.NewUsageReportRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	recorder := audit.NewRecorder(activityRepo, log.Sub("auditoria"))

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, recorder)
	ambulanceUC := usecase.NewAmbulanceUseCase(ambulanceRepo, stockRepo, recorder)
	storageUC := usecase.NewStorageUseCase(storageRepo, recorder)
	standardUC := usecase.NewStandardUseCase(standardRepo, recorder)
	activityUC := usecase.NewActivityUseCase(activityRepo)

	shortageUC := appinv.NewShortageUseCase(standardRepo, stockRepo, ambulanceRepo)
	requisitionUC := appinv.NewRequisitionUseCase(txRunner, requisitionRepo, ambulanceRepo, recorder, log.Sub("requisiciones"))
	usageUC := appinv.NewUsageUseCase(txRunner, usageRepo, ambulanceRepo, recorder, log.Sub("consumo"))
	checklistUC := appinv.NewChecklistUseCase(checklistRepo, standardRepo, stockRepo, ambulanceRepo, recorder)
	dashboardUC := appanalytics.NewDashboardUseCase(statsRepo, standardRepo, storageRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator(cfg.App.Name)
	exportUC := report.NewExportUseCase(
		ambulanceRepo, storageRepo, stockRepo, requisitionRepo,
		shortageUC, pdfGenerator,
		infraexport.NewCSVExporter(), infraexport.NewXLSXExporter(),
	)

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
		Title:    "AmbuTrack API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		AmbulanceUC:   ambulanceUC,
		StorageUC:     storageUC,
		StandardUC:    standardUC,
		UserUC:        userUC,
		ActivityUC:    activityUC,
		ShortageUC:    shortageUC,
		RequisitionUC: requisitionUC,
		UsageUC:       usageUC,
		ChecklistUC:   checklistUC,
		DashboardUC:   dashboardUC,
		ExportUC:      exportUC,
		JWTSecret:     cfg.JWT.Secret,
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

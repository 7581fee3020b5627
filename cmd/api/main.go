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

	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/attendance"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/auth"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/notification"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/stock"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/usecase"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/visit"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/infrastructure/postgres"
	httpRouter "github.com/ade99setia/project-bdn-karanganyar-sub001/internal/interfaces/http"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/pkg/config"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("muat konfigurasi: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("memulai aplikasi")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("koneksi ke PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	visitRepo := postgres.NewSalesVisitRepository(pool)
	attendanceRepo := postgres.NewAttendanceRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	warehouseStockRepo := postgres.NewProductStockRepository(pool)
	salesStockRepo := postgres.NewSalesStockRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	notificationUC := notification.NewUseCase(notificationRepo,
		log.With().Str("component", "notification").Logger())
	transferUC := stock.NewTransferUseCase(txRunner, productRepo, warehouseRepo, userRepo, notificationUC)
	stockQueryUC := stock.NewQueryUseCase(warehouseStockRepo, salesStockRepo, movementRepo)
	visitSubmitUC := visit.NewSubmitUseCase(txRunner, transferUC, userRepo, productRepo, customerRepo, attendanceRepo)
	visitQueryUC := visit.NewQueryUseCase(visitRepo)
	attendanceUC := attendance.NewUseCase(attendanceRepo, userRepo, warehouseRepo, cfg.Geo.CheckinRadiusM)
	productUC := usecase.NewProductUseCase(productRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI lokal: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "BDN Karanganyar API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ProductUC:      productUC,
		WarehouseUC:    warehouseUC,
		UserUC:         userUC,
		StockTransfer:  transferUC,
		StockQuery:     stockQueryUC,
		VisitSubmit:    visitSubmitUC,
		VisitQuery:     visitQueryUC,
		AttendanceUC:   attendanceUC,
		NotificationUC: notificationUC,
		CustomerRepo:   customerRepo,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("server HTTP berhenti")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinyal shutdown diterima, menutup server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown server")
	}

	log.Info().Msg("aplikasi berhenti")
}

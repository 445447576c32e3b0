package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/naufalhajid/Dashboard-Ferizyan/config"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/analytics"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/fetch"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/geo"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/middleware"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/pipeline"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/repository"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/routes"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/usecase"
)

func main() {
	cfg, envLoaded := config.Load()
	log, err := config.NewLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if !envLoaded {
		log.Warn("File .env tidak ditemukan, menggunakan environment variables sistem")
	}

	// 1. Alias kolom tambahan
	aliases, err := pipeline.LoadAliasFile(cfg.AliasesFile)
	if err != nil {
		log.Fatal("gagal memuat alias kolom", zap.Error(err))
	}
	deltaMode, err := analytics.ParseDeltaMode(cfg.DeltaMode)
	if err != nil {
		log.Fatal("konfigurasi tidak valid", zap.Error(err))
	}

	// 2. Penyimpanan sesi dan usecase
	repo := repository.NewDatasetRepository(cfg.SessionTTL, time.Minute)
	defer repo.Close()

	get := fetch.Get(cfg.FetchTimeout)
	geoSvc := geo.NewService(cfg.GeoJSONURL, cfg.GeoJSONNameKey, get, log.Named("geo"))
	datasets := usecase.NewDatasetUsecase(repo, pipeline.New(aliases...), get, cfg.SpreadsheetURL, cfg.Location, log.Named("dataset"))
	dashboard := usecase.NewDashboardUsecase(geoSvc, deltaMode, log.Named("dashboard"))
	// Cache export ikut dibuang saat sesi dataset berakhir
	repo.OnEvict(dashboard.Forget)

	// 3. Server
	app := fiber.New(fiber.Config{
		AppName:   "Dashboard Demografi Karyawan",
		BodyLimit: cfg.MaxUploadMB * 1024 * 1024,
	})

	// Middleware Global
	app.Use(middleware.Recovery(!cfg.IsProduction()))
	app.Use(middleware.RequestID())
	app.Use(middleware.Cors(cfg.CorsOrigins))
	app.Use(middleware.Logger(cfg.Location.String()))
	app.Use(middleware.RateLimiter(cfg.RateLimit))

	routes.Setup(app, routes.Deps{
		Repo:      repo,
		Datasets:  datasets,
		Dashboard: dashboard,
		Location:  cfg.Location,
	})

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Server siap", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
		serverErr <- app.Listen(":" + cfg.Port)
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		// Listen gagal (mis. port terpakai): keluar dengan status non-zero
		log.Fatal("server gagal berjalan", zap.Error(err))
	case <-quit:
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)
	log.Info("Server dimatikan")
}

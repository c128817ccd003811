package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kdirani/farms/internal/application/action"
	"github.com/kdirani/farms/internal/application/attachment"
	"github.com/kdirani/farms/internal/bootstrap"
	"github.com/kdirani/farms/internal/infrastructure/auth"
	"github.com/kdirani/farms/internal/infrastructure/cache"
	"github.com/kdirani/farms/internal/infrastructure/config"
	"github.com/kdirani/farms/internal/infrastructure/logger"
	"github.com/kdirani/farms/internal/infrastructure/migration"
	"github.com/kdirani/farms/internal/infrastructure/persistence"
	infraprinting "github.com/kdirani/farms/internal/infrastructure/printing"
	"github.com/kdirani/farms/internal/infrastructure/storage"
	"github.com/kdirani/farms/internal/infrastructure/telemetry"
	"github.com/kdirani/farms/internal/interfaces/http/handler"
	"github.com/kdirani/farms/internal/interfaces/http/middleware"
	"github.com/kdirani/farms/internal/interfaces/http/router"
	"go.uber.org/zap"

	_ "github.com/kdirani/farms/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

//	@title			Farms Backend API
//	@version		1.0
//	@description	Poultry farm records: farms, inventory, invoices, manufacturing, medicine consumption and daily reports.

//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token issued by the auth provider. Format: "Bearer {token}"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	// OTLP log export, teed with the local output
	logsProvider, err := telemetry.NewLoggerProvider(context.Background(), telemetry.LogsConfig{
		Enabled:           cfg.Telemetry.Enabled && cfg.Telemetry.LogsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    version,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize logger provider", zap.Error(err))
	}
	defer func() {
		if err := logsProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down logger provider", zap.Error(err))
		}
	}()
	log = logsProvider.Bridge(log, logger.ParseLevel(cfg.Log.Level))

	log.Info("Starting farms backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	// Tracing
	tp, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    version,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Metrics
	mp, err := telemetry.NewMeterProvider(context.Background(), telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.Enabled && cfg.Telemetry.MetricsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ExportInterval:    cfg.Telemetry.MetricsInterval,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    version,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	defer func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down meter provider", zap.Error(err))
		}
	}()
	if mp.IsEnabled() {
		actionMetrics, err := telemetry.NewActionMetrics(mp.Meter("farms.action"))
		if err != nil {
			log.Fatal("Failed to create action metrics", zap.Error(err))
		}
		action.SetRecorder(actionMetrics)
	}

	// Continuous profiling
	profiler, err := telemetry.NewProfiler(telemetry.ProfilerConfig{
		Enabled:           cfg.Telemetry.Profiling.Enabled,
		ServerAddress:     cfg.Telemetry.Profiling.ServerAddress,
		ApplicationName:   cfg.Telemetry.ServiceName,
		BasicAuthUser:     cfg.Telemetry.Profiling.BasicAuthUser,
		BasicAuthPassword: cfg.Telemetry.Profiling.BasicAuthPassword,
		ProfileTypes:      cfg.Telemetry.Profiling.ProfileTypes,
	}, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	defer func() {
		if err := profiler.Stop(); err != nil {
			log.Error("Error stopping profiler", zap.Error(err))
		}
	}()
	if profiler.IsEnabled() {
		tp.EnableSpanProfiles()
	}

	// Database with a zap-backed GORM logger
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh),
	)
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully", zap.String("driver", cfg.Database.Driver))

	dbTracing := telemetry.DefaultDBTracingConfig()
	dbTracing.Enabled = cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled
	dbTracing.SlowQueryThresh = cfg.Telemetry.DBSlowQueryThresh
	if cfg.Database.Driver == "sqlite" {
		dbTracing.DBSystem = "sqlite"
	}
	if err := telemetry.NewDBTracingPlugin(dbTracing, log).Register(db.DB); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	if cfg.Database.AutoMigrate {
		if err := migrate(db, cfg.Database.Driver, log); err != nil {
			log.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	// Blob storage for attachments
	blobs, err := newBlobStore(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize blob storage", zap.Error(err))
	}

	// Page cache
	var pages cache.PageCache
	if cfg.Cache.Enabled {
		pages, err = cache.NewPageCacheFactory(cfg.Cache, cfg.Redis, cache.WithLogger(log)).Create()
		if err != nil {
			log.Fatal("Failed to initialize page cache", zap.Error(err))
		}
	}

	// Invoice printing
	var renderer infraprinting.PDFRenderer
	if cfg.Printing.Enabled {
		chrome := infraprinting.NewChromedpRenderer(infraprinting.ChromedpConfig{
			DefaultTimeout: cfg.Printing.Timeout,
			RemoteURL:      cfg.Printing.RemoteURL,
			NoSandbox:      cfg.Printing.NoSandbox,
			Logger:         log,
		})
		defer func() {
			if err := chrome.Close(); err != nil {
				log.Error("Error closing PDF renderer", zap.Error(err))
			}
		}()
		renderer = chrome
	}

	checks := map[string]handler.HealthCheck{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if p, ok := pages.(interface{ Ping(context.Context) error }); ok {
		checks["cache"] = p.Ping
	}

	deps := bootstrap.Deps{
		DB:           db.DB,
		Blobs:        blobs,
		Pages:        pages,
		Renderer:     renderer,
		MaxFileSize:  cfg.Storage.MaxFileSize,
		Logger:       log,
		AppName:      cfg.App.Name,
		Version:      version,
		HealthChecks: checks,
	}
	services := bootstrap.NewServices(deps)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Tracing - Start the request span
	// 4. Metrics - Count requests and record latency
	// 5. Profiling - Label CPU samples with the route
	// 6. Logger - Log requests
	// 7. CORS - Handle cross-origin requests
	// 8. BodyLimit - Limit request body size
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))
	engine.Use(middleware.SpanErrorMarker())
	engine.Use(middleware.HTTPMetrics(middleware.HTTPMetricsConfig{
		MeterProvider: mp,
		Enabled:       cfg.Telemetry.MetricsEnabled,
	}))
	profiling := middleware.DefaultProfilingConfig()
	profiling.Enabled = profiler.IsEnabled()
	engine.Use(middleware.ProfilingWithConfig(profiling))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Swagger documentation endpoint
	if cfg.Swagger.Enabled {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.RegisterAPI(engine, bootstrap.NewHandlers(services, deps), router.APIConfig{
		Verifier: auth.NewVerifier(cfg.JWT),
		Roles:    services.Profiles,
		Pages:    pages,
		PageTTL:  cfg.Cache.PageTTL,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           engine,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// migrate brings the schema up to date. Postgres runs the embedded SQL
// migrations; sqlite, used for local runs, is created from the models.
func migrate(db *persistence.Database, driver string, log *zap.Logger) error {
	if driver == "sqlite" {
		log.Info("Auto-migrating sqlite schema")
		return persistence.AutoMigrate(db.DB)
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	m, err := migration.New(sqlDB, "", log)
	if err != nil {
		return err
	}
	// closing the migrator would close the shared connection pool
	return m.Up()
}

func newBlobStore(cfg *config.Config, log *zap.Logger) (attachment.BlobStore, error) {
	if cfg.Storage.Type != "s3" {
		log.Warn("Using in-memory blob storage, attachments are lost on restart")
		return storage.NewMemoryBlobStore(cfg.Storage.PublicBaseURL), nil
	}

	s3, err := storage.NewS3BlobStore(&cfg.Storage, storage.WithLogger(log))
	if err != nil {
		return nil, err
	}
	if cfg.Storage.CreateBucket {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s3.EnsureBucket(ctx); err != nil {
			return nil, err
		}
	}
	log.Info("Using S3 blob storage", zap.String("bucket", s3.Bucket()))
	return s3, nil
}

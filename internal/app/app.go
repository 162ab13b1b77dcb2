package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"phish_trainer/internal/config"
	"phish_trainer/internal/controller"
	"phish_trainer/internal/middleware"
	"phish_trainer/internal/repository"
	"phish_trainer/internal/service"
	"phish_trainer/pkg/configwatcher"
	"phish_trainer/pkg/database"
	"phish_trainer/pkg/i18n"
	"phish_trainer/pkg/logger"
	"phish_trainer/pkg/monitoring"
	"phish_trainer/pkg/security"
	"phish_trainer/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	Messages i18n.Catalog
	// ConfigDir is watched for config.yaml changes while running.
	ConfigDir string

	tracerProvider  *sdktrace.TracerProvider
	stop            chan struct{}
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user       *repository.UserRepository
	training   *repository.TrainingRepository
	statsCache *repository.StatsCache
}

type services struct {
	auth     *service.AuthService
	profile  *service.ProfileService
	stats    *service.StatsService
	training *service.TrainingService
	user     *service.UserService
}

type controllers struct {
	auth     *controller.AuthController
	profile  *controller.ProfileController
	stats    *controller.StatsController
	training *controller.TrainingController
	user     *controller.UserController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		training:   repository.NewTrainingRepository(db),
		statsCache: repository.NewStatsCache(rdb, cfg.Redis.StatsTTL),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	return &services{
		auth:     service.NewAuthService(repos.user, cfg),
		profile:  service.NewProfileService(repos.user),
		stats:    service.NewStatsService(repos.user, repos.training, repos.statsCache, a.Messages),
		training: service.NewTrainingService(repos.training, repos.statsCache),
		user:     service.NewUserService(repos.user),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth, a.Messages),
		profile:  controller.NewProfileController(s.profile, a.Messages),
		stats:    controller.NewStatsController(s.stats, a.Messages),
		training: controller.NewTrainingController(s.training, a.Messages),
		user:     controller.NewUserController(s.user, a.Messages),
		health:   controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	limiter := security.NewLimiter(
		cfg.RateLimit.MaxRequests,
		time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute,
		a.Messages.T(i18n.TooManyRequests),
	)
	go limiter.Sweep(a.stop)
	router.Use(limiter.Middleware())

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// New assembles the router around an open database. rdb may be nil.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *App {
	app := &App{
		Config:    cfg,
		DB:        db,
		Redis:     rdb,
		Messages:  i18n.New(cfg.Server.Locale),
		ConfigDir: "configs",
		stop:      make(chan struct{}),
	}

	repos := app.initRepositories(db, rdb, cfg)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	router := gin.New()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	app.RegisterConfigCallback(func(newCfg *config.Config) {
		logger.SetMode(newCfg.Server.Mode)
		logger.Log.Info("Log level updated", zap.String("level", logger.Level().String()))
	})

	return app
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	switch cfg.Server.Mode {
	case gin.ReleaseMode, gin.TestMode, gin.DebugMode:
		gin.SetMode(cfg.Server.Mode)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := New(cfg, db, rdb)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	return app
}

func (a *App) watchConfig(ctx context.Context) {
	err := configwatcher.Watch(ctx, a.ConfigDir, func(newCfg *config.Config) {
		for _, cb := range a.configCallbacks {
			cb(newCfg)
		}
	})
	if err != nil {
		logger.Log.Warn("Config watcher stopped", zap.Error(err))
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go a.watchConfig(ctx)

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.Close(shutdownCtx)
	logger.Log.Info("Server exiting")
}

// Close releases the background workers and connections of the app.
func (a *App) Close(ctx context.Context) {
	select {
	case <-a.stop:
	default:
		close(a.stop)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}
	logger.Log.Sync()
}

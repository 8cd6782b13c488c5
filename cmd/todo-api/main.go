package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"todo-api/configs"
	"todo-api/internal/application/controller"
	"todo-api/internal/application/middleware"
	"todo-api/internal/application/schedule"
	"todo-api/internal/domain/gateway/cache"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/usecase/health"
	"todo-api/internal/domain/usecase/maintenance"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/internal/infra/aws"
	database "todo-api/internal/infra/database/gorm"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/redis"
	"todo-api/pkg/resource"
)

// @title ToDo API
// @version 1.0
// @description Create and list to-do items.
func main() {
	defer log.Sync()

	// Init config
	log.SetApplicationName(configs.Env.ApplicationName)
	resource.SetDefault("app.name", configs.Env.ApplicationName)
	resource.SetDefault("app.server.port", "8080")
	resource.SetDefault("app.server.shutdown-timeout", "10s")
	resource.Init(configs.Env.PropertiesFile)
	if configs.Env.MessagesFile != "" {
		if err := msg.Init(configs.Env.MessagesFile); err != nil {
			log.Fatal("failed to load messages", zap.Error(err))
		}
	}

	appName := resource.GetString("app.name")
	log.Info(msg.GetMessage("app.start", appName))

	// Init database
	dbConfig := database.ConfigFromProperties()
	log.Info(msg.GetMessage("db.open", dbConfig.Driver))
	store, err := database.Open(dbConfig)
	if err != nil {
		log.Fatal(msg.GetMessage("db.error.open"), zap.Error(err))
	}
	defer database.Close(store)
	log.Info(msg.GetMessage("db.migrated", dbConfig.Driver))

	// Init queue
	var queueSender queue.Sender = queue.NoopSender{}
	var queuePinger queue.QueuePinger
	queueName := resource.GetString("app.queue.todo-created")
	if resource.GetBool("app.queue.enabled") {
		awsConfig, err := aws.LoadConfig(context.Background())
		if err != nil {
			log.Fatal("failed to configure the event queue", zap.Error(err))
		}
		adapter := aws.NewSQSSenderAdapter(aws.NewSqsClient(awsConfig))
		queueSender = adapter
		queuePinger = adapter
	}

	// Init rate limiter
	var redisHealth *redis.HealthChecker
	var toDoMiddlewares []echo.MiddlewareFunc
	if resource.GetBool("app.rate-limit.enabled") {
		redisClient, limiter := newRateLimiter()
		defer redisClient.Close()
		redisHealth = redis.NewHealthChecker(redisClient)
		toDoMiddlewares = append(toDoMiddlewares, middleware.RateLimit(limiter))
	}

	// Init UseCase
	toDoItemUseCase := todo.NewToDoItemUseCase(db.NewGormUnitOfWork(store), queueSender, queueName)
	healthUseCase := health.NewHealthUseCase(
		db.NewGormHealthDBGateway(store),
		cache.NewRedisHealthGateway(redisHealth),
		queue.NewQueueHealthGateway(queuePinger, queueName),
	)
	maintenanceUseCase := maintenance.NewMaintenanceUseCase(db.NewGormStoreMaintenanceGateway(store))

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	ipExtractor, err := middleware.IPExtractor(resource.GetStringSlice("app.server.trusted-proxies"))
	if err != nil {
		log.Fatal("invalid trusted proxies", zap.Error(err))
	}
	e.IPExtractor = ipExtractor
	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	middleware.SetupRequestLogger(e)
	e.Use(middleware.Metrics())
	api := e.Group(resource.GetString("app.server.context-path"))

	// Init Controller and Routes
	controller.NewToDoItemController(api, toDoItemUseCase, toDoMiddlewares...).InitToDoItemRoutes()
	controller.NewHealthController(api, healthUseCase).InitHealthRoutes()
	controller.NewMetricsController(api).InitMetricsRoutes()
	controller.NewSwaggerController(api).InitSwaggerRoutes()

	// Init Schedule
	maintenanceScheduler := schedule.NewMaintenanceScheduler(maintenanceUseCase)
	if err := maintenanceScheduler.InitMaintenanceScheduleTasks(); err != nil {
		log.Fatal("invalid maintenance schedule", zap.Error(err))
	}
	defer maintenanceScheduler.Stop()

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		log.Info(msg.GetMessage("app.started", appName, port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped unexpectedly", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info(msg.GetMessage("app.stopping", appName))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), resource.GetDuration("app.server.shutdown-timeout"))
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	log.Info(msg.GetMessage("app.stopped", appName))
}

func newRateLimiter() (*redis.Client, *redis.RateLimiter) {
	redisConfig := redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database"))

	client, err := redis.NewClient(redisConfig)
	if err != nil {
		log.Fatal("failed to configure redis", zap.Error(err))
	}

	limiter, err := redis.NewRateLimiter(client, redis.RateLimiterOptions{
		MaxRequests: resource.GetInt("app.rate-limit.max-requests"),
		Window:      resource.GetDuration("app.rate-limit.window"),
		Namespace:   resource.GetString("app.rate-limit.namespace"),
	})
	if err != nil {
		log.Fatal("invalid rate limit settings", zap.Error(err))
	}

	return client, limiter
}

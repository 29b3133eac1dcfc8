package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/fluent/fluent-logger-golang/fluent"
	"go.mongodb.org/mongo-driver/mongo"

	cache_adapter "github.com/Wilmaryucuma7/real-estate-api/internal/adapters/cache"
	logger_adapter "github.com/Wilmaryucuma7/real-estate-api/internal/adapters/logger"
	mongodb_adapter "github.com/Wilmaryucuma7/real-estate-api/internal/adapters/mongodb"
	rabbitmq_adapter "github.com/Wilmaryucuma7/real-estate-api/internal/adapters/rabbitmq"
	"github.com/Wilmaryucuma7/real-estate-api/internal/adapters/rest"
	"github.com/Wilmaryucuma7/real-estate-api/internal/configs"
	"github.com/Wilmaryucuma7/real-estate-api/internal/core/port"
	"github.com/Wilmaryucuma7/real-estate-api/internal/core/usecase"
	fluentlogger "github.com/Wilmaryucuma7/real-estate-api/pkg/fluent_logger"
	"github.com/Wilmaryucuma7/real-estate-api/pkg/mongodb"
)

// App – структура приложения
type App struct {
	config       *configs.AppConfig
	mongoClient  *mongo.Client
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort

	propertyImportListener port.EventListenerPort
}

// NewApp создает новый экземпляр приложения.
// Это "Composition Root", где все зависимости создаются и связываются.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false, // текстовый формат
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	// Добавляем Fluent Bit логгер, если он включен в конфигурации
	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	// Создаем наш композитный логгер
	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. СОЗДАЕМ БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ С КОНТЕКСТОМ ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. ИНИЦИАЛИЗАЦИЯ НИЗКОУРОВНЕВЫХ ЗАВИСИМОСТЕЙ ---
	mongoClient, db, err := mongodb.NewClient(context.Background(), mongodb.Config{
		URI:      appConfig.Mongo.URI,
		Database: appConfig.Mongo.Database,
	})
	if err != nil {
		appLogger.Error("Failed to connect to MongoDB", err, nil)
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	appLogger.Info("Successfully connected to MongoDB!", nil)

	propertyStorageAdapter, err := mongodb_adapter.NewPropertyStorageAdapter(db)
	if err != nil {
		appLogger.Error("Failed to create property storage adapter", err, nil)
		mongoClient.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to create property storage adapter: %w", err)
	}

	ownerStorageAdapter, err := mongodb_adapter.NewOwnerStorageAdapter(db)
	if err != nil {
		appLogger.Error("Failed to create owner storage adapter", err, nil)
		mongoClient.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to create owner storage adapter: %w", err)
	}

	initializer, err := mongodb_adapter.NewDatabaseInitializer(db, baseLogger.WithFields(port.Fields{"component": "db_initializer"}))
	if err != nil {
		appLogger.Error("Failed to create database initializer", err, nil)
		mongoClient.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to create database initializer: %w", err)
	}
	if err := initializer.Initialize(context.Background()); err != nil {
		appLogger.Error("Failed to initialize database", err, nil)
		mongoClient.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	appLogger.Info("MongoDB storage adapters initialized.", nil)

	// Декоратор с кэшем поверх хранилища объектов
	cachedPropertyStorage := cache_adapter.NewPropertyCacheAdapter(propertyStorageAdapter, cache_adapter.CacheConfig{
		MemcachedAddr: appConfig.Cache.MemcachedAddr,
		LocalTTL:      appConfig.Cache.LocalTTL,
		RemoteTTL:     appConfig.Cache.RemoteTTL,
	}, baseLogger.WithFields(port.Fields{"component": "property_cache"}))

	// --- 4. ИНИЦИАЛИЗАЦИЯ USE CASES (ядра бизнес-логики) ---
	findPropertiesUseCase := usecase.NewFindPropertiesUseCase(cachedPropertyStorage, ownerStorageAdapter)
	listPropertiesUseCase := usecase.NewListPropertiesUseCase(cachedPropertyStorage, ownerStorageAdapter)
	getPropertyDetailsUseCase := usecase.NewGetPropertyDetailsUseCase(cachedPropertyStorage, ownerStorageAdapter)
	getPropertyBySlugUseCase := usecase.NewGetPropertyBySlugUseCase(cachedPropertyStorage, ownerStorageAdapter)
	getPropertyTracesUseCase := usecase.NewGetPropertyTracesUseCase(propertyStorageAdapter)

	getOwnerUseCase := usecase.NewGetOwnerUseCase(ownerStorageAdapter)
	listOwnersUseCase := usecase.NewListOwnersUseCase(ownerStorageAdapter)
	getOwnerPropertiesUseCase := usecase.NewGetOwnerPropertiesUseCase(cachedPropertyStorage, ownerStorageAdapter)

	importPropertyUseCase := usecase.NewImportPropertyUseCase(cachedPropertyStorage)

	appLogger.Info("All use cases initialized.", nil)

	// --- 5. ИНИЦИАЛИЗАЦИЯ ВХОДЯЩИХ АДАПТЕРОВ ---
	var importListener port.EventListenerPort
	if appConfig.RabbitMQ.Enabled {
		importListener = rabbitmq_adapter.NewPropertyImportConsumerAdapter(appConfig.RabbitMQ.URL, importPropertyUseCase, baseLogger)
		appLogger.Info("Property Import Events Listener initialized.", nil)
	} else {
		appLogger.Warn("RABBITMQ_URL is not set, property import consumer is disabled.", nil)
	}

	// REST API Server
	propertyHandler := rest.NewPropertyHandler(
		findPropertiesUseCase,
		listPropertiesUseCase,
		getPropertyDetailsUseCase,
		getPropertyBySlugUseCase,
		getPropertyTracesUseCase,
		appConfig.IsDevelopment(),
	)
	ownerHandler := rest.NewOwnerHandler(
		getOwnerUseCase,
		listOwnersUseCase,
		getOwnerPropertiesUseCase,
		appConfig.IsDevelopment(),
	)
	healthHandler := rest.NewHealthHandler(initializer)

	apiServer := rest.NewServer(appConfig.Rest.PORT, appConfig.Rest.AllowedOrigins, propertyHandler, ownerHandler, healthHandler, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	// --- 6. СОБИРАЕМ ПРИЛОЖЕНИЕ ---
	application := &App{
		config:                 appConfig,
		mongoClient:            mongoClient,
		apiServer:              apiServer,
		propertyImportListener: importListener,

		fluentClient: fluentClient,
		logger:       appLogger,
	}

	return application, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	// Создаем единый контекст для всего приложения для управления graceful shutdown
	appCtx, cancelApp := context.WithCancel(context.Background())

	// Используем WaitGroup для ожидания завершения всех фоновых задач
	var wg sync.WaitGroup

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		a.logger.Info("Waiting for background processes to finish...", nil)
		wg.Wait()
		a.logger.Info("All background processes finished.", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.propertyImportListener != nil {
			if err := a.propertyImportListener.Close(); err != nil {
				a.logger.Error("Error closing property import listener", err, nil)
			}
		}

		if a.mongoClient != nil {
			if err := a.mongoClient.Disconnect(context.Background()); err != nil {
				a.logger.Error("Error disconnecting MongoDB client", err, nil)
			} else {
				a.logger.Info("MongoDB client disconnected.", nil)
			}
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Логируем в stdout, так как fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)

	// Функция-хелпер для запуска слушателей
	startListener := func(name string, listener port.EventListenerPort) {
		defer wg.Done()
		listenerLogger := a.logger.WithFields(port.Fields{"listener_name": name})
		listenerLogger.Info("Starting listener...", nil)

		if err := listener.Start(appCtx); err != nil {
			listenerLogger.Error("Listener stopped with an unexpected error", err, nil)
			errorsCh <- fmt.Errorf("%s error: %w", name, err)
		} else {
			listenerLogger.Info("Listener stopped gracefully due to context cancellation.", nil)
		}
	}

	if a.propertyImportListener != nil {
		wg.Add(1)
		go startListener("Property Import Events Listener", a.propertyImportListener)
	}

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	// Ожидание сигнала на завершение или ошибки от одного из компонентов
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	var runErr error
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
		runErr = err
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	}

	// Инициируем graceful shutdown, отменяя главный контекст
	cancelApp()

	return runErr
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}

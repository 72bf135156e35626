package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	deleteApplicationHandler "github.com/m04kA/VP-ApprovalService/internal/api/handlers/delete_application"
	listScheduleHandler "github.com/m04kA/VP-ApprovalService/internal/api/handlers/list_schedule"
	submitApplicationHandler "github.com/m04kA/VP-ApprovalService/internal/api/handlers/submit_application"
	"github.com/m04kA/VP-ApprovalService/internal/api/middleware"
	"github.com/m04kA/VP-ApprovalService/internal/config"
	applicationRepo "github.com/m04kA/VP-ApprovalService/internal/infra/storage/application"
	applicationsService "github.com/m04kA/VP-ApprovalService/internal/service/applications"
	listScheduleUC "github.com/m04kA/VP-ApprovalService/internal/usecase/list_schedule"
	submitApplicationUC "github.com/m04kA/VP-ApprovalService/internal/usecase/submit_application"
	"github.com/m04kA/VP-ApprovalService/pkg/dbmetrics"
	"github.com/m04kA/VP-ApprovalService/pkg/logger"
	"github.com/m04kA/VP-ApprovalService/pkg/metrics"
	"github.com/m04kA/VP-ApprovalService/pkg/simpletxmanager"
	"github.com/m04kA/VP-ApprovalService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting VP-ApprovalService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var applicationRepository *applicationRepo.Repository

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		applicationRepository = applicationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		applicationRepository = applicationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Настройки расписания
	window := cfg.Schedule.Window()
	location := cfg.Schedule.Location()
	log.Info("Schedule window: -%dh/+%dh, local offset UTC+%d",
		cfg.Schedule.WindowBeforeHours, cfg.Schedule.WindowAfterHours, cfg.Schedule.LocalUTCOffsetHours)

	// Инициализируем сервис
	applicationSvc := applicationsService.NewService(
		applicationRepository,
		cfg.Admin.Password,
		log,
	)

	// Инициализируем use cases
	submitApplicationUseCase := submitApplicationUC.NewUseCase(
		applicationRepository,
		txMgr,
		location,
		log,
	)

	listScheduleUseCase := listScheduleUC.NewUseCase(
		applicationRepository,
		window,
		log,
	)

	// Инициализируем handlers
	submitApplication := submitApplicationHandler.NewHandler(submitApplicationUseCase, log)
	listSchedule := listScheduleHandler.NewHandler(listScheduleUseCase, log)
	deleteApplication := deleteApplicationHandler.NewHandler(applicationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// CORS для браузерного UI расписания
	r.Use(middleware.CORS())

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Подача заявки на VP слот
	r.HandleFunc("/apply", submitApplication.Handle).Methods(http.MethodPost, http.MethodOptions)

	// Публичное расписание одобренных заявок
	r.HandleFunc("/approved", listSchedule.Handle).Methods(http.MethodGet, http.MethodOptions)

	// Удаление заявки (требует пароль администратора в теле запроса)
	r.HandleFunc("/delete-application/{id}", deleteApplication.Handle).Methods(http.MethodDelete, http.MethodOptions)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

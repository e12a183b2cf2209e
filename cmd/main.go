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

	bulkGenerateHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/bulk_generate"
	commitSlotsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/commit_slots"
	createMenuHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/create_menu"
	deleteSlotHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/delete_slot"
	getCalendarHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_calendar"
	getMenuHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_menu"
	listBookingsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/list_bookings"
	updateMenuHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/update_menu"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/config"
	bookingRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/booking"
	menuRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/menu"
	slotRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/slot"
	bookingsService "github.com/m04kA/SMC-ScheduleService/internal/service/bookings"
	calendarService "github.com/m04kA/SMC-ScheduleService/internal/service/calendar"
	menusService "github.com/m04kA/SMC-ScheduleService/internal/service/menus"
	commitSlotsUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/commit_slots"
	generateSlotsUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/generate_slots"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/metrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/txmanager"
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

	log.Info("Starting SMC-ScheduleService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем репозитории (с метриками или без)
	var (
		menuRepository    *menuRepo.Repository
		slotRepository    *slotRepo.Repository
		bookingRepository *bookingRepo.Repository
		txMgr             *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		menuRepository = menuRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		menuRepository = menuRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = txmanager.NewTransactionManager(txmanager.WrapSQLDB(db))
	}

	// Инициализируем сервисы
	menuSvc := menusService.NewService(menuRepository, log)
	calendarSvc := calendarService.NewService(menuRepository, slotRepository, bookingRepository, log)
	bookingSvc := bookingsService.NewService(menuRepository, bookingRepository, log)

	// Инициализируем use cases
	generateSlotsUseCase := generateSlotsUC.NewUseCase(menuRepository, slotRepository, log)
	commitSlotsUseCase := commitSlotsUC.NewUseCase(menuRepository, slotRepository, txMgr, log)

	// Инициализируем handlers
	createMenu := createMenuHandler.NewHandler(menuSvc, log)
	updateMenu := updateMenuHandler.NewHandler(menuSvc, log)
	getMenu := getMenuHandler.NewHandler(menuSvc, log)
	getCalendar := getCalendarHandler.NewHandler(calendarSvc, &calendarService.RealTimeProvider{}, log)
	bulkGenerate := bulkGenerateHandler.NewHandler(generateSlotsUseCase, log)
	commitSlots := commitSlotsHandler.NewHandler(commitSlotsUseCase, log)
	deleteSlot := deleteSlotHandler.NewHandler(commitSlotsUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

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

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Календарный вид меню: слоты с доступностью по неделям и месяцам
	api.HandleFunc("/menus/{menuId}/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Получение меню по ID
	api.HandleFunc("/menus/{menuId}", getMenu.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Меню бронирования ---
	// Список меню оператора
	protected.HandleFunc("/menus", getMenu.HandleList).Methods(http.MethodGet)

	// Создание меню
	protected.HandleFunc("/menus", createMenu.Handle).Methods(http.MethodPost)

	// Обновление меню
	protected.HandleFunc("/menus/{menuId}", updateMenu.Handle).Methods(http.MethodPut)

	// --- Слоты ---
	// Пакетная генерация черновиков слотов
	protected.HandleFunc("/menus/{menuId}/slots/generate", bulkGenerate.Handle).Methods(http.MethodPost)

	// Фиксация изменений сессии редактирования
	protected.HandleFunc("/menus/{menuId}/slots/commit", commitSlots.Handle).Methods(http.MethodPost)

	// Удаление одного слота
	protected.HandleFunc("/menus/{menuId}/slots/{slotId}", deleteSlot.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	// Список бронирований меню со счётчиками по статусам
	protected.HandleFunc("/menus/{menuId}/bookings", listBookings.Handle).Methods(http.MethodGet)

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

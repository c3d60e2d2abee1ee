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

	cancelBookingHandler "github.com/glowline/salon-booking-service/internal/api/handlers/cancel_booking"
	createBlackoutHandler "github.com/glowline/salon-booking-service/internal/api/handlers/create_blackout"
	createBookingHandler "github.com/glowline/salon-booking-service/internal/api/handlers/create_booking"
	createScheduleHandler "github.com/glowline/salon-booking-service/internal/api/handlers/create_schedule"
	createServiceHandler "github.com/glowline/salon-booking-service/internal/api/handlers/create_service"
	createStaffHandler "github.com/glowline/salon-booking-service/internal/api/handlers/create_staff"
	deleteBlackoutHandler "github.com/glowline/salon-booking-service/internal/api/handlers/delete_blackout"
	deleteScheduleHandler "github.com/glowline/salon-booking-service/internal/api/handlers/delete_schedule"
	getAvailableSlotsHandler "github.com/glowline/salon-booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/glowline/salon-booking-service/internal/api/handlers/get_booking"
	listBlackoutsHandler "github.com/glowline/salon-booking-service/internal/api/handlers/list_blackouts"
	listBookingsHandler "github.com/glowline/salon-booking-service/internal/api/handlers/list_bookings"
	listSchedulesHandler "github.com/glowline/salon-booking-service/internal/api/handlers/list_schedules"
	listServicesHandler "github.com/glowline/salon-booking-service/internal/api/handlers/list_services"
	listStaffHandler "github.com/glowline/salon-booking-service/internal/api/handlers/list_staff"
	updateServiceHandler "github.com/glowline/salon-booking-service/internal/api/handlers/update_service"
	"github.com/glowline/salon-booking-service/internal/api/middleware"
	"github.com/glowline/salon-booking-service/internal/config"
	blackoutRepo "github.com/glowline/salon-booking-service/internal/infra/storage/blackout"
	bookingRepo "github.com/glowline/salon-booking-service/internal/infra/storage/booking"
	scheduleRepo "github.com/glowline/salon-booking-service/internal/infra/storage/schedule"
	serviceRepo "github.com/glowline/salon-booking-service/internal/infra/storage/service"
	staffRepo "github.com/glowline/salon-booking-service/internal/infra/storage/staff"
	bookingsService "github.com/glowline/salon-booking-service/internal/service/bookings"
	catalogService "github.com/glowline/salon-booking-service/internal/service/catalog"
	createBookingUC "github.com/glowline/salon-booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/glowline/salon-booking-service/internal/usecase/get_available_slots"
	"github.com/glowline/salon-booking-service/pkg/dbmetrics"
	"github.com/glowline/salon-booking-service/pkg/logger"
	"github.com/glowline/salon-booking-service/pkg/metrics"
	"github.com/glowline/salon-booking-service/pkg/simpletxmanager"
	"github.com/glowline/salon-booking-service/pkg/txmanager"
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

	log.Info("Starting salon-booking-service...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		serviceRepository  *serviceRepo.Repository
		staffRepository    *staffRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		blackoutRepository *blackoutRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		staffRepository = staffRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		blackoutRepository = blackoutRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		staffRepository = staffRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		blackoutRepository = blackoutRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	catalogSvc := catalogService.NewService(
		serviceRepository,
		staffRepository,
		scheduleRepository,
		blackoutRepository,
		log,
	)

	// Инициализируем use cases
	var bookingMetrics createBookingUC.Metrics
	if metricsCollector != nil {
		bookingMetrics = metricsCollector
	}
	createBookingUseCase := createBookingUC.NewUseCase(
		serviceRepository,
		staffRepository,
		bookingRepository,
		txMgr,
		bookingMetrics,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		serviceRepository,
		scheduleRepository,
		bookingRepository,
		blackoutRepository,
		cfg.Booking.DefaultDurationMin,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	listStaff := listStaffHandler.NewHandler(catalogSvc, log)
	createStaff := createStaffHandler.NewHandler(catalogSvc, log)
	listSchedules := listSchedulesHandler.NewHandler(catalogSvc, log)
	createSchedule := createScheduleHandler.NewHandler(catalogSvc, log)
	deleteSchedule := deleteScheduleHandler.NewHandler(catalogSvc, log)
	listBlackouts := listBlackoutsHandler.NewHandler(catalogSvc, log)
	createBlackout := createBlackoutHandler.NewHandler(catalogSvc, log)
	deleteBlackout := deleteBlackoutHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Сквозные middleware
	r.Use(middleware.RequestID)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
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

	// Каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Доступные слоты для бронирования
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Список бронирований с фильтрами
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// --- Каталог ---
	// Управление услугами
	protected.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPatch)

	// Управление мастерами
	protected.HandleFunc("/staff", listStaff.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/staff", createStaff.Handle).Methods(http.MethodPost)

	// Управление расписаниями
	protected.HandleFunc("/schedules", listSchedules.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/schedules", createSchedule.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/schedules/{scheduleId}", deleteSchedule.Handle).Methods(http.MethodDelete)

	// Управление интервалами недоступности
	protected.HandleFunc("/blackouts", listBlackouts.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/blackouts", createBlackout.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/blackouts/{blackoutId}", deleteBlackout.Handle).Methods(http.MethodDelete)

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

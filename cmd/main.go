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

	addKilometersHandler "github.com/waypartner/booking-service/internal/api/handlers/add_kilometers"
	cancelBookingHandler "github.com/waypartner/booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/waypartner/booking-service/internal/api/handlers/create_booking"
	getBalanceHandler "github.com/waypartner/booking-service/internal/api/handlers/get_balance"
	getBookingHandler "github.com/waypartner/booking-service/internal/api/handlers/get_booking"
	getCoinHistoryHandler "github.com/waypartner/booking-service/internal/api/handlers/get_coin_history"
	getDayScheduleHandler "github.com/waypartner/booking-service/internal/api/handlers/get_day_schedule"
	getVehicleBookingsHandler "github.com/waypartner/booking-service/internal/api/handlers/get_vehicle_bookings"
	grantBonusHandler "github.com/waypartner/booking-service/internal/api/handlers/grant_bonus"
	registerVehicleHandler "github.com/waypartner/booking-service/internal/api/handlers/register_vehicle"
	searchVehicleHandler "github.com/waypartner/booking-service/internal/api/handlers/search_vehicle"
	"github.com/waypartner/booking-service/internal/api/middleware"
	"github.com/waypartner/booking-service/internal/config"
	bookingRepo "github.com/waypartner/booking-service/internal/infra/storage/booking"
	coinLedgerRepo "github.com/waypartner/booking-service/internal/infra/storage/coinledger"
	vehicleRepo "github.com/waypartner/booking-service/internal/infra/storage/vehicle"
	whatsappClient "github.com/waypartner/booking-service/internal/integrations/whatsapp"
	bookingsService "github.com/waypartner/booking-service/internal/service/bookings"
	coinsService "github.com/waypartner/booking-service/internal/service/coins"
	vehiclesService "github.com/waypartner/booking-service/internal/service/vehicles"
	createBookingUC "github.com/waypartner/booking-service/internal/usecase/create_booking"
	getDayScheduleUC "github.com/waypartner/booking-service/internal/usecase/get_day_schedule"
	"github.com/waypartner/booking-service/pkg/dbmetrics"
	"github.com/waypartner/booking-service/pkg/logger"
	"github.com/waypartner/booking-service/pkg/metrics"
	"github.com/waypartner/booking-service/pkg/simpletxmanager"
	"github.com/waypartner/booking-service/pkg/txmanager"
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

	log.Info("Starting WayPartner booking service...")
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

	// Инициализируем WhatsApp клиент
	notifier := whatsappClient.NewClient(
		cfg.WhatsApp.URL,
		cfg.WhatsApp.Enabled,
		time.Duration(cfg.WhatsApp.Timeout)*time.Second,
		cfg.WhatsApp.MaxRetries,
		log,
	)
	log.Info("WhatsApp client initialized (enabled=%t, url=%s)", cfg.WhatsApp.Enabled, cfg.WhatsApp.URL)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository    *bookingRepo.Repository
		vehicleRepository    *vehicleRepo.Repository
		coinLedgerRepository *coinLedgerRepo.Repository
	)

	// Интерфейс transaction manager, общий для usecases и сервисов
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		vehicleRepository = vehicleRepo.NewRepository(wrappedDB)
		coinLedgerRepository = coinLedgerRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		vehicleRepository = vehicleRepo.NewRepository(db)
		coinLedgerRepository = coinLedgerRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	coinsSvc := coinsService.NewService(vehicleRepository, coinLedgerRepository, txMgr, log)
	vehiclesSvc := vehiclesService.NewService(vehicleRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, coinsSvc, notifier, txMgr, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		vehicleRepository,
		coinsSvc,
		notifier,
		txMgr,
		cfg.Booking.AutoRegisterVehicles,
		log,
	)

	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(bookingRepository, log)

	// Инициализируем handlers
	registerVehicle := registerVehicleHandler.NewHandler(vehiclesSvc, log)
	searchVehicle := searchVehicleHandler.NewHandler(vehiclesSvc, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(getDayScheduleUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)
	getVehicleBookings := getVehicleBookingsHandler.NewHandler(bookingsSvc, log)
	getBalance := getBalanceHandler.NewHandler(coinsSvc, log)
	getCoinHistory := getCoinHistoryHandler.NewHandler(coinsSvc, log)
	addKilometers := addKilometersHandler.NewHandler(coinsSvc, log)
	grantBonus := grantBonusHandler.NewHandler(coinsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.LoggingMiddleware(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Автомобили ---
	api.HandleFunc("/vehicles", registerVehicle.Handle).Methods(http.MethodPost)
	api.HandleFunc("/vehicles/{registration}", searchVehicle.Handle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{registration}/bookings", getVehicleBookings.Handle).Methods(http.MethodGet)

	// --- Слоты и бронирования ---
	api.HandleFunc("/slots", getDaySchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Green Coins ---
	api.HandleFunc("/vehicles/{registration}/balance", getBalance.Handle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{registration}/coins/history", getCoinHistory.Handle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{registration}/kilometers", addKilometers.Handle).Methods(http.MethodPost)
	api.HandleFunc("/vehicles/{registration}/coins/bonus", grantBonus.Handle).Methods(http.MethodPost)

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

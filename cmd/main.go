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

	addPaymentHandler "github.com/arcsportszone/ARC-BookingService/internal/api/handlers/add_payment"
	cancelBookingHandler "github.com/arcsportszone/ARC-BookingService/internal/api/handlers/cancel_booking"
	checkClashHandler "github.com/arcsportszone/ARC-BookingService/internal/api/handlers/check_clash"
	computePriceHandler "github.com/arcsportszone/ARC-BookingService/internal/api/handlers/compute_price"
	createBookingHandler "github.com/arcsportszone/ARC-BookingService/internal/api/handlers/create_booking"
	extendBookingHandler "github.com/arcsportszone/ARC-BookingService/internal/api/handlers/extend_booking"
	getAvailabilityHandler "github.com/arcsportszone/ARC-BookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/arcsportszone/ARC-BookingService/internal/api/handlers/get_booking"
	getCourtsHandler "github.com/arcsportszone/ARC-BookingService/internal/api/handlers/get_courts"
	getDayBookingsHandler "github.com/arcsportszone/ARC-BookingService/internal/api/handlers/get_day_bookings"
	getHeatmapHandler "github.com/arcsportszone/ARC-BookingService/internal/api/handlers/get_heatmap"
	subscribeEventsHandler "github.com/arcsportszone/ARC-BookingService/internal/api/handlers/subscribe_events"
	updateBookingHandler "github.com/arcsportszone/ARC-BookingService/internal/api/handlers/update_booking"
	updateCourtStatusHandler "github.com/arcsportszone/ARC-BookingService/internal/api/handlers/update_court_status"
	"github.com/arcsportszone/ARC-BookingService/internal/api/middleware"
	"github.com/arcsportszone/ARC-BookingService/internal/config"
	"github.com/arcsportszone/ARC-BookingService/internal/events"
	accessoryRepo "github.com/arcsportszone/ARC-BookingService/internal/infra/storage/accessory"
	bookingRepo "github.com/arcsportszone/ARC-BookingService/internal/infra/storage/booking"
	courtRepo "github.com/arcsportszone/ARC-BookingService/internal/infra/storage/court"
	paymentRepo "github.com/arcsportszone/ARC-BookingService/internal/infra/storage/payment"
	bookingsService "github.com/arcsportszone/ARC-BookingService/internal/service/bookings"
	courtsService "github.com/arcsportszone/ARC-BookingService/internal/service/courts"
	addPaymentUC "github.com/arcsportszone/ARC-BookingService/internal/usecase/add_payment"
	checkClashUC "github.com/arcsportszone/ARC-BookingService/internal/usecase/check_clash"
	computePriceUC "github.com/arcsportszone/ARC-BookingService/internal/usecase/compute_price"
	createBookingUC "github.com/arcsportszone/ARC-BookingService/internal/usecase/create_booking"
	extendBookingUC "github.com/arcsportszone/ARC-BookingService/internal/usecase/extend_booking"
	getAvailabilityUC "github.com/arcsportszone/ARC-BookingService/internal/usecase/get_availability"
	getHeatmapUC "github.com/arcsportszone/ARC-BookingService/internal/usecase/get_heatmap"
	updateBookingUC "github.com/arcsportszone/ARC-BookingService/internal/usecase/update_booking"
	"github.com/arcsportszone/ARC-BookingService/pkg/dbmetrics"
	"github.com/arcsportszone/ARC-BookingService/pkg/logger"
	"github.com/arcsportszone/ARC-BookingService/pkg/metrics"
	"github.com/arcsportszone/ARC-BookingService/pkg/simpletxmanager"
	"github.com/arcsportszone/ARC-BookingService/pkg/txmanager"
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

	log.Info("Starting ARC-BookingService...")
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

	// Шина уведомлений об изменениях (доставляется SSE-подписчикам)
	busOpts := []events.Option{events.WithBufferSize(32)}
	if cfg.Metrics.Enabled {
		busOpts = append(busOpts, events.WithMetrics(metricsCollector))
	}
	bus := events.NewBus(busOpts...)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		bookingRepository   *bookingRepo.Repository
		courtRepository     *courtRepo.Repository
		paymentRepository   *paymentRepo.Repository
		accessoryRepository *accessoryRepo.Repository
		txMgr               *txmanager.TransactionManager
	)

	txOpts := []txmanager.Option{}
	if cfg.Database.LockTimeoutMS > 0 {
		txOpts = append(txOpts, txmanager.WithLockTimeout(cfg.Database.LockTimeoutMS))
	}

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		courtRepository = courtRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		accessoryRepository = accessoryRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB, txOpts...)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		courtRepository = courtRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		accessoryRepository = accessoryRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db, txOpts...)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		paymentRepository,
		accessoryRepository,
		txMgr,
		bus,
		log,
	)
	courtSvc := courtsService.NewService(courtRepository, bus, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		courtRepository, bookingRepository, accessoryRepository, paymentRepository, txMgr, bus, log)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		courtRepository, bookingRepository, accessoryRepository, paymentRepository, txMgr, bus, log)
	extendBookingUseCase := extendBookingUC.NewUseCase(
		courtRepository, bookingRepository, accessoryRepository, paymentRepository, txMgr, bus, log)
	addPaymentUseCase := addPaymentUC.NewUseCase(bookingRepository, paymentRepository, txMgr, bus, log)
	checkClashUseCase := checkClashUC.NewUseCase(courtRepository, bookingRepository, log)
	computePriceUseCase := computePriceUC.NewUseCase(courtRepository, accessoryRepository, log)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(courtRepository, bookingRepository, log)
	getHeatmapUseCase := getHeatmapUC.NewUseCase(
		courtRepository, bookingRepository,
		cfg.Heatmap.DayStartMinutes(), cfg.Heatmap.DayEndMinutes(), log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	extendBooking := extendBookingHandler.NewHandler(extendBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	addPayment := addPaymentHandler.NewHandler(addPaymentUseCase, log)
	checkClash := checkClashHandler.NewHandler(checkClashUseCase, log)
	computePrice := computePriceHandler.NewHandler(computePriceUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getDayBookings := getDayBookingsHandler.NewHandler(bookingSvc, log)
	getCourts := getCourtsHandler.NewHandler(courtSvc, log)
	updateCourtStatus := updateCourtStatusHandler.NewHandler(courtSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getHeatmap := getHeatmapHandler.NewHandler(getHeatmapUseCase, log)
	subscribeEvents := subscribeEventsHandler.NewHandler(bus, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Identity)

	// --- Корты ---
	api.HandleFunc("/courts", getCourts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/courts/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/courts/{courtId}/status", updateCourtStatus.Handle).Methods(http.MethodPut)

	// --- Бронирования ---
	api.HandleFunc("/bookings/calculate-price", computePrice.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/check-clash", checkClash.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", getDayBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{bookingId}/extend", extendBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{bookingId}/payments", addPayment.Handle).Methods(http.MethodPost)

	// --- Теплокарта и события ---
	api.HandleFunc("/availability/heatmap", getHeatmap.Handle).Methods(http.MethodGet)
	api.HandleFunc("/events", subscribeEvents.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:        addr,
		Handler:     r,
		ReadTimeout: time.Duration(cfg.Server.ReadTimeout) * time.Second,
		// WriteTimeout не выставляем: /events держит соединение открытым
		// неограниченно долго
		IdleTimeout: time.Duration(cfg.Server.IdleTimeout) * time.Second,
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

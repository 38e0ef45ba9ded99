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

	cancelBookingHandler "github.com/m04kA/PropertyBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/PropertyBookingService/internal/api/handlers/create_booking"
	createPropertyHandler "github.com/m04kA/PropertyBookingService/internal/api/handlers/create_property"
	deleteBookingHandler "github.com/m04kA/PropertyBookingService/internal/api/handlers/delete_booking"
	disablePropertyHandler "github.com/m04kA/PropertyBookingService/internal/api/handlers/disable_property"
	getBookingHandler "github.com/m04kA/PropertyBookingService/internal/api/handlers/get_booking"
	getPropertyHandler "github.com/m04kA/PropertyBookingService/internal/api/handlers/get_property"
	getAvailabilityHandler "github.com/m04kA/PropertyBookingService/internal/api/handlers/get_property_availability"
	listPropertiesHandler "github.com/m04kA/PropertyBookingService/internal/api/handlers/list_properties"
	rebookBookingHandler "github.com/m04kA/PropertyBookingService/internal/api/handlers/rebook_booking"
	updateBookingDatesHandler "github.com/m04kA/PropertyBookingService/internal/api/handlers/update_booking_dates"
	updateGuestDetailsHandler "github.com/m04kA/PropertyBookingService/internal/api/handlers/update_guest_details"
	"github.com/m04kA/PropertyBookingService/internal/api/middleware"
	"github.com/m04kA/PropertyBookingService/internal/config"
	"github.com/m04kA/PropertyBookingService/internal/domain"
	kafkaBroker "github.com/m04kA/PropertyBookingService/internal/infra/broker/kafka"
	bookingRepo "github.com/m04kA/PropertyBookingService/internal/infra/storage/booking"
	"github.com/m04kA/PropertyBookingService/internal/infra/storage/memory"
	propertyRepo "github.com/m04kA/PropertyBookingService/internal/infra/storage/property"
	propertyServiceClient "github.com/m04kA/PropertyBookingService/internal/integrations/propertyservice"
	"github.com/m04kA/PropertyBookingService/internal/service/availability"
	bookingsService "github.com/m04kA/PropertyBookingService/internal/service/bookings"
	propertiesService "github.com/m04kA/PropertyBookingService/internal/service/properties"
	createBookingUC "github.com/m04kA/PropertyBookingService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/PropertyBookingService/internal/usecase/get_property_availability"
	"github.com/m04kA/PropertyBookingService/pkg/dbmetrics"
	"github.com/m04kA/PropertyBookingService/pkg/logger"
	"github.com/m04kA/PropertyBookingService/pkg/metrics"
	"github.com/m04kA/PropertyBookingService/pkg/txmanager"
)

// bookingStorage объединяет контракты хранилища бронирований всех потребителей
type bookingStorage interface {
	bookingsService.BookingRepository
	createBookingUC.BookingRepository
	getAvailabilityUC.BookingRepository
	availability.BookingRepository
}

type eventPublisher interface {
	Publish(ctx context.Context, event domain.BookingEvent) error
	Close() error
}

func main() {
	// Загружаем конфигурацию
	cfgPath := config.Path()
	cfg, err := config.Load(cfgPath)
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

	log.Info("Starting PropertyBookingService...")
	log.Info("Configuration loaded from %s", cfgPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище
	var (
		bookings   bookingStorage
		properties propertiesService.PropertyRepository
		txMgr      bookingsService.TransactionManager
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		store := memory.NewStore()
		bookings = memory.NewBookingRepository(store)
		properties = memory.NewPropertyRepository(store)
		txMgr = memory.NewTxManager(store)
		log.Warn("Using in-memory storage, data is lost on restart")

	default:
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

		// Без метрик обертка работает как обычный *sql.DB
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)

		bookings = bookingRepo.NewRepository(wrappedDB)
		properties = propertyRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	}

	// Инициализируем сервисы
	propertySvc := propertiesService.NewService(properties, log)

	// Справочник объектов: собственная таблица или внешний сервис
	var directory createBookingUC.PropertyDirectory = propertySvc
	if cfg.PropertyDirectory.Mode == config.DirectoryModeRemote {
		directory = propertyServiceClient.NewClient(
			cfg.PropertyDirectory.URL,
			time.Duration(cfg.PropertyDirectory.Timeout)*time.Second,
			log,
		)
		log.Info("Property directory client initialized (url=%s timeout=%ds)",
			cfg.PropertyDirectory.URL, cfg.PropertyDirectory.Timeout)
	}

	// Публикация событий
	var publisher eventPublisher = kafkaBroker.Discard{}
	if cfg.Kafka.Enabled {
		producer, err := kafkaBroker.NewProducer(kafkaBroker.Config{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Kafka.Topic,
			Compression:  cfg.Kafka.Compression,
			RequiredAcks: cfg.Kafka.RequiredAcks,
			MaxAttempts:  cfg.Kafka.MaxAttempts,
			BatchTimeout: cfg.Kafka.BatchTimeout(),
		}, metricsCollector)
		if err != nil {
			log.Fatal("Failed to create kafka producer: %v", err)
		}
		publisher = producer
		log.Info("Kafka producer initialized (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error("Failed to close event publisher: %v", err)
		}
	}()

	validator := availability.NewValidator(bookings)

	bookingSvc := bookingsService.NewService(
		bookings,
		validator,
		txMgr,
		publisher,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookings,
		validator,
		directory,
		txMgr,
		publisher,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookings,
		validator,
		directory,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	rebookBooking := rebookBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	updateBookingDates := updateBookingDatesHandler.NewHandler(bookingSvc, log)
	updateGuestDetails := updateGuestDetailsHandler.NewHandler(bookingSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createProperty := createPropertyHandler.NewHandler(propertySvc, log)
	getProperty := getPropertyHandler.NewHandler(propertySvc, log)
	listProperties := listPropertiesHandler.NewHandler(propertySvc, log)
	disableProperty := disablePropertyHandler.NewHandler(propertySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/rebook", rebookBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/update-booking-dates", updateBookingDates.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/update-guest-details", updateGuestDetails.Handle).Methods(http.MethodPatch)

	// --- Объекты ---
	api.HandleFunc("/properties", createProperty.Handle).Methods(http.MethodPost)
	api.HandleFunc("/properties", listProperties.Handle).Methods(http.MethodGet)
	api.HandleFunc("/properties/{propertyId}", getProperty.Handle).Methods(http.MethodGet)
	api.HandleFunc("/properties/{propertyId}/disable", disableProperty.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/properties/{propertyId}/availability", getAvailability.Handle).Methods(http.MethodGet)

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
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeoutDuration())
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

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
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/m04kA/chargemate-booking/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/chargemate-booking/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/chargemate-booking/internal/api/handlers/create_booking"
	deleteNotificationHandler "github.com/m04kA/chargemate-booking/internal/api/handlers/delete_notification"
	editBookingHandler "github.com/m04kA/chargemate-booking/internal/api/handlers/edit_booking"
	exportOccupancyHandler "github.com/m04kA/chargemate-booking/internal/api/handlers/export_occupancy"
	getAvailableSlotsHandler "github.com/m04kA/chargemate-booking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/chargemate-booking/internal/api/handlers/get_booking"
	getConnectorTypesHandler "github.com/m04kA/chargemate-booking/internal/api/handlers/get_connector_types"
	getNotificationsHandler "github.com/m04kA/chargemate-booking/internal/api/handlers/get_notifications"
	getStationBookingsHandler "github.com/m04kA/chargemate-booking/internal/api/handlers/get_station_bookings"
	getUserBookingsHandler "github.com/m04kA/chargemate-booking/internal/api/handlers/get_user_bookings"
	markAllNotificationsReadHandler "github.com/m04kA/chargemate-booking/internal/api/handlers/mark_all_notifications_read"
	markNotificationReadHandler "github.com/m04kA/chargemate-booking/internal/api/handlers/mark_notification_read"
	"github.com/m04kA/chargemate-booking/internal/api/middleware"
	"github.com/m04kA/chargemate-booking/internal/config"
	stationCache "github.com/m04kA/chargemate-booking/internal/infra/cache/station"
	bookingRepo "github.com/m04kA/chargemate-booking/internal/infra/storage/booking"
	notificationRepo "github.com/m04kA/chargemate-booking/internal/infra/storage/notification"
	stationRepo "github.com/m04kA/chargemate-booking/internal/infra/storage/station"
	"github.com/m04kA/chargemate-booking/internal/integrations/mailer"
	bookingsService "github.com/m04kA/chargemate-booking/internal/service/bookings"
	"github.com/m04kA/chargemate-booking/internal/service/dispatch"
	"github.com/m04kA/chargemate-booking/internal/service/slots"
	cancelBookingUC "github.com/m04kA/chargemate-booking/internal/usecase/cancel_booking"
	checkAvailabilityUC "github.com/m04kA/chargemate-booking/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/chargemate-booking/internal/usecase/create_booking"
	editBookingUC "github.com/m04kA/chargemate-booking/internal/usecase/edit_booking"
	exportOccupancyUC "github.com/m04kA/chargemate-booking/internal/usecase/export_occupancy"
	getAvailableSlotsUC "github.com/m04kA/chargemate-booking/internal/usecase/get_available_slots"
	"github.com/m04kA/chargemate-booking/pkg/dbmetrics"
	"github.com/m04kA/chargemate-booking/pkg/logger"
	"github.com/m04kA/chargemate-booking/pkg/metrics"
	"github.com/m04kA/chargemate-booking/pkg/txmanager"
)

// stationProvider справочник станций: Postgres напрямую или через Redis
type stationProvider interface {
	createBookingUC.StationProvider
	bookingsService.StationProvider
}

// emailSender очередь писем: RabbitMQ или запись в лог
type emailSender interface {
	dispatch.EmailSender
	Close() error
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level, logger.WithFormat(cfg.Logs.Format))
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting chargemate-booking...")

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load booking timezone: %v", err)
	}

	// Метрики (nil, если выключены: все методы nil-safe)
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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	notificationRepository := notificationRepo.NewRepository(wrappedDB)
	stationRepository := stationRepo.NewRepository(wrappedDB)

	var stations stationProvider = stationRepository
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			// Кэш не обязателен: при недоступном Redis чтения уходят в Postgres
			log.Warn("Redis ping failed, station cache will fall back to database: %v", err)
		}
		cancel()

		stations = stationCache.NewCache(redisClient, stationRepository,
			time.Duration(cfg.StationCache.TTL)*time.Second, log)
		log.Info("Station cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.StationCache.TTL)
	}

	// Очередь писем
	var mail emailSender
	if cfg.RabbitMQ.Enabled {
		client, err := mailer.Dial(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, cfg.RabbitMQ.RoutingKey, log)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		mail = client
		log.Info("Mail queue connected (exchange=%s, routing_key=%s)", cfg.RabbitMQ.Exchange, cfg.RabbitMQ.RoutingKey)
	} else {
		mail = mailer.NewLogSender(log)
		log.Warn("RabbitMQ disabled, emails are only logged")
	}
	defer mail.Close()

	dispatcher := dispatch.NewDispatcher(notificationRepository, mail, metricsCollector, log)
	calculator := slots.NewCalculator(bookingRepository)

	// Сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, stations, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		stations,
		calculator,
		txMgr,
		metricsCollector,
		createBookingUC.Config{
			Location:         location,
			ReminderLead:     cfg.Booking.ReminderLead(),
			AllowedDurations: cfg.Booking.AllowedDurations,
		},
		log,
	)

	editBookingUseCase := editBookingUC.NewUseCase(
		bookingRepository,
		stations,
		calculator,
		txMgr,
		metricsCollector,
		editBookingUC.Config{
			Location:         location,
			ReminderLead:     cfg.Booking.ReminderLead(),
			AllowedDurations: cfg.Booking.AllowedDurations,
		},
		log,
	)

	cancelBookingUseCase := cancelBookingUC.NewUseCase(bookingRepository, stations, metricsCollector, log)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(stations, calculator, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(stations, calculator, location, log)
	exportOccupancyUseCase := exportOccupancyUC.NewUseCase(stations, calculator, log)

	// Справочник разъёмов строится один раз при старте и обновляется по таймеру
	if err := bookingSvc.RefreshConnectors(context.Background()); err != nil {
		log.Warn("Failed to build connector index: %v", err)
	}
	stopBackgroundCh := make(chan struct{})
	go refreshConnectors(bookingSvc, time.Duration(cfg.StationCache.TTL)*time.Second, stopBackgroundCh, log)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, dispatcher, log)
	editBooking := editBookingHandler.NewHandler(editBookingUseCase, dispatcher, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, dispatcher, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	exportOccupancy := exportOccupancyHandler.NewHandler(exportOccupancyUseCase, log)
	getStationBookings := getStationBookingsHandler.NewHandler(bookingSvc, log)
	getConnectorTypes := getConnectorTypesHandler.NewHandler(bookingSvc)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getNotifications := getNotificationsHandler.NewHandler(notificationRepository, log)
	markNotificationRead := markNotificationReadHandler.NewHandler(notificationRepository, log)
	markAllNotificationsRead := markAllNotificationsReadHandler.NewHandler(notificationRepository, log)
	deleteNotification := deleteNotificationHandler.NewHandler(notificationRepository, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/stations/{stationId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/stations/{stationId}/bookings", getStationBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/stations/{stationId}/occupancy.xlsx", exportOccupancy.Handle).Methods(http.MethodGet)
	api.HandleFunc("/connector-types", getConnectorTypes.Handle).Methods(http.MethodGet)

	// ============================================================
	// MUTATING ROUTES (ограничение частоты на клиента)
	// ============================================================

	mutating := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter, err := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.TrustedProxies)
		if err != nil {
			log.Error("Failed to create rate limiter: %v", err)
			os.Exit(1)
		}
		go limiter.RunEviction(time.Minute, cfg.RateLimit.IdleTimeout(), stopBackgroundCh)
		mutating.Use(limiter.Limit)
		log.Info("Rate limiting enabled (rps=%.2f, burst=%d)", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	mutating.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	mutating.HandleFunc("/bookings/{bookingId}", editBooking.Handle).Methods(http.MethodPut)
	mutating.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// ============================================================
	// PROTECTED ROUTES (Authorization: Bearer <jwt>)
	// ============================================================

	authenticator := middleware.NewAuthenticator(cfg.Auth.JWTSecret)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(authenticator.Auth)

	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/mybookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/notifications", getNotifications.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/mark-all-read", markAllNotificationsRead.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/notifications/{notificationId:[0-9]+}", markNotificationRead.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/notifications/{notificationId:[0-9]+}", deleteNotification.Handle).Methods(http.MethodDelete)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	close(stopBackgroundCh)
	close(stopMetricsCh)

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

func refreshConnectors(svc *bookingsService.Service, interval time.Duration, stopCh <-chan struct{}, log *logger.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := svc.RefreshConnectors(context.Background()); err != nil {
				log.Warn("Failed to refresh connector index: %v", err)
			}
		case <-stopCh:
			return
		}
	}
}

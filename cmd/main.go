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

	createBookingHandler "github.com/lesnoy-dvorik/booking-service/internal/api/handlers/create_booking"
	getBookingHandler "github.com/lesnoy-dvorik/booking-service/internal/api/handlers/get_booking"
	getBookingByNumberHandler "github.com/lesnoy-dvorik/booking-service/internal/api/handlers/get_booking_by_number"
	paymentWebhookHandler "github.com/lesnoy-dvorik/booking-service/internal/api/handlers/payment_webhook"
	"github.com/lesnoy-dvorik/booking-service/internal/api/middleware"
	"github.com/lesnoy-dvorik/booking-service/internal/config"
	bookingRepo "github.com/lesnoy-dvorik/booking-service/internal/infra/storage/booking"
	roomRepo "github.com/lesnoy-dvorik/booking-service/internal/infra/storage/room"
	"github.com/lesnoy-dvorik/booking-service/internal/integrations/mailer"
	"github.com/lesnoy-dvorik/booking-service/internal/integrations/yookassa"
	bookingsService "github.com/lesnoy-dvorik/booking-service/internal/service/bookings"
	createBookingUC "github.com/lesnoy-dvorik/booking-service/internal/usecase/create_booking"
	processWebhookUC "github.com/lesnoy-dvorik/booking-service/internal/usecase/process_webhook"
	"github.com/lesnoy-dvorik/booking-service/pkg/dbmetrics"
	"github.com/lesnoy-dvorik/booking-service/pkg/logger"
	"github.com/lesnoy-dvorik/booking-service/pkg/metrics"
)

// poolStatsInterval период опроса статистики connection pool
const poolStatsInterval = 15 * time.Second

// noopMetrics заглушка бизнес-метрик при выключенном prometheus
type noopMetrics struct{}

func (noopMetrics) IncBookingCreated(string)  {}
func (noopMetrics) IncWebhook(string, string) {}

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

	log.Info("Starting booking-service...")
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

	// Инициализируем интеграционных клиентов
	paymentClient := yookassa.NewClient(
		cfg.YooKassa.BaseURL,
		cfg.YooKassa.ShopID,
		cfg.YooKassa.SecretKey,
		time.Duration(cfg.YooKassa.Timeout)*time.Second,
		log,
	)
	mailClient := mailer.New(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username, cfg.Mail.Password, cfg.Mail.From)
	log.Info("Integration clients initialized (YooKassa shop_id=%s timeout=%ds, SMTP host=%s)",
		cfg.YooKassa.ShopID, cfg.YooKassa.Timeout, cfg.Mail.Host)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		roomRepository    *roomRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, poolStatsInterval, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, roomRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		paymentClient,
		mailClient,
		cfg.YooKassa.ReturnURL,
		cfg.Booking.ExtraGuestSurcharge,
		log,
	)
	processWebhookUseCase := processWebhookUC.NewUseCase(
		bookingRepository,
		roomRepository,
		mailClient,
		log,
	)

	// Бизнес-метрики в handlers
	var createBookingMetrics createBookingHandler.Metrics = noopMetrics{}
	var webhookMetrics paymentWebhookHandler.Metrics = noopMetrics{}
	if cfg.Metrics.Enabled {
		createBookingMetrics = metricsCollector
		webhookMetrics = metricsCollector
	}

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, createBookingMetrics, log)
	paymentWebhook := paymentWebhookHandler.NewHandler(processWebhookUseCase, webhookMetrics, log)
	getBookingByNumber := getBookingByNumberHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Бронирования ---
	// Создание бронирования с инициацией оплаты
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по внутреннему ID
	api.HandleFunc("/bookings/id/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Получение бронирования по человекочитаемому номеру
	api.HandleFunc("/bookings/{bookingNumber}", getBookingByNumber.Handle).Methods(http.MethodGet)

	// --- Уведомления платежного провайдера ---
	allowlist, err := middleware.NewWebhookAllowlist(cfg.Webhook.AllowlistEnabled, cfg.Webhook.AllowedNetworks, log)
	if err != nil {
		log.Fatal("Failed to build webhook allowlist: %v", err)
	}
	if cfg.Webhook.AllowlistEnabled {
		log.Info("Webhook IP allowlist enabled (%d networks)", len(cfg.Webhook.AllowedNetworks))
	}

	webhook := api.PathPrefix("/payments").Subrouter()
	webhook.Use(allowlist.Middleware)
	webhook.HandleFunc("/yookassa/webhook", paymentWebhook.Handle).Methods(http.MethodPost)

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

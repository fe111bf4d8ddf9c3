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

	cancelAppointmentHandler "github.com/barberhub/booking-service/internal/api/handlers/cancel_appointment"
	completeAppointmentHandler "github.com/barberhub/booking-service/internal/api/handlers/complete_appointment"
	createAppointmentHandler "github.com/barberhub/booking-service/internal/api/handlers/create_appointment"
	createServiceHandler "github.com/barberhub/booking-service/internal/api/handlers/create_service"
	deleteServiceHandler "github.com/barberhub/booking-service/internal/api/handlers/delete_service"
	getAppointmentHandler "github.com/barberhub/booking-service/internal/api/handlers/get_appointment"
	getAvailableDatesHandler "github.com/barberhub/booking-service/internal/api/handlers/get_available_dates"
	getAvailableSlotsHandler "github.com/barberhub/booking-service/internal/api/handlers/get_available_slots"
	getBarberAppointmentsHandler "github.com/barberhub/booking-service/internal/api/handlers/get_barber_appointments"
	getBarberServicesHandler "github.com/barberhub/booking-service/internal/api/handlers/get_barber_services"
	getClientAppointmentsHandler "github.com/barberhub/booking-service/internal/api/handlers/get_client_appointments"
	getScheduleHandler "github.com/barberhub/booking-service/internal/api/handlers/get_schedule"
	getServiceHandler "github.com/barberhub/booking-service/internal/api/handlers/get_service"
	updateScheduleHandler "github.com/barberhub/booking-service/internal/api/handlers/update_schedule"
	updateServiceHandler "github.com/barberhub/booking-service/internal/api/handlers/update_service"
	"github.com/barberhub/booking-service/internal/api/middleware"
	"github.com/barberhub/booking-service/internal/config"
	appointmentRepo "github.com/barberhub/booking-service/internal/infra/storage/appointment"
	scheduleRepo "github.com/barberhub/booking-service/internal/infra/storage/schedule"
	serviceRepo "github.com/barberhub/booking-service/internal/infra/storage/service"
	notifierClient "github.com/barberhub/booking-service/internal/integrations/notifier"
	profileServiceClient "github.com/barberhub/booking-service/internal/integrations/profileservice"
	appointmentsService "github.com/barberhub/booking-service/internal/service/appointments"
	catalogService "github.com/barberhub/booking-service/internal/service/catalog"
	createAppointmentUC "github.com/barberhub/booking-service/internal/usecase/create_appointment"
	getAvailableDatesUC "github.com/barberhub/booking-service/internal/usecase/get_available_dates"
	getAvailableSlotsUC "github.com/barberhub/booking-service/internal/usecase/get_available_slots"
	updateScheduleUC "github.com/barberhub/booking-service/internal/usecase/update_schedule"
	"github.com/barberhub/booking-service/pkg/dbmetrics"
	"github.com/barberhub/booking-service/pkg/logger"
	"github.com/barberhub/booking-service/pkg/metrics"
	"github.com/barberhub/booking-service/pkg/simpletxmanager"
	"github.com/barberhub/booking-service/pkg/txmanager"
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

	log.Info("Starting BarberHub BookingService...")
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

	// Инициализируем интеграционных клиентов
	profileClient := profileServiceClient.NewClient(
		cfg.ProfileService.URL,
		time.Duration(cfg.ProfileService.Timeout)*time.Second,
		log,
	)
	notify := notifierClient.NewClient(
		cfg.Notifier.URL,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		cfg.Notifier.Enabled,
		log,
	)
	log.Info("Integration clients initialized (ProfileService=%s timeout=%ds, Notifier=%s enabled=%t)",
		cfg.ProfileService.URL, cfg.ProfileService.Timeout, cfg.Notifier.URL, cfg.Notifier.Enabled)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
		serviceRepository     *serviceRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		notify,
		log,
	)
	catalogSvc := catalogService.NewService(
		serviceRepository,
		scheduleRepository,
		log,
	)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		serviceRepository,
		profileClient,
		notify,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		serviceRepository,
		log,
	)
	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(scheduleRepository, log)
	updateScheduleUseCase := updateScheduleUC.NewUseCase(scheduleRepository, txMgr, log)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	updateSchedule := updateScheduleHandler.NewHandler(updateScheduleUseCase, log)
	getSchedule := getScheduleHandler.NewHandler(catalogSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	completeAppointment := completeAppointmentHandler.NewHandler(appointmentsSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getBarberAppointments := getBarberAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getBarberServices := getBarberServicesHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
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

	// Рабочие даты барбера в пределах горизонта записи
	api.HandleFunc("/barbers/{barberId}/available-dates",
		getAvailableDates.Handle).Methods(http.MethodGet)

	// Свободные слоты барбера на дату
	api.HandleFunc("/barbers/{barberId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Недельное расписание барбера
	api.HandleFunc("/barbers/{barberId}/schedule",
		getSchedule.Handle).Methods(http.MethodGet)

	// Услуги барбера
	api.HandleFunc("/barbers/{barberId}/services",
		getBarberServices.Handle).Methods(http.MethodGet)

	// Услуга по ID
	api.HandleFunc("/services/{serviceId}",
		getService.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Завершение записи (только барбер)
	protected.HandleFunc("/appointments/{appointmentId}/complete", completeAppointment.Handle).Methods(http.MethodPatch)

	// История записей клиента
	protected.HandleFunc("/clients/{clientId}/appointments", getClientAppointments.Handle).Methods(http.MethodGet)

	// --- Кабинет барбера ---
	// Записи барбера с фильтрацией по периоду и статусу
	protected.HandleFunc("/barbers/{barberId}/appointments", getBarberAppointments.Handle).Methods(http.MethodGet)

	// Обновление недельного расписания
	protected.HandleFunc("/barbers/{barberId}/schedule", updateSchedule.Handle).Methods(http.MethodPut)

	// Управление услугами
	protected.HandleFunc("/barbers/{barberId}/services", createService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)

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

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

	createAppointmentHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/create_appointment"
	createCustomerHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/create_customer"
	deleteAppointmentHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/delete_appointment"
	deleteCustomerHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/delete_customer"
	getAppointmentHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_appointment"
	getAppointmentsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_appointments"
	getContactScheduleHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_contact_schedule"
	getContactsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_contacts"
	getCustomerHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_customer"
	getCustomersHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_customers"
	getTimeOptionsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_time_options"
	getTypeReportHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_type_report"
	updateAppointmentHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/update_appointment"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/appointment"
	contactRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/contact"
	customerRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/customer"
	appointmentsService "github.com/m04kA/SMC-SchedulingService/internal/service/appointments"
	contactsService "github.com/m04kA/SMC-SchedulingService/internal/service/contacts"
	customersService "github.com/m04kA/SMC-SchedulingService/internal/service/customers"
	reportsService "github.com/m04kA/SMC-SchedulingService/internal/service/reports"
	createAppointmentUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_appointment"
	getTimeOptionsUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_time_options"
	updateAppointmentUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/update_appointment"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-SchedulingService/pkg/txmanager"
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

	log.Info("Starting SMC-SchedulingService...")
	log.Info("Configuration loaded from config.toml")
	log.Info("Company hours: timezone=%s, open=%02d:%02d, duration=%d min",
		cfg.Company.Timezone, cfg.Company.OpenHour, cfg.Company.OpenMinute, cfg.Company.OpenDurationMinutes)

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
		appointmentRepository *appointmentRepo.Repository
		customerRepository    *customerRepo.Repository
		contactRepository     *contactRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
		contactRepository = contactRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
		contactRepository = contactRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	companyHours := cfg.CompanyHours()
	overlapPolicy := cfg.OverlapPolicy()

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)
	customerSvc := customersService.NewService(customerRepository, appointmentRepository, txMgr, log)
	contactSvc := contactsService.NewService(contactRepository, log)
	reportSvc := reportsService.NewService(appointmentRepository, contactRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		customerRepository,
		contactRepository,
		txMgr,
		companyHours,
		overlapPolicy,
		log,
	)

	updateAppointmentUseCase := updateAppointmentUC.NewUseCase(
		appointmentRepository,
		customerRepository,
		contactRepository,
		txMgr,
		companyHours,
		overlapPolicy,
		log,
	)

	getTimeOptionsUseCase := getTimeOptionsUC.NewUseCase(companyHours, log)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	updateAppointment := updateAppointmentHandler.NewHandler(updateAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	getAppointments := getAppointmentsHandler.NewHandler(appointmentSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)
	createCustomer := createCustomerHandler.NewHandler(customerSvc, log)
	getCustomer := getCustomerHandler.NewHandler(customerSvc, log)
	getCustomers := getCustomersHandler.NewHandler(customerSvc, log)
	deleteCustomer := deleteCustomerHandler.NewHandler(customerSvc, log)
	getContacts := getContactsHandler.NewHandler(contactSvc, log)
	getTimeOptions := getTimeOptionsHandler.NewHandler(getTimeOptionsUseCase, log)
	getTypeReport := getTypeReportHandler.NewHandler(reportSvc, log)
	getContactSchedule := getContactScheduleHandler.NewHandler(reportSvc, log)

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

	// Опции выбора времени начала встречи по рабочим часам компании
	api.HandleFunc("/schedule/time-options", getTimeOptions.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Встречи ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Клиенты ---
	protected.HandleFunc("/customers", createCustomer.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/customers", getCustomers.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/customers/{customerId}", getCustomer.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/customers/{customerId}", deleteCustomer.Handle).Methods(http.MethodDelete)

	// --- Контакты ---
	protected.HandleFunc("/contacts", getContacts.Handle).Methods(http.MethodGet)

	// --- Отчеты ---
	protected.HandleFunc("/reports/appointment-types", getTypeReport.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reports/contacts/{contactId}/schedule", getContactSchedule.Handle).Methods(http.MethodGet)

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

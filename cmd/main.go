package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createVisitHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_visit"
	deleteVisitHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/delete_visit"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_available_slots"
	getVisitHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_visit"
	listVisitsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/list_visits"
	manageEmployeesHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/manage_employees"
	manageHallsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/manage_halls"
	manageServicesHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/manage_services"
	updateVisitHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/update_visit"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/config"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/capacity"
	catalogService "github.com/m04kA/SMC-SalonService/internal/service/catalog"
	employeesService "github.com/m04kA/SMC-SalonService/internal/service/employees"
	"github.com/m04kA/SMC-SalonService/internal/service/resolver"
	"github.com/m04kA/SMC-SalonService/internal/service/transitioner"
	visitsService "github.com/m04kA/SMC-SalonService/internal/service/visits"
	createVisitUC "github.com/m04kA/SMC-SalonService/internal/usecase/create_visit"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
	updateVisitUC "github.com/m04kA/SMC-SalonService/internal/usecase/update_visit"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
)

const defaultConfigPath = "config.toml"

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-SalonService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	store, err := openStorage(cfg, metricsCollector, stopMetricsCh, log)
	if err != nil {
		log.Fatal("Failed to initialize storage: %v", err)
	}
	defer store.close()

	policy := domain.BookingPolicy{
		HorizonDays:      cfg.Booking.HorizonDays,
		MinNoticeMinutes: cfg.Booking.MinNoticeMinutes,
	}

	// Доменные сервисы
	slotResolver := resolver.NewResolver(store.employees, store.services, store.halls)
	guard := capacity.NewGuard(store.visits, log)
	sweeper := transitioner.NewTransitioner(store.visits, metricsCollector, log)

	// Use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(slotResolver, store.visits, policy, log)
	createVisitUseCase := createVisitUC.NewUseCase(slotResolver, guard, store.visits, store.tx, metricsCollector, policy, log)
	updateVisitUseCase := updateVisitUC.NewUseCase(slotResolver, guard, sweeper, store.visits, store.tx, policy, log)

	// Сервисы
	visitsSvc := visitsService.NewService(store.visits, store.employees, sweeper, log)
	catalogSvc := catalogService.NewService(store.halls, store.services, store.visits, store.tx, log)
	employeesSvc := employeesService.NewService(store.employees, store.halls, store.services, store.tx, log)

	// Handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createVisit := createVisitHandler.NewHandler(createVisitUseCase, log)
	updateVisit := updateVisitHandler.NewHandler(updateVisitUseCase, log)
	deleteVisit := deleteVisitHandler.NewHandler(visitsSvc, log)
	getVisit := getVisitHandler.NewHandler(visitsSvc, log)
	listVisits := listVisitsHandler.NewHandler(visitsSvc, log)
	halls := manageHallsHandler.NewHandler(catalogSvc, log)
	services := manageServicesHandler.NewHandler(catalogSvc, log)
	employees := manageEmployeesHandler.NewHandler(employeesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Публичные endpoints ---
	// Свободные слоты, всегда 200
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Справочники
	api.HandleFunc("/halls", halls.List).Methods(http.MethodGet)
	api.HandleFunc("/halls/{hallId:[0-9]+}", halls.Get).Methods(http.MethodGet)
	api.HandleFunc("/services", services.List).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId:[0-9]+}", services.Get).Methods(http.MethodGet)
	api.HandleFunc("/employees", employees.List).Methods(http.MethodGet)
	api.HandleFunc("/employees/{employeeId:[0-9]+}", employees.Get).Methods(http.MethodGet)

	// --- Защищённые endpoints ---
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Визиты
	protected.HandleFunc("/visits", createVisit.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/visits", listVisits.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/visits/{visitId}", getVisit.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/visits/{visitId}", updateVisit.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/visits/{visitId}/delete", deleteVisit.Handle).Methods(http.MethodPost)

	// Администрирование
	protected.HandleFunc("/halls", halls.Create).Methods(http.MethodPost)
	protected.HandleFunc("/halls/{hallId}", halls.Update).Methods(http.MethodPut)
	protected.HandleFunc("/services", services.Create).Methods(http.MethodPost)
	protected.HandleFunc("/services/{serviceId}", services.Update).Methods(http.MethodPut)
	protected.HandleFunc("/employees", employees.Create).Methods(http.MethodPost)
	protected.HandleFunc("/employees/{employeeId}", employees.Update).Methods(http.MethodPut)

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

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

	cancelReservationHandler "github.com/m04kA/DS-ReservationService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/m04kA/DS-ReservationService/internal/api/handlers/create_reservation"
	createTableHandler "github.com/m04kA/DS-ReservationService/internal/api/handlers/create_table"
	deleteReservationHandler "github.com/m04kA/DS-ReservationService/internal/api/handlers/delete_reservation"
	deleteTableHandler "github.com/m04kA/DS-ReservationService/internal/api/handlers/delete_table"
	getAvailableTablesHandler "github.com/m04kA/DS-ReservationService/internal/api/handlers/get_available_tables"
	getDayAvailabilityHandler "github.com/m04kA/DS-ReservationService/internal/api/handlers/get_day_availability"
	getFloorPlanHandler "github.com/m04kA/DS-ReservationService/internal/api/handlers/get_floor_plan"
	getLiveOccupancyHandler "github.com/m04kA/DS-ReservationService/internal/api/handlers/get_live_occupancy"
	getReservationHandler "github.com/m04kA/DS-ReservationService/internal/api/handlers/get_reservation"
	getRestaurantReservationsHandler "github.com/m04kA/DS-ReservationService/internal/api/handlers/get_restaurant_reservations"
	getUserReservationsHandler "github.com/m04kA/DS-ReservationService/internal/api/handlers/get_user_reservations"
	listTablesHandler "github.com/m04kA/DS-ReservationService/internal/api/handlers/list_tables"
	saveFloorPlanHandler "github.com/m04kA/DS-ReservationService/internal/api/handlers/save_floor_plan"
	updateReservationHandler "github.com/m04kA/DS-ReservationService/internal/api/handlers/update_reservation"
	updateReservationStatusHandler "github.com/m04kA/DS-ReservationService/internal/api/handlers/update_reservation_status"
	updateTableHandler "github.com/m04kA/DS-ReservationService/internal/api/handlers/update_table"
	"github.com/m04kA/DS-ReservationService/internal/api/middleware"
	"github.com/m04kA/DS-ReservationService/internal/config"
	reservationRepo "github.com/m04kA/DS-ReservationService/internal/infra/storage/reservation"
	restaurantRepo "github.com/m04kA/DS-ReservationService/internal/infra/storage/restaurant"
	tableRepo "github.com/m04kA/DS-ReservationService/internal/infra/storage/table"
	floorplansService "github.com/m04kA/DS-ReservationService/internal/service/floorplans"
	reservationsService "github.com/m04kA/DS-ReservationService/internal/service/reservations"
	tablesService "github.com/m04kA/DS-ReservationService/internal/service/tables"
	createReservationUC "github.com/m04kA/DS-ReservationService/internal/usecase/create_reservation"
	getAvailableTablesUC "github.com/m04kA/DS-ReservationService/internal/usecase/get_available_tables"
	getDayAvailabilityUC "github.com/m04kA/DS-ReservationService/internal/usecase/get_day_availability"
	updateReservationUC "github.com/m04kA/DS-ReservationService/internal/usecase/update_reservation"
	"github.com/m04kA/DS-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/DS-ReservationService/pkg/logger"
	"github.com/m04kA/DS-ReservationService/pkg/metrics"
	"github.com/m04kA/DS-ReservationService/pkg/simpletxmanager"
	"github.com/m04kA/DS-ReservationService/pkg/txmanager"
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

	log.Info("Starting DS-ReservationService...")
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
		reservationRepository *reservationRepo.Repository
		tableRepository       *tableRepo.Repository
		restaurantRepository  *restaurantRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		tableRepository = tableRepo.NewRepository(wrappedDB)
		restaurantRepository = restaurantRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		tableRepository = tableRepo.NewRepository(db)
		restaurantRepository = restaurantRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(reservationRepository, tableRepository, log)
	tableSvc := tablesService.NewService(tableRepository, restaurantRepository, log)
	floorPlanSvc := floorplansService.NewService(restaurantRepository, tableRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		tableRepository,
		restaurantRepository,
		txMgr,
		log,
	)
	updateReservationUseCase := updateReservationUC.NewUseCase(
		reservationRepository,
		tableRepository,
		restaurantRepository,
		txMgr,
		log,
	)
	getDayAvailabilityUseCase := getDayAvailabilityUC.NewUseCase(
		reservationRepository,
		tableRepository,
		restaurantRepository,
		log,
	)
	getAvailableTablesUseCase := getAvailableTablesUC.NewUseCase(
		reservationRepository,
		tableRepository,
		restaurantRepository,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationSvc, log)
	getRestaurantReservations := getRestaurantReservationsHandler.NewHandler(reservationSvc, log)
	getDayAvailability := getDayAvailabilityHandler.NewHandler(getDayAvailabilityUseCase, log)
	getAvailableTables := getAvailableTablesHandler.NewHandler(getAvailableTablesUseCase, log)
	getLiveOccupancy := getLiveOccupancyHandler.NewHandler(reservationSvc, log)
	getFloorPlan := getFloorPlanHandler.NewHandler(floorPlanSvc, log)
	saveFloorPlan := saveFloorPlanHandler.NewHandler(floorPlanSvc, log)
	createTable := createTableHandler.NewHandler(tableSvc, log)
	updateTable := updateTableHandler.NewHandler(tableSvc, log)
	deleteTable := deleteTableHandler.NewHandler(tableSvc, log)
	listTables := listTablesHandler.NewHandler(tableSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

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

	// Доступность слотов ресторана на день
	api.HandleFunc("/restaurants/{restaurantId}/availability",
		getDayAvailability.Handle).Methods(http.MethodGet)

	// Свободные столы на конкретное время
	api.HandleFunc("/restaurants/{restaurantId}/available-tables",
		getAvailableTables.Handle).Methods(http.MethodGet)

	// План зала ресторана
	api.HandleFunc("/restaurants/{restaurantId}/floor-plan",
		getFloorPlan.Handle).Methods(http.MethodGet)

	// Столы ресторана
	api.HandleFunc("/restaurants/{restaurantId}/tables",
		listTables.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// --- Управление рестораном (для персонала) ---
	protected.HandleFunc("/restaurants/{restaurantId}/reservations", getRestaurantReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/restaurants/{restaurantId}/occupancy", getLiveOccupancy.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/restaurants/{restaurantId}/floor-plan", saveFloorPlan.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/restaurants/{restaurantId}/tables", createTable.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/tables/{tableId}", updateTable.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/tables/{tableId}", deleteTable.Handle).Methods(http.MethodDelete)

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

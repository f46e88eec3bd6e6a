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
	"github.com/robfig/cron/v3"

	getAvailableRoomsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_available_rooms"
	getBlockHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_block"
	getBlockRoomsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_block_rooms"
	getReservationHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_reservation"
	getReservationsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_reservations"
	listRoomsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/list_rooms"
	makeBlockHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/make_block"
	makeReservationHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/make_reservation"
	reserveBlockRoomHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/reserve_block_room"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelService/internal/config"
	journalRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/journal"
	occupancyJob "github.com/m04kA/SMC-HotelService/internal/jobs/occupancy"
	"github.com/m04kA/SMC-HotelService/internal/service/reservations"
	makeBlockUC "github.com/m04kA/SMC-HotelService/internal/usecase/make_block"
	"github.com/m04kA/SMC-HotelService/pkg/logger"
	"github.com/m04kA/SMC-HotelService/pkg/metrics"
	"github.com/m04kA/SMC-HotelService/pkg/txmanager"
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

	log.Info("Starting SMC-HotelService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		serviceMetrics   reservations.Metrics
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		serviceMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Журнал в PostgreSQL (если включён)
	var journal reservations.Journal
	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		journal = journalRepo.NewRepository(db, txmanager.NewTransactionManager(db))
	} else {
		log.Warn("Database disabled, reservations are kept in memory only")
	}

	// Инициализируем сервис бронирований
	manager := reservations.NewManager(
		reservations.Settings{
			MaxRooms:             cfg.Hotel.MaxRooms,
			NightlyRate:          cfg.Hotel.NightlyRate,
			BlockDiscountPercent: cfg.Hotel.BlockDiscount(),
		},
		journal,
		serviceMetrics,
		log,
	)
	log.Info("Reservation manager initialized (rooms=%d, nightly_rate=%d, block_discount=%d%%)",
		cfg.Hotel.MaxRooms, cfg.Hotel.NightlyRate, cfg.Hotel.BlockDiscount())

	if cfg.Database.Enabled {
		if err := manager.Restore(context.Background()); err != nil {
			log.Fatal("Failed to restore state from journal: %v", err)
		}
	}

	// Фоновые задачи
	scheduler := cron.New()
	if cfg.Metrics.Enabled && cfg.Jobs.OccupancySchedule != "" {
		job := occupancyJob.NewJob(manager, metricsCollector, log)
		if _, err := job.Schedule(scheduler, cfg.Jobs.OccupancySchedule); err != nil {
			log.Fatal("Failed to schedule occupancy job: %v", err)
		}
		log.Info("Occupancy job scheduled: %s", cfg.Jobs.OccupancySchedule)
	}
	scheduler.Start()

	// Инициализируем use cases
	makeBlockUseCase := makeBlockUC.NewUseCase(manager, log)

	// Инициализируем handlers
	listRooms := listRoomsHandler.NewHandler(manager, log)
	getAvailableRooms := getAvailableRoomsHandler.NewHandler(manager, log)
	makeReservation := makeReservationHandler.NewHandler(manager, log)
	getReservations := getReservationsHandler.NewHandler(manager, log)
	getReservation := getReservationHandler.NewHandler(manager, log)
	makeBlock := makeBlockHandler.NewHandler(makeBlockUseCase, log)
	getBlock := getBlockHandler.NewHandler(manager, log)
	getBlockRooms := getBlockRoomsHandler.NewHandler(manager, log)
	reserveBlockRoom := reserveBlockRoomHandler.NewHandler(manager, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Номера ---
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/available", getAvailableRooms.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/reservations", makeReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations", getReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// --- Блоки ---
	api.HandleFunc("/blocks", makeBlock.Handle).Methods(http.MethodPost)
	api.HandleFunc("/blocks/{blockId}", getBlock.Handle).Methods(http.MethodGet)
	api.HandleFunc("/blocks/{blockId}/rooms", getBlockRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/blocks/{blockId}/reservations", reserveBlockRoom.Handle).Methods(http.MethodPost)

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

	// Дожидаемся выполняющейся задачи
	<-scheduler.Stop().Done()
	log.Info("Scheduler stopped")

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

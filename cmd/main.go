package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/create_booking"
	getBookingsHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/get_bookings"
	getDeskStatusHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/get_desk_status"
	getFloorMapHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/get_floor_map"
	getFreeDeskCountsHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/get_free_desk_counts"
	getFreeDesksHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/get_free_desks"
	getRoomsHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/get_rooms"
	getUserBookingsHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/get_user_bookings"
	loginHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/logout"
	"github.com/m04kA/SMC-DeskBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-DeskBookingService/internal/config"
	storage "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/bookings"
	availabilityService "github.com/m04kA/SMC-DeskBookingService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-DeskBookingService/internal/service/bookings"
	floorMapsService "github.com/m04kA/SMC-DeskBookingService/internal/service/floormaps"
	"github.com/m04kA/SMC-DeskBookingService/internal/session"
	cancelBookingUC "github.com/m04kA/SMC-DeskBookingService/internal/usecase/cancel_booking"
	createBookingUC "github.com/m04kA/SMC-DeskBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-DeskBookingService/pkg/logger"
	"github.com/m04kA/SMC-DeskBookingService/pkg/metrics"
	"github.com/m04kA/SMC-DeskBookingService/pkg/storemetrics"
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

	log.Info("Starting SMC-DeskBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Строим каталог комнат
	catalog, err := cfg.Catalog()
	if err != nil {
		log.Fatal("Failed to build room catalog: %v", err)
	}
	log.Info("Room catalog loaded: %d rooms", len(catalog.Rooms()))

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище (с метриками или без)
	repository := storage.NewRepository(cfg.Storage.BookingsFile)

	var store storemetrics.BookingStore = repository
	if cfg.Metrics.Enabled {
		store = storemetrics.Wrap(repository, metricsCollector)
		log.Info("Storage metrics collection enabled")
	}

	// Загружаем файл бронирований. Нераспознанная схема не фатальна:
	// сервис деградирует до режима "только чтение" по этим данным.
	if err := store.Load(context.Background()); err != nil {
		if errors.Is(err, storage.ErrSchemaMismatch) {
			log.Warn("Bookings file has unrecognized schema, store is read-only: %v", err)
		} else {
			log.Fatal("Failed to load bookings file %s: %v", cfg.Storage.BookingsFile, err)
		}
	} else {
		log.Info("Bookings loaded from %s (%d records)", cfg.Storage.BookingsFile, store.Count())
	}

	// Менеджер сессий
	sessions := session.NewManager()

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(store, catalog, log)
	bookingsSvc := bookingsService.NewService(store, log)
	floorMapsSvc := floorMapsService.NewService(cfg.Storage.FloorMapsDir, catalog, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		store,
		availabilitySvc,
		catalog,
		cfg.Booking.HorizonDays,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(store, log)

	// Инициализируем handlers
	login := loginHandler.NewHandler(sessions, log)
	logout := logoutHandler.NewHandler(sessions, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getBookings := getBookingsHandler.NewHandler(bookingsSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingsSvc, log)
	getRooms := getRoomsHandler.NewHandler(catalog, floorMapsSvc, log)
	getFreeDesks := getFreeDesksHandler.NewHandler(availabilitySvc, log)
	getFreeDeskCounts := getFreeDeskCountsHandler.NewHandler(availabilitySvc, catalog, log)
	getDeskStatus := getDeskStatusHandler.NewHandler(availabilitySvc, log)
	getFloorMap := getFloorMapHandler.NewHandler(floorMapsSvc, log)

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

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Вход по имени
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Каталог комнат
	api.HandleFunc("/rooms", getRooms.Handle).Methods(http.MethodGet)

	// Свободные столы комнаты на дату
	api.HandleFunc("/rooms/{roomCode}/free-desks", getFreeDesks.Handle).Methods(http.MethodGet)

	// Сводка свободных столов по всем комнатам
	api.HandleFunc("/free-desk-counts", getFreeDeskCounts.Handle).Methods(http.MethodGet)

	// Занятость столов комнаты (для плана этажа)
	api.HandleFunc("/rooms/{roomCode}/desk-status", getDeskStatus.Handle).Methods(http.MethodGet)

	// Картинка плана этажа
	api.HandleFunc("/rooms/{roomCode}/floor-map", getFloorMap.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Session-Token)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(sessions))

	// Выход
	protected.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Отмена бронирования
	protected.HandleFunc("/bookings/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// Все бронирования
	protected.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)

	// Бронирования текущего пользователя
	protected.HandleFunc("/bookings/my", getUserBookings.Handle).Methods(http.MethodGet)

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

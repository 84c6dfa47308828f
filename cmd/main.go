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

	cancelBookingHandler "github.com/m04kA/PCM-SchedulingService/internal/api/handlers/cancel_booking"
	cancelClassHandler "github.com/m04kA/PCM-SchedulingService/internal/api/handlers/cancel_class"
	cancelMembershipHandler "github.com/m04kA/PCM-SchedulingService/internal/api/handlers/cancel_membership"
	createBookingHandler "github.com/m04kA/PCM-SchedulingService/internal/api/handlers/create_booking"
	createClassHandler "github.com/m04kA/PCM-SchedulingService/internal/api/handlers/create_class"
	createMembershipHandler "github.com/m04kA/PCM-SchedulingService/internal/api/handlers/create_membership"
	deleteBookingHandler "github.com/m04kA/PCM-SchedulingService/internal/api/handlers/delete_booking"
	enrollStudentsHandler "github.com/m04kA/PCM-SchedulingService/internal/api/handlers/enroll_students"
	getBookingHandler "github.com/m04kA/PCM-SchedulingService/internal/api/handlers/get_booking"
	getClassHandler "github.com/m04kA/PCM-SchedulingService/internal/api/handlers/get_class"
	getCourtsHandler "github.com/m04kA/PCM-SchedulingService/internal/api/handlers/get_courts"
	getDayScheduleHandler "github.com/m04kA/PCM-SchedulingService/internal/api/handlers/get_day_schedule"
	getMembershipHandler "github.com/m04kA/PCM-SchedulingService/internal/api/handlers/get_membership"
	getUserBookingsHandler "github.com/m04kA/PCM-SchedulingService/internal/api/handlers/get_user_bookings"
	getUserMembershipsHandler "github.com/m04kA/PCM-SchedulingService/internal/api/handlers/get_user_memberships"
	renewMembershipHandler "github.com/m04kA/PCM-SchedulingService/internal/api/handlers/renew_membership"
	resumeMembershipHandler "github.com/m04kA/PCM-SchedulingService/internal/api/handlers/resume_membership"
	suspendMembershipHandler "github.com/m04kA/PCM-SchedulingService/internal/api/handlers/suspend_membership"
	unenrollStudentHandler "github.com/m04kA/PCM-SchedulingService/internal/api/handlers/unenroll_student"
	updateBillingDateHandler "github.com/m04kA/PCM-SchedulingService/internal/api/handlers/update_billing_date"
	updateBookingStatusHandler "github.com/m04kA/PCM-SchedulingService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/PCM-SchedulingService/internal/api/middleware"
	"github.com/m04kA/PCM-SchedulingService/internal/config"
	scheduleCache "github.com/m04kA/PCM-SchedulingService/internal/infra/cache/schedule"
	bookingRepo "github.com/m04kA/PCM-SchedulingService/internal/infra/storage/booking"
	classRepo "github.com/m04kA/PCM-SchedulingService/internal/infra/storage/class"
	courtRepo "github.com/m04kA/PCM-SchedulingService/internal/infra/storage/court"
	membershipRepo "github.com/m04kA/PCM-SchedulingService/internal/infra/storage/membership"
	paymentServiceClient "github.com/m04kA/PCM-SchedulingService/internal/integrations/paymentservice"
	bookingsService "github.com/m04kA/PCM-SchedulingService/internal/service/bookings"
	classesService "github.com/m04kA/PCM-SchedulingService/internal/service/classes"
	courtsService "github.com/m04kA/PCM-SchedulingService/internal/service/courts"
	membershipsService "github.com/m04kA/PCM-SchedulingService/internal/service/memberships"
	createBookingUC "github.com/m04kA/PCM-SchedulingService/internal/usecase/create_booking"
	createClassUC "github.com/m04kA/PCM-SchedulingService/internal/usecase/create_class"
	enrollStudentsUC "github.com/m04kA/PCM-SchedulingService/internal/usecase/enroll_students"
	getDayScheduleUC "github.com/m04kA/PCM-SchedulingService/internal/usecase/get_day_schedule"
	"github.com/m04kA/PCM-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/PCM-SchedulingService/pkg/logger"
	"github.com/m04kA/PCM-SchedulingService/pkg/metrics"
	"github.com/m04kA/PCM-SchedulingService/pkg/simpletxmanager"
	"github.com/m04kA/PCM-SchedulingService/pkg/txmanager"
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

	log.Info("Starting PCM-SchedulingService...")
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

	// Подключаемся к Redis (кэш дневного расписания)
	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s, schedule TTL=%ds)",
		cfg.Redis.Addr, cfg.Redis.ScheduleTTLSeconds)

	dayCache := scheduleCache.NewCache(
		redisClient,
		time.Duration(cfg.Redis.ScheduleTTLSeconds)*time.Second,
	)

	// Инициализируем интеграционных клиентов
	paymentClient := paymentServiceClient.NewClient(
		cfg.PaymentService.URL,
		time.Duration(cfg.PaymentService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (PaymentService=%s timeout=%ds)",
		cfg.PaymentService.URL, cfg.PaymentService.Timeout)

	// Инициализируем репозитории и сервисы (с метриками или без)
	var (
		bookingRepository    *bookingRepo.Repository
		classRepository      *classRepo.Repository
		courtRepository      *courtRepo.Repository
		membershipRepository *membershipRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		classRepository = classRepo.NewRepository(wrappedDB)
		courtRepository = courtRepo.NewRepository(wrappedDB)
		membershipRepository = membershipRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		bookingRepository = bookingRepo.NewRepository(db)
		classRepository = classRepo.NewRepository(db)
		courtRepository = courtRepo.NewRepository(db)
		membershipRepository = membershipRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		dayCache,
		log,
	)
	classSvc := classesService.NewService(
		classRepository,
		dayCache,
		txMgr,
		log,
	)
	courtSvc := courtsService.NewService(courtRepository, log)
	membershipSvc := membershipsService.NewService(
		membershipRepository,
		paymentClient,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		classRepository,
		courtRepository,
		dayCache,
		txMgr,
		log,
	)
	createClassUseCase := createClassUC.NewUseCase(
		classRepository,
		bookingRepository,
		courtRepository,
		dayCache,
		txMgr,
		log,
	)
	enrollStudentsUseCase := enrollStudentsUC.NewUseCase(
		classRepository,
		dayCache,
		txMgr,
		log,
	)
	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(
		bookingRepository,
		classRepository,
		courtRepository,
		dayCache,
		log,
	)

	// Инициализируем handlers
	getCourts := getCourtsHandler.NewHandler(courtSvc, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(getDayScheduleUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	createClass := createClassHandler.NewHandler(createClassUseCase, log)
	getClass := getClassHandler.NewHandler(classSvc, log)
	cancelClass := cancelClassHandler.NewHandler(classSvc, log)
	enrollStudents := enrollStudentsHandler.NewHandler(enrollStudentsUseCase, log)
	unenrollStudent := unenrollStudentHandler.NewHandler(classSvc, log)
	createMembership := createMembershipHandler.NewHandler(membershipSvc, log)
	getMembership := getMembershipHandler.NewHandler(membershipSvc, log)
	getUserMemberships := getUserMembershipsHandler.NewHandler(membershipSvc, log)
	suspendMembership := suspendMembershipHandler.NewHandler(membershipSvc, log)
	resumeMembership := resumeMembershipHandler.NewHandler(membershipSvc, log)
	cancelMembership := cancelMembershipHandler.NewHandler(membershipSvc, log)
	renewMembership := renewMembershipHandler.NewHandler(membershipSvc, log)
	updateBillingDate := updateBillingDateHandler.NewHandler(membershipSvc, log)

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

	// Список активных кортов
	api.HandleFunc("/courts", getCourts.Handle).Methods(http.MethodGet)

	// Почасовая сетка занятости корта на день
	api.HandleFunc("/courts/{courtId}/schedule", getDaySchedule.Handle).Methods(http.MethodGet)

	// Карточка группового занятия со списком участников
	api.HandleFunc("/classes/{classId}", getClass.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// История бронирований пользователя
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Административные операции над бронированиями ---
	// Смена статуса бронирования
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Полное удаление бронирования
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Групповые занятия ---
	// Создание занятия
	protected.HandleFunc("/classes", createClass.Handle).Methods(http.MethodPost)

	// Отмена занятия
	protected.HandleFunc("/classes/{classId}/cancel", cancelClass.Handle).Methods(http.MethodPatch)

	// Пакетная запись участников
	protected.HandleFunc("/classes/{classId}/enrollments", enrollStudents.Handle).Methods(http.MethodPost)

	// Отписка участника
	protected.HandleFunc("/enrollments/{enrollmentId}", unenrollStudent.Handle).Methods(http.MethodDelete)

	// --- Абонементы ---
	// Оформление абонемента
	protected.HandleFunc("/memberships", createMembership.Handle).Methods(http.MethodPost)

	// Абонементы пользователя
	protected.HandleFunc("/memberships", getUserMemberships.Handle).Methods(http.MethodGet)

	// Абонемент по ID
	protected.HandleFunc("/memberships/{membershipId}", getMembership.Handle).Methods(http.MethodGet)

	// Жизненный цикл абонемента
	protected.HandleFunc("/memberships/{membershipId}/suspend", suspendMembership.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/memberships/{membershipId}/resume", resumeMembership.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/memberships/{membershipId}/cancel", cancelMembership.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/memberships/{membershipId}/renew", renewMembership.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/memberships/{membershipId}/billing-date", updateBillingDate.Handle).Methods(http.MethodPatch)

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

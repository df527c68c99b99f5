package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"beautycrave/config"
	"beautycrave/cron"
	"beautycrave/database"
	scheduleRepo "beautycrave/database/repository/schedule"
	"beautycrave/handlers"
	"beautycrave/models"
	"beautycrave/routes"
	"beautycrave/services/booking"
	"beautycrave/services/calendar"
	"beautycrave/services/notification"
	"beautycrave/services/scheduling"
	"beautycrave/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	zap.ReplaceGlobals(logger)

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()

	hours := scheduling.Hours{
		OpenMinute:  config.AppConfig.StudioOpenMinutes,
		CloseMinute: config.AppConfig.StudioCloseMinutes,
		SlotMinutes: config.AppConfig.SlotGranularityMinutes,
	}
	phoneRule := scheduling.PhoneRule{
		Prefix: config.AppConfig.PhoneCountryPrefix,
		Digits: config.AppConfig.PhoneNationalDigits,
	}

	// Calendar sink is optional; without credentials bookings simply skip it.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	var calendarSink calendar.Sink = calendar.NoopSink{}
	if sink, err := calendar.NewGoogleCalendarSink(rootCtx); err != nil {
		logger.Warn("main: calendar sink disabled", zap.Error(err))
	} else {
		calendarSink = sink
	}

	repo := scheduleRepo.NewMongoScheduleRepo(hours, phoneRule)

	bookingService := &booking.DefaultBookingService{
		Repo:      repo,
		Calendar:  calendarSink,
		Catalogue: models.DefaultCatalog,
		Hours:     hours,
		Phone:     phoneRule,
		WebDomain: config.AppConfig.WebDomain,
		Logger:    logger,
	}

	notificationService := &notification.DefaultNotificationService{
		FCM:          utils.FCMClient,
		DeviceTokens: config.AppConfig.OwnerDeviceTokens,
		Logger:       logger,
	}

	// Change feed watcher plus async worker: new bookings become owner
	// confirmations without the request path waiting on push delivery.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()

	watcher := &notification.Watcher{
		Repo:   repo,
		Queue:  queueClient,
		Logger: logger,
	}
	go watcher.Run(rootCtx)

	cron.InitConfirmationWorker(notificationService)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	handlerBundle := handlers.NewHandlerBundle(bookingService, utils.GetCacheClient())
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	rootCancel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

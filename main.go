package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctorsportal/config"
	"doctorsportal/cron"
	"doctorsportal/database"
	bookingRepoPkg "doctorsportal/database/repository/booking"
	doctorRepoPkg "doctorsportal/database/repository/doctor"
	serviceRepoPkg "doctorsportal/database/repository/service"
	userRepoPkg "doctorsportal/database/repository/user"
	"doctorsportal/handlers"
	"doctorsportal/middleware"
	"doctorsportal/routes"
	"doctorsportal/services/availability"
	"doctorsportal/services/booking"
	"doctorsportal/services/doctor"
	"doctorsportal/services/notification"
	"doctorsportal/services/tasks"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	svcRepo := serviceRepoPkg.NewMongoServiceRepo()
	bkRepo := bookingRepoPkg.NewMongoBookingRepo()
	usrRepo := userRepoPkg.NewMongoUserRepo()
	docRepo := doctorRepoPkg.NewMongoDoctorRepo()

	// confirmation email pipeline: asynq queue feeding a SendGrid sender.
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisQueueDB,
	}
	queueClient := asynq.NewClient(redisOpts)
	defer queueClient.Close()

	var sender notification.EmailSender
	if sg := notification.NewSendGridSender(notification.SendGridConfig{
		APIKey:    config.AppConfig.SendGridAPIKey,
		FromEmail: config.AppConfig.EmailSender,
		FromName:  config.AppConfig.EmailSenderName,
	}); sg != nil {
		sender = sg
	} else {
		logger.Sugar().Warn("main: no SendGrid API key configured, using stub email sender")
		sender = &notification.StubEmailSender{}
	}
	cron.InitEmailWorker(sender)

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		ServiceRepo: svcRepo,
		BookingRepo: bkRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:     bkRepo,
		Notifier: tasks.NewAsynqDispatcher(queueClient),
	}
	userService := &user.DefaultUserService{Repo: usrRepo}
	doctorService := &doctor.DefaultDoctorService{Repo: docRepo}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Availability: handlers.NewAvailabilityHandler(availabilityService, svcRepo),
		Booking:      handlers.NewBookingHandler(bookingService),
		User:         handlers.NewUserHandler(userService),
		Doctor:       handlers.NewDoctorHandler(doctorService),
		UserService:  userService,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background health checks for /health.
	healthRedis := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisQueueDB,
	})
	utils.StartHealthMonitor(healthRedis, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

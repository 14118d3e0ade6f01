// File: mindhaven/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mindhaven/config"
	"mindhaven/cron"
	"mindhaven/database"
	appointmentRepo "mindhaven/database/repository/appointment"
	therapistRepo "mindhaven/database/repository/therapist"
	userRepoPkg "mindhaven/database/repository/user"
	"mindhaven/handlers"
	"mindhaven/middleware"
	"mindhaven/routes"
	"mindhaven/services/availability"
	"mindhaven/services/booking"
	"mindhaven/services/notification"
	"mindhaven/services/session"
	"mindhaven/utils"

	"github.com/gin-gonic/gin"
)

// notificationServiceOrNil keeps an unconfigured email sender out of the
// interface value, so the booking engine's nil check stays meaningful.
func notificationServiceOrNil() notification.NotificationService {
	if svc := notification.NewBrevoService(); svc != nil {
		return svc
	}
	return nil
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	therapists := therapistRepo.NewMongoTherapistRepo()
	users := userRepoPkg.NewMongoUserRepo()
	appointments := appointmentRepo.NewMongoAppointmentRepo()

	cooldown := time.Duration(config.AppConfig.CooldownBufferMinutes) * time.Minute

	// services.
	ledgerService := &availability.DefaultLedgerService{
		Repo:   therapists,
		Buffer: cooldown,
	}

	notifier := notificationServiceOrNil()

	bookingService := &booking.DefaultBookingService{
		Therapists:   therapists,
		Users:        users,
		Appointments: appointments,
		Ledger:       ledgerService,
		Notifier:     notifier,
	}

	sessionService := &session.DefaultSessionService{
		Appointments: appointments,
		Therapists:   therapists,
		Users:        users,
		Ledger:       ledgerService,
	}

	// Reconciliation sweeper.
	sweeper := &cron.Sweeper{
		Appointments: appointments,
		Therapists:   therapists,
		Sessions:     sessionService,
		Buffer:       cooldown,
	}
	sweepInterval := time.Duration(config.AppConfig.SweepIntervalSeconds) * time.Second
	sweeperCron := cron.Start(sweeper, sweepInterval)
	defer sweeperCron.Stop()

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Booking:     handlers.NewBookingHandler(bookingService, logger),
		Session:     handlers.NewSessionHandler(sessionService, logger),
		Therapist:   handlers.NewTherapistHandler(therapists, ledgerService),
		Appointment: handlers.NewAppointmentHandler(appointments),
	}

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

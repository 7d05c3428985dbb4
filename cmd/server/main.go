package main // Entry point package

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-management/internal/config"
	"github.com/iliyamo/event-management/internal/database"
	"github.com/iliyamo/event-management/internal/handler"
	"github.com/iliyamo/event-management/internal/middleware"
	"github.com/iliyamo/event-management/internal/queue"
	"github.com/iliyamo/event-management/internal/repository"
	"github.com/iliyamo/event-management/internal/router"
	queue_publisher "github.com/iliyamo/event-management/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("schema: %v", err)
	}
	cancel()

	// Redis is optional; caching and rate limiting turn off when absent.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	events := repository.NewEventRepo(db)
	registrations := repository.NewRegistrationRepo(db)
	employees := repository.NewEmployeeRepo(db)
	assignments := repository.NewAssignmentRepo(db)
	feedback := repository.NewFeedbackRepo(db)
	notifications := repository.NewNotificationRepo(db)
	logins := repository.NewLoginRepo(db)

	// Background consumer mirrors confirmed registrations to a log file.
	go func() {
		if err := queue.StartRegistrationConsumer(); err != nil {
			log.Printf("registration consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.TokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e, router.Deps{
		JWTSecret: cfg.JWTSecret,
		AdminCheck: func(c echo.Context, userID uint64) (bool, error) {
			return users.IsAdmin(c.Request().Context(), userID)
		},
		Cache:         middleware.ResponseCache(config.LoadCacheConfig(), rdb),
		Auth:          handler.NewAuthHandler(cfg, users, logins),
		Events:        handler.NewEventHandler(events, users),
		Registrations: handler.NewRegistrationHandler(registrations, queue_publisher.PublishRegistrationConfirmed),
		Employees:     handler.NewEmployeeHandler(employees),
		Assignments:   handler.NewAssignmentHandler(assignments),
		Feedback:      handler.NewFeedbackHandler(feedback),
		Notifications: handler.NewNotificationHandler(notifications),
	})

	addr := ":" + cfg.Port
	go func() {
		log.Printf("listening on %s (env=%s)", addr, cfg.Env)
		if err := e.Start(addr); err != nil {
			log.Printf("server stopped: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/bridgeops/partnerflow/internal/audit"
	"github.com/bridgeops/partnerflow/internal/auth"
	"github.com/bridgeops/partnerflow/internal/config"
	"github.com/bridgeops/partnerflow/internal/email"
	"github.com/bridgeops/partnerflow/internal/handler"
	"github.com/bridgeops/partnerflow/internal/middleware"
	"github.com/bridgeops/partnerflow/internal/model"
	"github.com/bridgeops/partnerflow/internal/repository"
	_ "github.com/bridgeops/partnerflow/internal/serializer"
	"github.com/bridgeops/partnerflow/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(log)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	growthRepo := repository.NewGrowthRequestRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	activityLogRepo := repository.NewActivityLogRepository(db)
	planIntentRepo := repository.NewPlanIntentRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)

	// Initialize auth primitives
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Initialize email service. Email is optional; without an API key the
	// services fall back to in-app notifications only.
	var emailService *email.Service
	if cfg.Sendgrid.APIKey != "" {
		emailService, err = email.NewEmailService(cfg, email.ProviderSendgrid)
		if err != nil {
			return fmt.Errorf("initializing email service: %w", err)
		}
	} else {
		log.Warn("SENDGRID_API_KEY not set, email delivery disabled")
	}

	// Initialize services
	activityLogService := service.NewActivityLogService(activityLogRepo)
	var auditLogger audit.Logger = activityLogService

	notificationService := service.NewNotificationService(notificationRepo)
	authService := service.NewAuthService(userRepo, passwordHasher, tokenManager)
	onboardingService := service.NewOnboardingService(companyRepo, planIntentRepo)
	gateService := service.NewGateService(companyRepo, planIntentRepo)
	verificationService := service.NewVerificationService(companyRepo, userRepo, notificationService, auditLogger, emailService)
	growthService := service.NewGrowthService(growthRepo, companyRepo, userRepo, notificationService, auditLogger, emailService)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, companyRepo, notificationService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	onboardingHandler := handler.NewOnboardingHandler(onboardingService, verificationService, gateService)
	billingHandler := handler.NewBillingHandler(gateService, subscriptionService, cfg.Billing.WebhookSecret)
	growthHandler := handler.NewGrowthHandler(growthService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	adminHandler := handler.NewAdminHandler(verificationService, growthService)
	activityLogHandler := handler.NewActivityLogHandler(activityLogService)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(log))
	r.Use(recoveryMiddleware(log))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Webhook-Secret"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Route("/auth", func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))

			r.Post("/signup", authHandler.SignupHandler)
			r.Post("/login", authHandler.LoginHandler)
		})

		// Billing processor callback, authenticated by shared secret
		r.Post("/billing/webhook", billingHandler.WebhookHandler)

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(tokenManager))

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.ListHandler)
				r.Post("/{id}/read", notificationHandler.MarkReadHandler)
			})

			// Partner routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(string(model.RolePartner)))

				r.Route("/partner", func(r chi.Router) {
					r.Get("/route", onboardingHandler.RouteHandler)

					r.Route("/onboarding", func(r chi.Router) {
						r.Get("/status", onboardingHandler.StatusHandler)
						r.Post("/step-1", onboardingHandler.StepOneHandler)
						r.Post("/step-2", onboardingHandler.StepTwoHandler)
						r.Post("/step-3", onboardingHandler.StepThreeHandler)
						r.Post("/step-4", onboardingHandler.StepFourHandler)
					})

					r.Post("/verification", onboardingHandler.VerifyHandler)

					r.Route("/billing", func(r chi.Router) {
						r.Post("/plan", billingHandler.SelectPlanHandler)
						r.Get("/subscription", billingHandler.SubscriptionHandler)
					})

					r.Route("/growth", func(r chi.Router) {
						r.Get("/requests", growthHandler.ListHandler)
						r.Post("/requests", growthHandler.SubmitHandler)
					})
				})
			})

			// Admin routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(string(model.RoleAdmin)))

				r.Route("/admin", func(r chi.Router) {
					r.Get("/verification-queue", adminHandler.VerificationQueueHandler)
					r.Post("/companies/{id}/approve", adminHandler.ApproveHandler)
					r.Post("/companies/{id}/reject", adminHandler.RejectHandler)
					r.Delete("/companies/{id}", adminHandler.ResetProfileHandler)

					r.Get("/growth-requests", adminHandler.GrowthRequestsHandler)
					r.Patch("/growth-requests/{id}", adminHandler.GrowthStatusHandler)

					r.Get("/activity-log", activityLogHandler.GetActivityLog)
				})
			})
		})
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		log.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func loggingMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				log.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					err := errors.New("panic recovered")
					log.Error("panic recovered",
						"error", err,
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error":"error encountered"}`))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

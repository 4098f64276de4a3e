package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/moradahub/backend-resident/internal/clock"
	"github.com/moradahub/backend-resident/internal/config"
	"github.com/moradahub/backend-resident/internal/handler"
	"github.com/moradahub/backend-resident/internal/logger"
	"github.com/moradahub/backend-resident/internal/repository"
	"github.com/moradahub/backend-resident/internal/service"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logCfg := &logger.Config{
		Level:       cfg.App.LogLevel,
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	}
	if err := logger.Init(logCfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	appLog := logger.Get()
	appLog.Info("Starting resident backend", zap.String("addr", cfg.Server.Addr()))

	clk := clock.NewSystem()
	now := clk.Now()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		appLog.Fatal("Failed to hash demo password", zap.Error(err))
	}

	// In-memory stores seeded with the demo session data.
	environmentRepo := repository.NewMemoryEnvironmentRepository(repository.SeedEnvironments())
	reservationRepo := repository.NewMemoryReservationRepository(clk)
	residentRepo := repository.NewMemoryResidentRepository(repository.SeedResidents(string(passwordHash), now), clk)
	announcementRepo := repository.NewMemoryAnnouncementRepository(repository.SeedAnnouncements(now))
	parcelRepo := repository.NewMemoryParcelRepository(repository.SeedParcels(now), clk)
	issueRepo := repository.NewMemoryIssueRepository(clk)

	notifier := service.NewLogNotifier(appLog)

	authService := service.NewAuthService(residentRepo, &service.AuthServiceConfig{
		JWTSecret:      cfg.JWT.Secret,
		AccessTokenTTL: cfg.JWT.AccessTokenTTL,
		Issuer:         cfg.JWT.Issuer,
	}, clk)
	reservationService := service.NewReservationService(reservationRepo, environmentRepo, notifier, clk)
	announcementService := service.NewAnnouncementService(announcementRepo)
	parcelService := service.NewParcelService(parcelRepo)
	issueService := service.NewIssueService(issueRepo, notifier, clk)
	profileService := service.NewProfileService(residentRepo)

	router := handler.NewRouter(&handler.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Reservation:  handler.NewReservationHandler(reservationService),
		Announcement: handler.NewAnnouncementHandler(announcementService),
		Parcel:       handler.NewParcelHandler(parcelService),
		Issue:        handler.NewIssueHandler(issueService),
		Profile:      handler.NewProfileHandler(profileService),
		AuthService:  authService,
		Log:          appLog,
	}, cfg.App.Debug)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		appLog.Info("HTTP listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	appLog.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLog.Error("Forced shutdown", zap.Error(err))
	}
}

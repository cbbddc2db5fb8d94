package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/devsolutions/backend/internal/clock"
	"github.com/devsolutions/backend/internal/config"
	"github.com/devsolutions/backend/internal/handler"
	"github.com/devsolutions/backend/internal/logging"
	"github.com/devsolutions/backend/internal/migrations"
	"github.com/devsolutions/backend/internal/repository"
	"github.com/devsolutions/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("info", "json")
		logging.Fatal("invalid configuration", "error", err)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	if cfg.MigrateOnStart {
		if err := migrate(cfg.DatabaseURL); err != nil {
			logging.Fatal("migration failed", "error", err)
		}
	}

	db, err := repository.Open(context.Background(), cfg.DatabaseURL, cfg.DBMaxOpenConns)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer db.Close()

	clk := clock.System{}
	contactRepo := repository.NewPgContactRepository(db, clk)
	newsletterRepo := repository.NewPgNewsletterRepository(db, clk)
	inquiryRepo := repository.NewPgInquiryRepository(db, clk)
	portfolioRepo := repository.NewPgPortfolioRepository(db, clk)
	testimonialRepo := repository.NewPgTestimonialRepository(db, clk)

	contactService := service.NewContactService(contactRepo)
	newsletterService := service.NewNewsletterService(newsletterRepo)
	inquiryService := service.NewInquiryService(inquiryRepo)
	portfolioService := service.NewPortfolioService(portfolioRepo)
	testimonialService := service.NewTestimonialService(testimonialRepo)
	statsService := service.NewStatsService(service.StatsRepositories{
		Contacts:     contactRepo,
		Newsletter:   newsletterRepo,
		Inquiries:    inquiryRepo,
		Portfolio:    portfolioRepo,
		Testimonials: testimonialRepo,
	})

	router := handler.NewRouter(handler.RouterConfig{
		APIPrefix:          cfg.APIPrefix,
		AllowedOrigins:     cfg.CORSAllowedOrigins,
		AllowAllOrigins:    cfg.AllowAllOrigins(),
		RateLimitPerMinute: cfg.RateLimitPerMinute,
	}, handler.Handlers{
		Health:      handler.NewHealthHandler(db),
		Contact:     handler.NewContactHandler(contactService),
		Newsletter:  handler.NewNewsletterHandler(newsletterService),
		Inquiry:     handler.NewInquiryHandler(inquiryService),
		Portfolio:   handler.NewPortfolioHandler(portfolioService),
		Testimonial: handler.NewTestimonialHandler(testimonialService),
		Stats:       handler.NewStatsHandler(statsService),
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "api_prefix", cfg.APIPrefix, "debug", cfg.Debug)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	slog.Info("server stopped")
}

// migrate は起動時にスキーマを最新化する
func migrate(databaseURL string) error {
	m, err := migrations.New(databaseURL)
	if err != nil {
		return err
	}
	upErr := m.Up()
	return errors.Join(upErr, m.Close())
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/biztime-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/biztime-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/biztime-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/biztime-backend-go/internal/repository/postgresql"
	serviceCompany "github.com/cmlabs-hris/biztime-backend-go/internal/service/company"
	serviceInvoice "github.com/cmlabs-hris/biztime-backend-go/internal/service/invoice"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := appHTTP.NewLogger(os.Stdout, cfg.SlogLevel(), cfg.App.Env)
	slog.SetDefault(logger)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.Options{
		MaxConns:   cfg.Database.MaxConns,
		MinConns:   cfg.Database.MinConns,
		LogQueries: cfg.SlogLevel() == slog.LevelDebug,
	})
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	companyRepo := postgresql.NewCompanyRepository(db.Pool)
	invoiceRepo := postgresql.NewInvoiceRepository(db.Pool)

	companyService := serviceCompany.NewCompanyService(companyRepo)
	invoiceService := serviceInvoice.NewInvoiceService(invoiceRepo, companyRepo)

	companyHandler := appHTTP.NewCompanyHandler(companyService)
	invoiceHandler := appHTTP.NewInvoiceHandler(invoiceService)
	healthHandler := appHTTP.NewHealthHandler(db)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Logger:         logger,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		},
		companyHandler,
		invoiceHandler,
		healthHandler,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server running", "addr", "http://localhost"+server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
}

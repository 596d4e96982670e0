package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/application/interfaces"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/application/services"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/config"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/delivery/handler"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/infrastructure"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/infrastructure/db/gormdb"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/infrastructure/messaging"
)

func main() {
	log.SetPrefix("[TODO] ")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("❌ Server stopped: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	db, err := gormdb.Open(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if err := gormdb.Close(db); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()
	log.Printf("✅ Connected to %s database.", cfg.DBDriver)

	if err := gormdb.AutoMigrate(db); err != nil {
		return err
	}

	tokens, err := infrastructure.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	if err != nil {
		return err
	}

	var publisher interfaces.TodoEventPublisher
	if cfg.NatsURL != "" {
		nc, err := messaging.ConnectNats(cfg.NatsURL)
		if err != nil {
			return err
		}
		natsPublisher := messaging.NewNatsPublisher(nc)
		defer natsPublisher.Close()
		publisher = natsPublisher
	}

	userRepo := gormdb.NewUserRepository(db)
	todoRepo := gormdb.NewTodoRepository(db)

	h := handler.NewHandler(
		services.NewAuthService(userRepo, infrastructure.NewBcryptHasher(cfg.BcryptCost), tokens),
		services.NewTodoService(todoRepo, userRepo, publisher),
		tokens,
	)

	trustedProxies, err := cfg.TrustedProxyRanges()
	if err != nil {
		return err
	}
	opts := handler.RouterOptions{AllowedOrigins: cfg.CORSAllowedOrigins, TrustedProxies: trustedProxies}
	if cfg.RateLimitEnabled() {
		opts.AuthLimiter = infrastructure.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, 10*time.Minute)
	}
	e := handler.NewRouter(h, opts)

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("🚀 Server running on %s", cfg.HTTPAddr)
		serveErr <- e.Start(cfg.HTTPAddr)
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"robux-storefront/internal/cart"
	"robux-storefront/internal/checkout"
	"robux-storefront/internal/config"
	"robux-storefront/internal/db"
	"robux-storefront/internal/gate"
	"robux-storefront/internal/httpserver"
	cartrepo "robux-storefront/internal/repository/cart"
	contactrepo "robux-storefront/internal/repository/contact"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	var pool *pgxpool.Pool
	var cartRepo cartrepo.Repository
	var contactRepo contactrepo.Repository
	if cfg.DBConnString != "" {
		var err error
		pool, err = db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatalf("connect to db: %v", err)
		}
		defer pool.Close()
		cartRepo = cartrepo.NewPostgres(pool)
		contactRepo = contactrepo.NewPostgres(pool)
	} else {
		logger.Printf("no DB_DSN configured, using in-memory persistence")
		cartRepo = cartrepo.NewMemory()
		contactRepo = contactrepo.NewMemory()
	}

	carts := cart.NewRegistry(cartRepo, logger)
	gateway := checkout.NewBreakerGateway(checkout.NewSimulatedGateway(cfg.ProcessingDelay))
	checkoutSvc := checkout.NewService(carts, contactRepo, gateway, checkout.Config{
		ProcessingDelay: cfg.ProcessingDelay,
		QRPayHost:       cfg.QRPayHost,
	}, logger)
	accessGate := gate.New(cfg.GatePassword, 3, cfg.GateLockout)
	tokens := gate.NewTokenIssuer(cfg.GateTokenSecret, 0)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, pool, httpserver.Deps{
		Carts:       carts,
		Checkout:    checkoutSvc,
		Gate:        accessGate,
		Tokens:      tokens,
		CORSOrigins: cfg.CORSOrigins,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

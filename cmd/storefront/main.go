package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"storefront/internal/adapter/api"
	adapthttp "storefront/internal/adapter/http"
	"storefront/internal/adapter/memory"
	"storefront/internal/adapter/postgres"
	"storefront/internal/adapter/redis"
	"storefront/internal/adapter/seal"
	"storefront/internal/app"
	"storefront/internal/config"
	"storefront/internal/domain"
)

const purgeInterval = time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config")
	}
	log := cfg.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, closeStorage, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("storage open")
	}
	defer closeStorage()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	reg.MustRegister(api.Collectors()...)

	client := api.New(api.Config{BaseURL: cfg.APIBaseURL, Timeout: cfg.APITimeout})
	catalog := app.NewCatalogService(client)
	accounts := app.NewAccountService(client, memory.NewOrders())

	h := adapthttp.New(catalog, accounts, client, storage, adapthttp.Config{
		APIBaseURL:      cfg.APIBaseURL,
		SessionCapacity: cfg.SessionCapacity,
		SessionTTL:      cfg.SessionTTL,
		SecureCookies:   cfg.SecureCookies,
		RateLimit:       rate.Limit(cfg.RateLimit),
		RateBurst:       cfg.RateBurst,
		Logger:          log,
		Registry:        reg,
	}).Handler()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("shutdown")
		}
	}()

	log.WithFields(logrus.Fields{
		"addr":    cfg.Addr,
		"api":     cfg.APIBaseURL,
		"storage": cfg.StorageBackend,
	}).Info("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Fatal("serve")
	}
}

// openStorage opens the configured token store. The returned func releases
// it.
func openStorage(ctx context.Context, cfg config.Config, log *logrus.Logger) (domain.StorageRepository, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		box, err := seal.New(cfg.TokenSealKey)
		if err != nil {
			return nil, nil, err
		}
		db, err := postgres.Open(cfg.DatabaseURL, box)
		if err != nil {
			return nil, nil, err
		}
		go purge(ctx, db, cfg.StorageRetention, log)
		return db, func() { _ = db.Close() }, nil

	case config.BackendRedis:
		box, err := seal.New(cfg.TokenSealKey)
		if err != nil {
			return nil, nil, err
		}
		store, err := redis.Open(cfg.RedisURL, box, cfg.StorageRetention)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil

	default:
		log.Warn("memory storage: logins do not survive a restart")
		return memory.New(), func() {}, nil
	}
}

// purge removes stored values untouched for longer than retention.
func purge(ctx context.Context, db *postgres.DB, retention time.Duration, log *logrus.Logger) {
	if retention <= 0 {
		return
	}
	t := time.NewTicker(purgeInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := db.DeleteOlderThan(ctx, time.Now().Add(-retention))
			if err != nil {
				log.WithError(err).Warn("purge stored values")
				continue
			}
			if n > 0 {
				log.WithField("rows", n).Info("purged stored values")
			}
		}
	}
}

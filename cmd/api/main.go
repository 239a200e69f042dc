package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/samandr77/microservices/attendance/internal/api"
	"github.com/samandr77/microservices/attendance/internal/clients/identity"
	"github.com/samandr77/microservices/attendance/internal/repository"
	"github.com/samandr77/microservices/attendance/internal/service"
	"github.com/samandr77/microservices/attendance/pkg/broker"
	"github.com/samandr77/microservices/attendance/pkg/config"
	"github.com/samandr77/microservices/attendance/pkg/job"
	"github.com/samandr77/microservices/attendance/pkg/logger"
	"github.com/samandr77/microservices/attendance/pkg/metrics"
	"github.com/samandr77/microservices/attendance/pkg/postgres"
)

const (
	readTimeout       = 5 * time.Second
	readHeaderTimeout = time.Second
	writeTimeout      = 15 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l := logger.New(logger.ParseLevel(cfg.LogLevel))
	slog.SetDefault(l)

	err = postgres.UpMigrations(ctx, cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	pool, err := postgres.ConnectToPostgres(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	repo := repository.New(pool)

	var directory service.IdentityProvider

	if cfg.Identity.ServiceURL != "" {
		directory = service.NewRemoteDirectory(identity.NewClient(cfg.Identity), repo)
		l.Info("using remote identity service", "url", cfg.Identity.ServiceURL)
	} else {
		local, err := service.NewLocalDirectory(repo, cfg.PasswordHashCost)
		panicOnErr("create local directory", err)

		directory = local
	}

	producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.NotificationTopic)
	defer producer.Close()

	m := metrics.New()

	s := service.NewService(cfg, repo, directory, producer, m)

	if cfg.SeedDemoAccounts {
		err = s.SeedDemoAccounts(ctx)
		panicOnErr("seed demo accounts", err)
	}

	jobs := job.NewService(l).
		RegisterJob("clean expired sessions", cfg.Session.CleanupInterval, s.CleanExpiredSessions).
		RegisterJob("clean old login attempts", cfg.Session.AttemptCleanEvery, s.CleanOldAttempts)
	jobs.Start(ctx)

	h := api.NewHandler(s)
	proxies, err := cfg.HTTP.TrustedPrefixes()
	panicOnErr("trusted proxies", err)

	mw := api.NewMiddleware(s, m, cfg.RateLimit.PerSecond, cfg.RateLimit.Burst, proxies)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           api.NewRouter(h, mw, m.Registry),
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	l.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	l.InfoContext(ctx, "got OS signal", "signal", sig.String())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		l.ErrorContext(ctx, "server shutdown", "error", err)
	}

	cancel()
	jobs.Stop()
	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}

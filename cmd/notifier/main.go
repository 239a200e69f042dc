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
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/samandr77/microservices/attendance/internal/api/events"
	"github.com/samandr77/microservices/attendance/internal/clients/mailer"
	"github.com/samandr77/microservices/attendance/pkg/broker"
	"github.com/samandr77/microservices/attendance/pkg/config"
	"github.com/samandr77/microservices/attendance/pkg/logger"
	"github.com/samandr77/microservices/attendance/pkg/metrics"
)

const (
	readTimeout       = 3 * time.Second
	readHeaderTimeout = time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.NewNotifier(".env")
	panicOnErr("create config", err)

	l := logger.New(logger.ParseLevel(cfg.LogLevel))
	slog.SetDefault(l)

	m := metrics.New()
	eventHandler := events.NewEventHandler(mailer.New(cfg.Mailer), m)

	consumer := broker.NewConsumer(l, cfg.Kafka.Brokers, cfg.Kafka.ConsumerID, []string{cfg.Kafka.NotificationTopic}).
		Handle(cfg.Kafka.NotificationTopic, eventHandler.SendNotification).
		Consume(ctx)

	router := chi.NewRouter()
	router.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("OK\n"))
	})
	router.Handle("/api/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           router,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panic(err)
		}
	}()

	l.Info("notifier started", "port", cfg.HTTP.Port, "topic", cfg.Kafka.NotificationTopic)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT)
	sig := <-ch

	l.Info("got OS signal", "signal", sig.String())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		l.Error("shutdown", "error", err)
	}

	cancel()
	consumer.Close()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant-ordering/config"
	httpapi "restaurant-ordering/notify-svc/internal/api/http"
	"restaurant-ordering/notify-svc/internal/service"
	"restaurant-ordering/notify-svc/internal/storage"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	ordersTopic   = "orders"
	consumerGroup = "notify-svc-consumer"
)

type app struct {
	handler  http.Handler
	consumer *service.Consumer
}

// buildApp wires storage, services and routes. reader may be nil when
// only the HTTP side is needed.
func buildApp(rdb *redis.Client, reader service.MessageReader, secret string, retention time.Duration, log *logrus.Entry) app {
	notifications := storage.NewRedisNotificationStore(rdb, retention)
	popularity := storage.NewRedisPopularityStore(rdb)
	hub := httpapi.NewHub(log)

	handler := &httpapi.Handler{
		Verifier:      service.NewTokenVerifier(secret, storage.RedisRevocations{Client: rdb}),
		Notifications: service.NewNotificationService(notifications),
		Analytics:     service.NewAnalyticsService(popularity),
		Hub:           hub,
		Log:           log,
	}

	return app{
		handler:  httpapi.NewRouter(handler),
		consumer: service.NewConsumer(reader, notifications, popularity, hub, log),
	}
}

func main() {
	config.LoadEnv()
	log := config.NewLogger("notify-svc")

	rdb := config.MustInitRedis(log)
	defer rdb.Close()

	reader := config.NewKafkaReader(ordersTopic, consumerGroup)
	defer reader.Close()

	a := buildApp(rdb, reader,
		config.JWTSecret(log),
		config.GetenvDuration("NOTIFICATION_RETENTION", 30*24*time.Hour),
		log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go a.consumer.Start(ctx)

	srv := httpapi.NewServer(":"+config.Getenv("PORT", "8082"), a.handler)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.WithField("addr", srv.Addr).Info("notification service starting")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server stopped")
	}
}

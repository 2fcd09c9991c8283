package main

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"restaurant-ordering/config"
	httpapi "restaurant-ordering/order-svc/internal/api/http"
	"restaurant-ordering/order-svc/internal/service"
	"restaurant-ordering/order-svc/internal/storage"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const ordersTopic = "orders"

type settings struct {
	JWTSecret  string
	SessionTTL time.Duration
	BaseURL    string
	UploadDir  string
}

func loadSettings(log *logrus.Entry) settings {
	return settings{
		JWTSecret:  config.JWTSecret(log),
		SessionTTL: config.GetenvDuration("SESSION_TTL", 12*time.Hour),
		BaseURL:    config.Getenv("PUBLIC_BASE_URL", "http://localhost:8080"),
		UploadDir:  config.Getenv("UPLOAD_DIR", "./uploads"),
	}
}

// buildHandler wires storage, services and routes together.
func buildHandler(db *sql.DB, rdb *redis.Client, publisher service.OrderPublisher, cfg settings, log *logrus.Entry) http.Handler {
	documents := storage.NewPostgresDocuments(db)
	carts := storage.NewRedisCartStore(rdb, cfg.SessionTTL)
	sessions := storage.NewRedisSessionStore(rdb)
	tokens := service.NewTokenIssuer(cfg.JWTSecret, cfg.SessionTTL)

	menu := service.NewMenuService(documents)
	gateway := service.NewOrderGateway(documents, publisher, log)

	handler := &httpapi.Handler{
		Auth:      service.NewAuthService(documents, sessions, carts, tokens, log),
		Menu:      menu,
		Carts:     service.NewCartService(carts, menu),
		Checkout:  service.NewCheckoutService(carts, gateway, log),
		Orders:    service.NewOrderService(documents, service.DefaultQRGenerator{BaseURL: cfg.BaseURL}, log),
		Tables:    service.NewTableService(documents, log),
		UploadDir: cfg.UploadDir,
		Log:       log,
	}
	return httpapi.NewRouter(handler)
}

func main() {
	config.LoadEnv()
	log := config.NewLogger("order-svc")
	cfg := loadSettings(log)

	db := config.MustInitPostgres(log)
	defer db.Close()

	if err := storage.NewPostgresDocuments(db).EnsureSchema(context.Background()); err != nil {
		log.WithError(err).Fatal("failed to prepare schema")
	}

	rdb := config.MustInitRedis(log)
	defer rdb.Close()

	writer := config.NewKafkaWriter(ordersTopic)
	defer writer.Close()

	handler := buildHandler(db, rdb, storage.NewKafkaPublisher(writer), cfg, log)
	httpapi.StartServer(":"+config.Getenv("PORT", "8081"), handler, log)
}

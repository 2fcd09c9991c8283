package main

import (
	"net/http"
	"time"

	"restaurant-ordering/api-gateway/internal/gateway"
	"restaurant-ordering/config"

	"github.com/rs/cors"
)

func loadConfig() gateway.Config {
	return gateway.Config{
		OrderSvcURL:  config.Getenv("ORDER_SVC_URL", "http://localhost:8081"),
		NotifySvcURL: config.Getenv("NOTIFY_SVC_URL", "http://localhost:8082"),
		FrontendDir:  config.Getenv("FRONTEND_DIR", "./frontend"),
	}
}

func newHandler(gw *gateway.Gateway) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})
	return c.Handler(gw.SetupRoutes())
}

func main() {
	config.LoadEnv()
	log := config.NewLogger("api-gateway")

	gw := gateway.NewGateway(loadConfig(), &http.Client{Timeout: 30 * time.Second}, log)

	addr := ":" + config.Getenv("PORT", "8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           newHandler(gw),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.WithField("addr", addr).Info("api gateway starting")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server stopped")
	}
}

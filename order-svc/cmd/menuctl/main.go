package main

import (
	"context"
	"fmt"
	"os"

	"restaurant-ordering/config"
	"restaurant-ordering/order-svc/internal/cli"
	"restaurant-ordering/order-svc/internal/service"
	"restaurant-ordering/order-svc/internal/storage"
)

func connect(ctx context.Context) (*cli.Services, func(), error) {
	config.LoadEnv()
	log := config.NewLogger("menuctl")

	db := config.MustInitPostgres(log)
	documents := storage.NewPostgresDocuments(db)
	if err := documents.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}

	menu := service.NewMenuService(documents)
	services := &cli.Services{
		Menu:   menu,
		Tables: service.NewTableService(documents, log),
		Orders: service.NewOrderService(documents, service.DefaultQRGenerator{}, log),
		// role changes only touch the document store
		Users: service.NewAuthService(documents, nil, nil, nil, log),
	}
	return services, func() { db.Close() }, nil
}

func main() {
	if err := cli.NewRootCommand(connect).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

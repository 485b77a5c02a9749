package main

import (
	"context"
	"log"

	"velomart-backend/config"
	"velomart-backend/controllers"
	"velomart-backend/gateway"
	"velomart-backend/routes"
	"velomart-backend/store"
)

func main() {
	cfg := config.Load()

	client, err := config.ConnectDB(cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.DBName)

	if err := store.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatal(err)
	}

	ctrl := &controllers.Controller{
		DB:         db,
		Categories: store.NewCategoryStore(db),
		Products:   store.NewProductStore(db),
		Orders:     store.NewOrderStore(db),
		Users:      store.NewUserStore(db),
		Gateway: gateway.NewBraintree(
			cfg.BraintreeEnv,
			cfg.BraintreeMerchantID,
			cfg.BraintreePublicKey,
			cfg.BraintreePrivateKey,
		),
		PasetoSecretKey: cfg.PasetoSecretKey,
	}

	r := routes.Setup(ctrl, cfg.Env)

	log.Printf("Server listening on port %s", cfg.Port)
	log.Fatal(r.Run(":" + cfg.Port))
}

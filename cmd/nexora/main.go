package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/mehboobrazakhan78692-cmyk/nexora/internal/app"
	"github.com/mehboobrazakhan78692-cmyk/nexora/internal/config"
)

func main() {
	// Missing .env is fine in containerized deployments.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}

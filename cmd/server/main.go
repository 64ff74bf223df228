package main

import (
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/MuziSitsha/live-mood/internal/config"
	"github.com/MuziSitsha/live-mood/internal/gateway"
	"github.com/MuziSitsha/live-mood/internal/inference"
)

func main() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using process environment")
	}

	cfg := config.Load()

	if cfg.APIKey != "" {
		log.Info("Hugging Face API key detected")
	} else {
		log.Warn("HUGGING_FACE_API_KEY not set - API calls will fail")
	}

	client := inference.NewClient(inference.Config{
		Endpoint:       cfg.Endpoint,
		APIKey:         cfg.APIKey,
		PrimaryModel:   cfg.PrimaryModel,
		FallbackModels: cfg.FallbackModels,
		Timeout:        cfg.CallTimeout,
	})

	log.WithFields(log.Fields{
		"models":   client.Candidates(),
		"endpoint": cfg.Endpoint,
		"event":    "startup",
	}).Info("Candidate models configured")

	handler := gateway.NewHandler(client, cfg.Debug)
	router := gateway.NewRouter(handler, cfg.AllowedOrigins)

	log.Infof("live-mood server starting on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}

package main

import (
	"log"

	"cooksync/configs"
	"cooksync/routes"
	"cooksync/services"
	"cooksync/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	configs.SetupDatabase()
	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedMeals(); err != nil {
		log.Fatalf("seed meals failed: %v", err)
	}

	// Redis (like markers + list cache)
	configs.ConnectionRedis(cfg)

	// Image host
	uploader, err := utils.NewS3Uploader(cfg.S3Region, cfg.S3Bucket, cfg.CDNBaseURL)
	if err != nil {
		log.Fatalf("init image host failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, configs.DB(), configs.Redis(), cfg, services.NewStripeCharger(cfg.StripeSecretKey), uploader)

	log.Println("listening on :" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

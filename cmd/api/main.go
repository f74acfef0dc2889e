package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Stella2211/tanstack-start-todo/internal/config"
	"github.com/Stella2211/tanstack-start-todo/internal/database"
	"github.com/Stella2211/tanstack-start-todo/internal/routes"
)

func main() {
	// .env があれば読み込む (無くてもエラーにしない)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Fatal: Failed to load config: %v", err)
	}

	db := database.InitDB(cfg)
	defer db.Close()

	r := routes.SetupRouter(db, cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server listening on port %d...", cfg.Server.Port)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

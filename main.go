package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"screentime/adapters/tabular"
	"screentime/app"
	"screentime/internal/config"
	"screentime/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(appConfig.Server.GinMode)

	reader := tabular.NewDataReader(appConfig.Data.File)
	datasets := app.NewDatasetService(reader)
	dashboard := app.NewDashboardService(datasets)

	// Warm the dataset cache. A missing file is fatal to the request
	// pipeline, not to the process; the server still starts and surfaces
	// the notice until the file shows up.
	if _, err := datasets.Load(context.Background()); err != nil {
		log.Printf("[Main] dataset not ready: %v", err)
	}

	server, err := ui.NewServer(dashboard)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	log.Printf("[Main] starting screen-time dashboard on port %s (data file: %s)", appConfig.Server.Port, appConfig.Data.File)
	log.Fatal(server.Start(":" + appConfig.Server.Port))
}

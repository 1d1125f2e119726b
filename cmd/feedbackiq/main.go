package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/vportella/feedbackiq/internal/app"
	"github.com/vportella/feedbackiq/internal/scheduler"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded configuration from .env")
	}

	application, err := app.New()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer application.Store.Close()

	application.LogStartupInfo()

	scheduler.Start(application.Config.AnalyzeSchedule, application.Processor)

	if err := application.Server.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

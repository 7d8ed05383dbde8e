package main

import (
	"log"
	"os"

	"github.com/arysespajayadii/dsc-backend-repo/config"
	"github.com/arysespajayadii/dsc-backend-repo/services"
	"github.com/arysespajayadii/dsc-backend-repo/worker"
)

func main() {
	config.InitDB()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push service disabled: %v", err)
		push = nil
	}

	stopScheduler, err := worker.StartScheduler(redisURL)
	if err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer stopScheduler()

	if err := worker.Run(redisURL, config.DB, push); err != nil {
		log.Fatalf("worker exited: %v", err)
	}
}

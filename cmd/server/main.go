package main

import (
	"log"
	"os"

	"github.com/arysespajayadii/dsc-backend-repo/config"
	"github.com/arysespajayadii/dsc-backend-repo/routes"
	"github.com/arysespajayadii/dsc-backend-repo/utils"
	"github.com/arysespajayadii/dsc-backend-repo/worker"
)

func main() {
	config.InitDB()
	config.SeedDefaults()
	utils.InitS3()

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		if err := worker.InitClient(redisURL); err != nil {
			log.Printf("asynq client disabled: %v", err)
		} else {
			defer worker.CloseClient()
		}
	}

	r := routes.SetupRouter()
	r.Run(":8080")
}

package main

import (
	"log"
	"os"

	"github.com/abeercodezyra-ops/Nutrivision-AI/config"
	"github.com/abeercodezyra-ops/Nutrivision-AI/routes"
	"github.com/abeercodezyra-ops/Nutrivision-AI/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/savoria/restaurant-backend/config"
	"github.com/savoria/restaurant-backend/database"
	"github.com/savoria/restaurant-backend/router"
	"github.com/savoria/restaurant-backend/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	utils.InitLogger()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open store: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate store: %v", err)
	}
	if err := database.Seed(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed store: %v", err)
	}

	r := router.SetupRouter(db)

	port := config.Port()
	utils.InfoLogger.Printf("Savoria Restaurant backend running on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

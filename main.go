package main

import (
	"log"

	"github.com/dlw1rma/rauvfilm-sub002/config"
	"github.com/dlw1rma/rauvfilm-sub002/controllers"
	"github.com/dlw1rma/rauvfilm-sub002/routes"
	"github.com/dlw1rma/rauvfilm-sub002/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Discount policy is loaded once and shared read-only
	config.Policy = config.LoadDiscountPolicy()

	// Customer name/phone sealing
	if err := utils.InitFieldCipher(cfg.FieldKey); err != nil {
		utils.LogError("Error initializing field cipher: %v", err)
		log.Fatal("Error initializing field cipher:", err)
	}

	// Initialize database
	config.InitDB()

	// Ensure the ops admin record exists
	if err := controllers.CreateSampleAdmin(); err != nil {
		utils.LogError("Failed to create sample admin: %v", err)
		log.Fatal("Failed to create sample admin:", err)
	}

	// Set up router with the middleware chain
	router := routes.SetupRouter()

	port := cfg.Port
	if port == "" {
		port = utils.DefaultPort
	}

	utils.LogInfo("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}

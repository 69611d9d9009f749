package routes

import (
	"github.com/dlw1rma/rauvfilm-sub002/utils"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures middleware and all routes for the application.
// The middleware chain must attach before any route registration.
func SetupRouter() *gin.Engine {
	router := gin.New()

	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	RegisterPublicRoutes(router)
	RegisterAdminRoutes(router)

	return router
}

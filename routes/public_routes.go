package routes

import (
	"github.com/dlw1rma/rauvfilm-sub002/controllers"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes wires the customer-facing endpoints: the inquiry
// form, balance lookup, referral-code check, and review-link submission.
func RegisterPublicRoutes(router *gin.Engine) {
	v1 := router.Group("/v1")
	{
		v1.POST("/reservations", controllers.CreateReservation)
		v1.GET("/reservations/:id/balance", controllers.GetReservationBalance)
		v1.POST("/reservations/:id/reviews", controllers.SubmitReview)
		v1.GET("/referral/check", controllers.CheckReferralCode)
	}
}

package routes

import (
	"github.com/dlw1rma/rauvfilm-sub002/controllers"
	"github.com/dlw1rma/rauvfilm-sub002/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterAdminRoutes wires the ops console endpoints behind the admin
// bearer-token guard.
func RegisterAdminRoutes(router *gin.Engine) {
	admin := router.Group("/v1/admin")
	admin.Use(middleware.AdminAuthMiddleware())
	{
		admin.POST("/reservations/:id/confirm", controllers.ConfirmReservation)
		admin.POST("/reservations/:id/promote", controllers.PromoteReservation)
		admin.POST("/reservations/:id/cancel", controllers.CancelReservation)
		admin.PUT("/reservations/:id/discounts", controllers.UpdateReservationDiscounts)

		admin.GET("/bookings/:id", controllers.GetBooking)
		admin.PUT("/bookings/:id", controllers.UpdateBooking)

		admin.GET("/reviews/pending", controllers.ListPendingReviews)
		admin.POST("/reviews/:id/approve", controllers.ApproveReview)
		admin.POST("/reviews/:id/reject", controllers.RejectReview)

		admin.GET("/reconciliation", controllers.ReconciliationReport)
		admin.POST("/reconciliation/:id/repair", controllers.RepairPair)
	}
}

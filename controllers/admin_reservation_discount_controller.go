package controllers

import (
	"github.com/dlw1rma/rauvfilm-sub002/config"
	"github.com/dlw1rma/rauvfilm-sub002/models"
	"github.com/dlw1rma/rauvfilm-sub002/utils"
	"github.com/gin-gonic/gin"
)

// UpdateDiscountsRequest carries admin edits to the manually managed
// discount components. Referral and review discounts are engine-owned and
// cannot be edited directly.
type UpdateDiscountsRequest struct {
	EventDiscount   *int64 `json:"event_discount"`
	NewYearDiscount *int64 `json:"new_year_discount"`
	TravelFee       *int64 `json:"travel_fee"`
}

// UpdateReservationDiscounts edits the event/seasonal discount components
// and reconciles the balance from the full vector in one transaction.
func UpdateReservationDiscounts(c *gin.Context) {
	utils.LogInfo("UpdateReservationDiscounts called for reservation %s", c.Param("id"))

	var req UpdateDiscountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if (req.EventDiscount != nil && *req.EventDiscount < 0) ||
		(req.NewYearDiscount != nil && *req.NewYearDiscount < 0) ||
		(req.TravelFee != nil && *req.TravelFee < 0) {
		utils.BadRequest(c, "Amounts cannot be negative", nil)
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, utils.ErrInternalServer, nil)
		return
	}

	var reservation models.Reservation
	if err := tx.First(&reservation, c.Param("id")).Error; err != nil {
		tx.Rollback()
		utils.NotFound(c, utils.ErrReservationNotFound)
		return
	}
	if reservation.Status == models.ReservationStatusCancelled {
		tx.Rollback()
		utils.BadRequest(c, utils.ErrReservationCancelled, nil)
		return
	}

	if req.EventDiscount != nil {
		reservation.EventDiscount = *req.EventDiscount
	}
	if req.NewYearDiscount != nil {
		reservation.NewYearDiscount = *req.NewYearDiscount
	}
	if req.TravelFee != nil {
		reservation.TravelFee = *req.TravelFee
	}
	breakdown := utils.RecalculateReservation(&reservation)

	if err := tx.Save(&reservation).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to update discounts for reservation %d: %v", reservation.ID, err)
		utils.InternalServerError(c, utils.ErrInternalServer, nil)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit discount update for reservation %d: %v", reservation.ID, err)
		utils.InternalServerError(c, utils.ErrInternalServer, nil)
		return
	}

	utils.MirrorReservationToBooking(config.DB, &reservation)

	utils.LogInfo("Reservation %d discounts updated, final balance %d", reservation.ID, reservation.FinalBalance)
	utils.Success(c, utils.MsgReservationUpdated, gin.H{
		"reservation_id": reservation.ID,
		"balance":        breakdown,
	})
}

// CancelReservation cancels a reservation and mirrors the cancellation to
// the linked booking.
func CancelReservation(c *gin.Context) {
	utils.LogInfo("CancelReservation called for reservation %s", c.Param("id"))

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, utils.ErrInternalServer, nil)
		return
	}

	var reservation models.Reservation
	if err := tx.First(&reservation, c.Param("id")).Error; err != nil {
		tx.Rollback()
		utils.NotFound(c, utils.ErrReservationNotFound)
		return
	}
	if reservation.Status == models.ReservationStatusCancelled {
		tx.Rollback()
		utils.Success(c, "Reservation already cancelled", gin.H{"reservation_id": reservation.ID})
		return
	}

	reservation.Status = models.ReservationStatusCancelled
	utils.RecalculateReservation(&reservation)

	if err := tx.Save(&reservation).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to cancel reservation %d: %v", reservation.ID, err)
		utils.InternalServerError(c, utils.ErrInternalServer, nil)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit cancellation of reservation %d: %v", reservation.ID, err)
		utils.InternalServerError(c, utils.ErrInternalServer, nil)
		return
	}

	utils.MirrorReservationToBooking(config.DB, &reservation)

	utils.LogInfo("Reservation %d cancelled", reservation.ID)
	utils.Success(c, "Reservation cancelled", gin.H{"reservation_id": reservation.ID})
}

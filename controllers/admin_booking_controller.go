package controllers

import (
	"github.com/dlw1rma/rauvfilm-sub002/config"
	"github.com/dlw1rma/rauvfilm-sub002/models"
	"github.com/dlw1rma/rauvfilm-sub002/utils"
	"github.com/gin-gonic/gin"
)

// UpdateBookingRequest carries admin edits made on the booking side
type UpdateBookingRequest struct {
	Status          *string `json:"status"`
	VideoURL        *string `json:"video_url"`
	ContractURL     *string `json:"contract_url"`
	EventDiscount   *int64  `json:"event_discount"`
	NewYearDiscount *int64  `json:"new_year_discount"`
	TravelFee       *int64  `json:"travel_fee"`
}

var validBookingStatuses = map[string]bool{
	models.BookingStatusConfirmed:    true,
	models.BookingStatusShootingDone: true,
	models.BookingStatusEditing:      true,
	models.BookingStatusDelivered:    true,
	models.BookingStatusCancelled:    true,
}

// UpdateBooking applies admin edits on the internal booking record,
// reconciles its balance, and mirrors the result back onto the
// customer-facing reservation best-effort.
func UpdateBooking(c *gin.Context) {
	utils.LogInfo("UpdateBooking called for booking %s", c.Param("id"))

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if req.Status != nil && !validBookingStatuses[*req.Status] {
		utils.BadRequest(c, "Unknown booking status", nil)
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

	var booking models.Booking
	if err := tx.First(&booking, c.Param("id")).Error; err != nil {
		tx.Rollback()
		utils.NotFound(c, utils.ErrBookingNotFound)
		return
	}

	if req.Status != nil {
		booking.Status = *req.Status
	}
	if req.VideoURL != nil {
		booking.VideoURL = *req.VideoURL
	}
	if req.ContractURL != nil {
		booking.ContractURL = *req.ContractURL
	}
	if req.EventDiscount != nil {
		booking.EventDiscount = *req.EventDiscount
	}
	if req.NewYearDiscount != nil {
		booking.NewYearDiscount = *req.NewYearDiscount
	}
	if req.TravelFee != nil {
		booking.TravelFee = *req.TravelFee
	}
	breakdown := utils.RecalculateBooking(&booking)

	if err := tx.Save(&booking).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to update booking %d: %v", booking.ID, err)
		utils.InternalServerError(c, utils.ErrInternalServer, nil)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit booking %d update: %v", booking.ID, err)
		utils.InternalServerError(c, utils.ErrInternalServer, nil)
		return
	}

	utils.MirrorBookingToReservation(config.DB, &booking)

	utils.LogInfo("Booking %d updated, final balance %d", booking.ID, booking.FinalBalance)
	utils.Success(c, "Booking updated", gin.H{
		"booking_id": booking.ID,
		"status":     booking.Status,
		"balance":    breakdown,
	})
}

// GetBooking returns one booking for the admin console.
func GetBooking(c *gin.Context) {
	var booking models.Booking
	if err := config.DB.First(&booking, c.Param("id")).Error; err != nil {
		utils.NotFound(c, utils.ErrBookingNotFound)
		return
	}
	utils.Success(c, "Booking", gin.H{"booking": booking})
}

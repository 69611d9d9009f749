package controllers

import (
	"github.com/dlw1rma/rauvfilm-sub002/config"
	"github.com/dlw1rma/rauvfilm-sub002/models"
	"github.com/dlw1rma/rauvfilm-sub002/utils"
	"github.com/gin-gonic/gin"
)

// PromoteReservation creates the internal booking twin for a confirmed
// reservation and links the pair. Idempotent: promoting twice returns the
// existing booking.
func PromoteReservation(c *gin.Context) {
	utils.LogInfo("PromoteReservation called for reservation %s", c.Param("id"))

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

	if reservation.Status == models.ReservationStatusPending {
		tx.Rollback()
		utils.BadRequest(c, "Reservation must be confirmed before promotion", nil)
		return
	}
	if reservation.Status == models.ReservationStatusCancelled {
		tx.Rollback()
		utils.BadRequest(c, utils.ErrReservationCancelled, nil)
		return
	}

	if reservation.BookingID != nil {
		var existing models.Booking
		if err := tx.First(&existing, *reservation.BookingID).Error; err == nil {
			tx.Rollback()
			utils.Success(c, "Reservation already promoted", gin.H{"booking": existing})
			return
		}
	}

	// Link the twin to the referrer's booking when one exists already.
	var referrerBookingID *uint
	if reservation.ReferredBy != "" {
		if referrer, err := utils.FindReferrerByCode(tx, reservation.ReferredBy); err == nil {
			referrerBookingID = referrer.BookingID
		}
	}
	booking := utils.BuildBookingTwin(&reservation, referrerBookingID)

	if err := tx.Create(&booking).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to create booking for reservation %d: %v", reservation.ID, err)
		utils.InternalServerError(c, utils.ErrInternalServer, nil)
		return
	}

	reservation.BookingID = &booking.ID
	if err := tx.Save(&reservation).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to link booking %d to reservation %d: %v", booking.ID, reservation.ID, err)
		utils.InternalServerError(c, utils.ErrInternalServer, nil)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit promotion of reservation %d: %v", reservation.ID, err)
		utils.InternalServerError(c, utils.ErrInternalServer, nil)
		return
	}

	utils.LogInfo("Reservation %d promoted to booking %d", reservation.ID, booking.ID)
	utils.Success(c, "Reservation promoted to booking", gin.H{"booking": booking})
}

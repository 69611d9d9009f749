package controllers

import (
	"github.com/dlw1rma/rauvfilm-sub002/config"
	"github.com/dlw1rma/rauvfilm-sub002/models"
	"github.com/dlw1rma/rauvfilm-sub002/utils"
	"github.com/gin-gonic/gin"
)

// DivergedPair describes a reservation/booking pair whose mirrored fields
// disagree and need manual repair.
type DivergedPair struct {
	ReservationID      uint   `json:"reservation_id"`
	BookingID          uint   `json:"booking_id"`
	ReservationBalance int64  `json:"reservation_balance"`
	BookingBalance     int64  `json:"booking_balance"`
	ReservationStatus  string `json:"reservation_status"`
	BookingStatus      string `json:"booking_status"`
}

// ReconciliationReport scans linked reservation/booking pairs and reports
// the ones the best-effort synchronizer left diverged. Mirror writes are
// swallowed on failure, so this audit is the recovery path.
func ReconciliationReport(c *gin.Context) {
	utils.LogInfo("ReconciliationReport called")

	page, limit := utils.GetPaginationParams(c)

	var total int64
	if err := config.DB.Model(&models.Reservation{}).
		Where("booking_id IS NOT NULL").
		Count(&total).Error; err != nil {
		utils.LogError("Failed to count linked pairs: %v", err)
		utils.InternalServerError(c, utils.ErrInternalServer, nil)
		return
	}

	var reservations []models.Reservation
	if err := config.DB.Where("booking_id IS NOT NULL").
		Order("id ASC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&reservations).Error; err != nil {
		utils.LogError("Failed to load linked reservations: %v", err)
		utils.InternalServerError(c, utils.ErrInternalServer, nil)
		return
	}

	diverged := []DivergedPair{}
	for i := range reservations {
		reservation := &reservations[i]
		var booking models.Booking
		if err := config.DB.First(&booking, *reservation.BookingID).Error; err != nil {
			utils.LogError("Linked booking %d missing for reservation %d: %v", *reservation.BookingID, reservation.ID, err)
			diverged = append(diverged, DivergedPair{
				ReservationID:      reservation.ID,
				BookingID:          *reservation.BookingID,
				ReservationBalance: reservation.FinalBalance,
				ReservationStatus:  reservation.Status,
				BookingStatus:      "MISSING",
			})
			continue
		}
		if !utils.PairInSync(reservation, &booking) {
			diverged = append(diverged, DivergedPair{
				ReservationID:      reservation.ID,
				BookingID:          booking.ID,
				ReservationBalance: reservation.FinalBalance,
				BookingBalance:     booking.FinalBalance,
				ReservationStatus:  reservation.Status,
				BookingStatus:      booking.Status,
			})
		}
	}

	utils.LogInfo("Reconciliation scan: %d pairs on page %d, %d diverged", len(reservations), page, len(diverged))
	utils.SuccessWithPagination(c, "Reconciliation report", gin.H{
		"scanned":  len(reservations),
		"diverged": diverged,
	}, total, page, limit)
}

// RepairPair forces a fresh reservation→booking mirror for one pair.
func RepairPair(c *gin.Context) {
	utils.LogInfo("RepairPair called for reservation %s", c.Param("id"))

	var reservation models.Reservation
	if err := config.DB.First(&reservation, c.Param("id")).Error; err != nil {
		utils.NotFound(c, utils.ErrReservationNotFound)
		return
	}
	if reservation.BookingID == nil {
		utils.BadRequest(c, "Reservation has no linked booking", nil)
		return
	}

	utils.MirrorReservationToBooking(config.DB, &reservation)

	var booking models.Booking
	if err := config.DB.First(&booking, *reservation.BookingID).Error; err != nil {
		utils.InternalServerError(c, utils.ErrInternalServer, nil)
		return
	}

	utils.Success(c, "Pair repaired", gin.H{
		"in_sync": utils.PairInSync(&reservation, &booking),
		"booking": booking,
	})
}

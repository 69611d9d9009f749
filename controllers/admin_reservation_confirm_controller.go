package controllers

import (
	"time"

	"github.com/dlw1rma/rauvfilm-sub002/config"
	"github.com/dlw1rma/rauvfilm-sub002/models"
	"github.com/dlw1rma/rauvfilm-sub002/utils"
	"github.com/gin-gonic/gin"
)

// ConfirmReservation records the ops reply that turns an inquiry into a
// confirmed booking candidate. Confirmation is the trust boundary: it
// mints the reservation's own referral code and is the only point where a
// redeemed code turns into credit. The referral side-effect is best
// effort and never blocks the confirmation itself.
func ConfirmReservation(c *gin.Context) {
	utils.LogInfo("ConfirmReservation called for reservation %s", c.Param("id"))

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

	// Re-read under the transaction guards two admins confirming at once;
	// the unique index on the normalized code backs it up.
	if reservation.Status == models.ReservationStatusConfirmed {
		tx.Rollback()
		utils.Conflict(c, utils.ErrAlreadyConfirmed, nil)
		return
	}
	if reservation.Status != models.ReservationStatusPending {
		tx.Rollback()
		utils.BadRequest(c, "Only pending reservations can be confirmed", nil)
		return
	}

	contractorName, err := utils.OpenField(reservation.CustomerNameEnc)
	if err != nil {
		tx.Rollback()
		utils.LogError("Failed to open customer name for reservation %d: %v", reservation.ID, err)
		utils.InternalServerError(c, utils.ErrInternalServer, nil)
		return
	}

	// The code is immutable once assigned to a confirmed record.
	if reservation.ReferralCode == "" {
		candidate := utils.GenerateReferralCode(reservation.EventDate, contractorName)
		code, err := utils.EnsureUniqueReferralCode(tx, candidate)
		if err != nil {
			tx.Rollback()
			utils.LogError("Failed to mint referral code for reservation %d: %v", reservation.ID, err)
			utils.InternalServerError(c, utils.ErrInternalServer, nil)
			return
		}
		reservation.ReferralCode = code
		reservation.ReferralCodeNormalized = utils.NormalizeReferralCode(code)
	}

	reservation.Status = models.ReservationStatusConfirmed

	referralResult := utils.ApplyReferralCredit(tx, config.Policy, &reservation, time.Now())
	if !referralResult.Applied && referralResult.Error != "" && reservation.ReferredBy != "" {
		utils.LogInfo("Referral credit not applied for reservation %d: %s", reservation.ID, referralResult.Error)
	}

	utils.RecalculateReservation(&reservation)

	if err := tx.Save(&reservation).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to confirm reservation %d: %v", reservation.ID, err)
		utils.InternalServerError(c, utils.ErrInternalServer, nil)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit confirmation of reservation %d: %v", reservation.ID, err)
		utils.InternalServerError(c, utils.ErrInternalServer, nil)
		return
	}

	// Cross-record sync is best-effort after the primary commit.
	utils.MirrorReservationToBooking(config.DB, &reservation)
	if referralResult.Applied && referralResult.ReferrerID != 0 {
		var referrer models.Reservation
		if err := config.DB.First(&referrer, referralResult.ReferrerID).Error; err == nil {
			utils.MirrorReservationToBooking(config.DB, &referrer)
		}
	}

	utils.LogInfo("Reservation %d confirmed, referral code %s", reservation.ID, reservation.ReferralCode)
	utils.Success(c, "Reservation confirmed", gin.H{
		"reservation_id": reservation.ID,
		"status":         reservation.Status,
		"referral_code":  reservation.ReferralCode,
		"referral":       referralResult,
		"final_balance":  reservation.FinalBalance,
	})
}

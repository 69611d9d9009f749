package controllers

import (
	"errors"

	"github.com/dlw1rma/rauvfilm-sub002/config"
	"github.com/dlw1rma/rauvfilm-sub002/models"
	"github.com/dlw1rma/rauvfilm-sub002/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmitReviewRequest represents a customer submitting a review link
type SubmitReviewRequest struct {
	URL string `json:"url" binding:"required"`
}

// SubmitReview accepts a review URL for a reservation, runs duplicate
// detection and automatic verification, and applies the review-discount
// gate when the submission auto-approves. Scrape failures degrade to
// manual review; the submitter always gets a structured result.
func SubmitReview(c *gin.Context) {
	utils.LogInfo("SubmitReview called for reservation %s", c.Param("id"))

	var reservation models.Reservation
	if err := config.DB.First(&reservation, c.Param("id")).Error; err != nil {
		utils.NotFound(c, utils.ErrReservationNotFound)
		return
	}
	if reservation.Status == models.ReservationStatusCancelled {
		utils.BadRequest(c, utils.ErrReservationCancelled, nil)
		return
	}

	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	normalizedURL, platform, appErr := utils.PrepareReviewSubmission(config.DB, req.URL)
	if appErr != nil {
		utils.LogInfo("Rejected review submission for reservation %d: %v", reservation.ID, appErr)
		utils.RespondError(c, appErr)
		return
	}

	// Verification fetches outside the transaction; only the decision is
	// written transactionally.
	result := utils.VerifyReview(config.Policy, platform, normalizedURL)

	submission := models.ReviewSubmission{
		ReservationID:  reservation.ID,
		Token:          uuid.New().String(),
		URL:            req.URL,
		NormalizedURL:  normalizedURL,
		Platform:       platform,
		Status:         result.Status,
		TitleValid:     result.TitleValid,
		ContentValid:   result.ContentValid,
		CharacterCount: result.CharacterCount,
		AutoVerified:   result.Status == models.ReviewStatusAutoApproved,
		RejectReason:   result.ErrorMessage,
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, utils.ErrInternalServer, nil)
		return
	}

	// The partial unique index on normalized_url is what actually stops two
	// racing submissions of the same link; a duplicate insert surfaces here.
	if err := tx.Create(&submission).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.LogInfo("Duplicate review URL for reservation %d: %s", reservation.ID, normalizedURL)
			utils.Conflict(c, utils.ErrDuplicateReview, nil)
			return
		}
		utils.LogError("Failed to save review submission for reservation %d: %v", reservation.ID, err)
		utils.InternalServerError(c, utils.ErrInternalServer, nil)
		return
	}

	var gate utils.GateDecision
	if submission.CountsAsApproved() {
		decision, err := utils.ApplyReviewGate(tx, config.Policy, &reservation)
		if err != nil {
			tx.Rollback()
			utils.LogError("Review gate failed for reservation %d: %v", reservation.ID, err)
			utils.InternalServerError(c, utils.ErrInternalServer, nil)
			return
		}
		gate = decision
		if err := tx.Save(&reservation).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to save reservation %d after review gate: %v", reservation.ID, err)
			utils.InternalServerError(c, utils.ErrInternalServer, nil)
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit review submission for reservation %d: %v", reservation.ID, err)
		utils.InternalServerError(c, utils.ErrInternalServer, nil)
		return
	}

	if submission.CountsAsApproved() {
		utils.MirrorReservationToBooking(config.DB, &reservation)
	}
	if submission.Status == models.ReviewStatusManualReview {
		go utils.SendManualReviewAlert(reservation.ID, req.URL, result.ErrorMessage)
	}

	utils.LogInfo("Review submission %d for reservation %d: %s", submission.ID, reservation.ID, submission.Status)
	utils.Success(c, utils.MsgReviewSubmitted, gin.H{
		"submission_id": submission.ID,
		"token":         submission.Token,
		"verification":  result,
		"gate":          gate,
		"final_balance": reservation.FinalBalance,
	})
}

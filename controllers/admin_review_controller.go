package controllers

import (
	"time"

	"github.com/dlw1rma/rauvfilm-sub002/config"
	"github.com/dlw1rma/rauvfilm-sub002/models"
	"github.com/dlw1rma/rauvfilm-sub002/utils"
	"github.com/gin-gonic/gin"
)

// ApproveReview finalizes a submission as APPROVED, recounts the
// reservation's approved submissions, and runs the discount gate. Safe to
// retry: terminal submissions are rejected and the gate is idempotent.
func ApproveReview(c *gin.Context) {
	utils.LogInfo("ApproveReview called for submission %s", c.Param("id"))

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, utils.ErrInternalServer, nil)
		return
	}

	var submission models.ReviewSubmission
	if err := tx.First(&submission, c.Param("id")).Error; err != nil {
		tx.Rollback()
		utils.NotFound(c, utils.ErrReviewNotFound)
		return
	}
	if submission.IsTerminal() {
		tx.Rollback()
		utils.Conflict(c, utils.ErrReviewTerminal, nil)
		return
	}

	now := time.Now()
	submission.Status = models.ReviewStatusApproved
	submission.ReviewedAt = &now
	submission.RejectReason = ""

	if err := tx.Save(&submission).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to approve submission %d: %v", submission.ID, err)
		utils.InternalServerError(c, utils.ErrInternalServer, nil)
		return
	}

	var reservation models.Reservation
	if err := tx.First(&reservation, submission.ReservationID).Error; err != nil {
		tx.Rollback()
		utils.LogError("Reservation %d for submission %d not found: %v", submission.ReservationID, submission.ID, err)
		utils.InternalServerError(c, utils.ErrInternalServer, nil)
		return
	}

	gate, err := utils.ApplyReviewGate(tx, config.Policy, &reservation)
	if err != nil {
		tx.Rollback()
		utils.LogError("Review gate failed for reservation %d: %v", reservation.ID, err)
		utils.InternalServerError(c, utils.ErrInternalServer, nil)
		return
	}
	if err := tx.Save(&reservation).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to save reservation %d after approval: %v", reservation.ID, err)
		utils.InternalServerError(c, utils.ErrInternalServer, nil)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit approval of submission %d: %v", submission.ID, err)
		utils.InternalServerError(c, utils.ErrInternalServer, nil)
		return
	}

	utils.MirrorReservationToBooking(config.DB, &reservation)

	utils.LogInfo("Submission %d approved, reservation %d review discount %d", submission.ID, reservation.ID, reservation.ReviewDiscount)
	utils.Success(c, "Review approved", gin.H{
		"submission_id": submission.ID,
		"gate":          gate,
		"final_balance": reservation.FinalBalance,
	})
}

// RejectReviewRequest carries the rejection reason shown to the customer
type RejectReviewRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// RejectReview finalizes a submission as REJECTED. A discount already
// granted from earlier approvals is never clawed back; the gate key is
// the current discount, not the count.
func RejectReview(c *gin.Context) {
	utils.LogInfo("RejectReview called for submission %s", c.Param("id"))

	var req RejectReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var submission models.ReviewSubmission
	if err := config.DB.First(&submission, c.Param("id")).Error; err != nil {
		utils.NotFound(c, utils.ErrReviewNotFound)
		return
	}
	if submission.IsTerminal() {
		utils.Conflict(c, utils.ErrReviewTerminal, nil)
		return
	}

	now := time.Now()
	submission.Status = models.ReviewStatusRejected
	submission.ReviewedAt = &now
	submission.RejectReason = req.Reason

	if err := config.DB.Save(&submission).Error; err != nil {
		utils.LogError("Failed to reject submission %d: %v", submission.ID, err)
		utils.InternalServerError(c, utils.ErrInternalServer, nil)
		return
	}

	utils.LogInfo("Submission %d rejected: %s", submission.ID, req.Reason)
	utils.Success(c, "Review rejected", gin.H{"submission_id": submission.ID})
}

// ListPendingReviews returns submissions waiting on a human decision.
func ListPendingReviews(c *gin.Context) {
	page, limit := utils.GetPaginationParams(c)

	var total int64
	query := config.DB.Model(&models.ReviewSubmission{}).
		Where("status = ?", models.ReviewStatusManualReview)
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count pending reviews: %v", err)
		utils.InternalServerError(c, utils.ErrInternalServer, nil)
		return
	}

	var submissions []models.ReviewSubmission
	if err := query.Order("created_at ASC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&submissions).Error; err != nil {
		utils.LogError("Failed to list pending reviews: %v", err)
		utils.InternalServerError(c, utils.ErrInternalServer, nil)
		return
	}

	utils.SuccessWithPagination(c, "Pending reviews", submissions, total, page, limit)
}

package utils

import (
	"github.com/dlw1rma/rauvfilm-sub002/config"
	"github.com/dlw1rma/rauvfilm-sub002/models"
	"gorm.io/gorm"
)

// GateDecision is the outcome of running the review-discount gate.
// AdjustedReviewCount is the tier-adjusted count the balance calculator
// expects: the threshold count once cash is (or already was) granted,
// zero otherwise.
type GateDecision struct {
	UnlockRawFootage    bool  `json:"unlock_raw_footage"`
	GrantCash           bool  `json:"grant_cash"`
	CashAmount          int64 `json:"cash_amount"`
	AdjustedReviewCount int   `json:"adjusted_review_count"`
	ApprovedCount       int   `json:"approved_count"`
}

// EvaluateReviewGate converts an approved-submission count into a tiered
// benefit. For the raw-footage tier approved reviews unlock raw footage
// delivery and never cash. Elsewhere a fixed cash discount is granted
// once the count crosses the threshold, keyed on "current discount is
// zero" rather than on the count, so a later recount (for example after a
// rejection) can never grant twice or claw back.
func EvaluateReviewGate(policy config.DiscountPolicy, productType string, approvedCount int, currentReviewDiscount int64) GateDecision {
	decision := GateDecision{ApprovedCount: approvedCount}

	if productType == policy.RawFootageTier {
		decision.UnlockRawFootage = approvedCount >= 1
		return decision
	}

	if currentReviewDiscount > 0 {
		// Already granted; keep the balance component stable.
		decision.AdjustedReviewCount = policy.ReviewCashThreshold
		return decision
	}

	if approvedCount >= policy.ReviewCashThreshold {
		decision.GrantCash = true
		decision.CashAmount = policy.ReviewCashAmount()
		decision.AdjustedReviewCount = policy.ReviewCashThreshold
	}

	return decision
}

// ApplyReviewGate recounts the reservation's approved submissions inside
// the caller's transaction, applies the gate decision to the reservation's
// fields, and recomputes the balance. The caller saves the reservation and
// mirrors the booking after commit.
func ApplyReviewGate(tx *gorm.DB, policy config.DiscountPolicy, reservation *models.Reservation) (GateDecision, error) {
	var approvedCount int64
	err := tx.Model(&models.ReviewSubmission{}).
		Where("reservation_id = ? AND status IN ?", reservation.ID,
			[]string{models.ReviewStatusApproved, models.ReviewStatusAutoApproved}).
		Count(&approvedCount).Error
	if err != nil {
		return GateDecision{}, err
	}

	decision := EvaluateReviewGate(policy, reservation.ProductType, int(approvedCount), reservation.ReviewDiscount)

	if decision.UnlockRawFootage {
		reservation.RawFootageUnlocked = true
	}
	if decision.GrantCash {
		reservation.ReviewDiscount = decision.CashAmount
	}
	RecalculateReservation(reservation)

	return decision, nil
}

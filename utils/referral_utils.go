package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/dlw1rma/rauvfilm-sub002/config"
	"github.com/dlw1rma/rauvfilm-sub002/models"
	"gorm.io/gorm"
)

// ReferralApplyResult reports the outcome of a referral-pair credit.
// Soft failures (cancelled referrer, unknown code) come back with
// Applied=false and a reason instead of an error so they never block the
// confirmation that triggered them.
type ReferralApplyResult struct {
	Applied          bool   `json:"applied"`
	ReferrerID       uint   `json:"referrer_id,omitempty"`
	ReferrerDiscount int64  `json:"referrer_discount,omitempty"`
	RefereeDiscount  int64  `json:"referee_discount,omitempty"`
	Error            string `json:"error,omitempty"`
}

// GenerateReferralCode derives the display-form referral code from the
// event date and the contractor's name: YYMMDD followed by the name with
// spaces removed.
func GenerateReferralCode(eventDate time.Time, contractorName string) string {
	return eventDate.Format("060102") + stripWhitespace(contractorName)
}

// NormalizeReferralCode produces the canonical comparison form: all
// whitespace stripped, lower-cased. Reservation codes may carry spaces
// while booking partner codes never do; both normalize identically.
func NormalizeReferralCode(code string) string {
	return strings.ToLower(stripWhitespace(code))
}

// EnsureUniqueReferralCode appends a numeric suffix to the candidate code
// until its normalized form collides with neither a reservation code nor
// a booking partner code. Must run inside the confirmation transaction so
// the unique index backs the read.
func EnsureUniqueReferralCode(tx *gorm.DB, candidate string) (string, error) {
	return disambiguateCode(candidate, func(normalized string) (bool, error) {
		return referralCodeTaken(tx, normalized)
	})
}

func disambiguateCode(candidate string, taken func(normalized string) (bool, error)) (string, error) {
	code := candidate
	for suffix := 2; ; suffix++ {
		inUse, err := taken(NormalizeReferralCode(code))
		if err != nil {
			return "", err
		}
		if !inUse {
			return code, nil
		}
		code = fmt.Sprintf("%s%d", candidate, suffix)
	}
}

func referralCodeTaken(tx *gorm.DB, normalized string) (bool, error) {
	var count int64
	if err := tx.Model(&models.Reservation{}).
		Where("referral_code_normalized = ?", normalized).
		Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}
	if err := tx.Model(&models.Booking{}).
		Where("partner_code_normalized = ?", normalized).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindReferrerByCode resolves a submitted code to a confirmed reservation.
// The code is a capability string, not a foreign key: resolution scans for
// a confirmed record whose normalized code matches, on either side of the
// dual record (reservation codes may carry spaces, booking partner codes
// never do; both were normalized at write time).
func FindReferrerByCode(db *gorm.DB, code string) (*models.Reservation, error) {
	normalized := NormalizeReferralCode(code)
	if normalized == "" {
		return nil, gorm.ErrRecordNotFound
	}

	var referrer models.Reservation
	err := db.Where("referral_code_normalized = ? AND status IN ?", normalized, []string{
		models.ReservationStatusConfirmed,
		models.ReservationStatusCompleted,
		models.ReservationStatusDelivered,
	}).First(&referrer).Error
	if err == nil {
		return &referrer, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	var booking models.Booking
	err = db.Where("partner_code_normalized = ? AND status <> ?", normalized, models.BookingStatusCancelled).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	if booking.ReservationID == nil {
		return nil, gorm.ErrRecordNotFound
	}
	if err := db.First(&referrer, *booking.ReservationID).Error; err != nil {
		return nil, err
	}
	if referrer.Status == models.ReservationStatusCancelled || referrer.Status == models.ReservationStatusPending {
		return nil, gorm.ErrRecordNotFound
	}
	return &referrer, nil
}

// ResolveReferralCode wraps FindReferrerByCode with handler-ready errors:
// an unknown code becomes a 404 AppError, anything else a 500.
func ResolveReferralCode(db *gorm.DB, code string) (*models.Reservation, *AppError) {
	referrer, err := FindReferrerByCode(db, code)
	if err == gorm.ErrRecordNotFound {
		return nil, NotFoundError(ErrInvalidReferralCode, err)
	}
	if err != nil {
		return nil, InternalError(err)
	}
	return referrer, nil
}

// ReferrerCreditEligible reports whether the referrer may still earn new
// referrer-side credit. Crediting is asymmetric in time: once the
// referrer's event day has passed, referees keep their discount but the
// referrer accrues nothing new. Same-day confirmations still credit.
func ReferrerCreditEligible(referrerEventDate, now time.Time) bool {
	eventDay := time.Date(referrerEventDate.Year(), referrerEventDate.Month(), referrerEventDate.Day(), 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !eventDay.Before(today)
}

// ApplyReferralCredit applies the two-sided referral discount when a
// referee's reservation is confirmed. Runs inside the confirmation
// transaction: the referee's discount fields are mutated in place (the
// caller saves and recomputes), the referrer is updated and saved here.
func ApplyReferralCredit(tx *gorm.DB, policy config.DiscountPolicy, referee *models.Reservation, now time.Time) ReferralApplyResult {
	if strings.TrimSpace(referee.ReferredBy) == "" {
		return ReferralApplyResult{Applied: false, Error: "no referral code on record"}
	}

	referrer, err := FindReferrerByCode(tx, referee.ReferredBy)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ReferralApplyResult{Applied: false, Error: "referral code no longer belongs to a confirmed customer"}
		}
		return ReferralApplyResult{Applied: false, Error: "referral lookup failed"}
	}
	if referrer.ID == referee.ID {
		return ReferralApplyResult{Applied: false, Error: ErrReferralSelf}
	}

	// Idempotence guard on the referee side: a second confirmation attempt
	// must not stack the discount.
	if referee.ReferralDiscount >= policy.ReferralAmount {
		return ReferralApplyResult{Applied: false, Error: "referral discount already applied"}
	}

	referee.ReferralDiscount = policy.ReferralAmount
	result := ReferralApplyResult{
		Applied:         true,
		ReferrerID:      referrer.ID,
		RefereeDiscount: policy.ReferralAmount,
	}

	if !ReferrerCreditEligible(referrer.EventDate, now) {
		// Referee keeps the credit; referrer's event has passed so no new
		// referrer-side credit and no referredCount bump.
		return result
	}

	referrer.ReferredCount++
	referrer.ReferralDiscount += policy.ReferralAmount
	RecalculateReservation(referrer)
	if err := tx.Save(referrer).Error; err != nil {
		LogError("Failed to credit referrer %d: %v", referrer.ID, err)
		return ReferralApplyResult{Applied: false, Error: "failed to credit referrer"}
	}
	result.ReferrerDiscount = policy.ReferralAmount

	return result
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

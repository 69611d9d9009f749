package models

import (
	"time"

	"gorm.io/gorm"
)

// Reservation status constants
const (
	ReservationStatusPending   = "PENDING"
	ReservationStatusConfirmed = "CONFIRMED"
	ReservationStatusCancelled = "CANCELLED"
	ReservationStatusCompleted = "COMPLETED"
	ReservationStatusDelivered = "DELIVERED"
)

// Product tier constants. Sub1 is the lowest tier; approved reviews
// unlock raw footage there instead of a cash discount.
const (
	ProductTierSub1 = "sub-1"
	ProductTierSub2 = "sub-2"
	ProductTierSub3 = "sub-3"
	ProductTierMain = "main"
)

// Reservation is the customer-facing inquiry record. Customer name and
// phone are stored sealed and decrypted only in-process.
type Reservation struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	CustomerNameEnc  string `json:"-"`
	CustomerPhoneEnc string `json:"-"`

	EventDate   time.Time `json:"event_date"`
	ProductType string    `json:"product_type"`

	TotalAmount   int64 `json:"total_amount"`
	DepositAmount int64 `json:"deposit_amount" gorm:"default:100000"`
	TravelFee     int64 `json:"travel_fee"`

	EventDiscount    int64 `json:"event_discount"`
	NewYearDiscount  int64 `json:"new_year_discount"`
	ReferralDiscount int64 `json:"referral_discount"`
	ReviewDiscount   int64 `json:"review_discount"`
	DiscountAmount   int64 `json:"discount_amount"`
	FinalBalance     int64 `json:"final_balance"`

	// ReferralCode is the code this record grants to others, display form.
	// The normalized copy is written once at issuance and is what lookups use.
	ReferralCode           string `json:"referral_code"`
	ReferralCodeNormalized string `gorm:"uniqueIndex:idx_reservations_referral_code_norm,where:referral_code_normalized <> ''" json:"-"`
	ReferredBy             string `json:"referred_by"`
	ReferredCount          int    `json:"referred_count"`

	RawFootageUnlocked bool `json:"raw_footage_unlocked"`

	Status    string `json:"status" gorm:"default:'PENDING'"`
	BookingID *uint  `json:"booking_id"`

	ReviewSubmissions []ReviewSubmission `json:"review_submissions,omitempty" gorm:"foreignKey:ReservationID"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

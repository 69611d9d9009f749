package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking status constants. The booking lifecycle overlaps the
// reservation lifecycle but tracks production stages after confirmation.
const (
	BookingStatusConfirmed    = "CONFIRMED"
	BookingStatusShootingDone = "SHOOTING_DONE"
	BookingStatusEditing      = "EDITING"
	BookingStatusDelivered    = "DELIVERED"
	BookingStatusCancelled    = "CANCELLED"
)

// Booking is the internal operational twin of a confirmed Reservation.
// Discount and balance fields mirror the reservation; divergence is a
// sync failure, not a second source of truth.
type Booking struct {
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

	// PartnerCode is the booking-side referral code, stored unspaced.
	PartnerCode           string `json:"partner_code"`
	PartnerCodeNormalized string `gorm:"uniqueIndex:idx_bookings_partner_code_norm,where:partner_code_normalized <> ''" json:"-"`
	ReferredBy            string `json:"referred_by"`
	ReferredByBookingID   *uint  `json:"referred_by_booking_id"`
	ReferredCount         int    `json:"referred_count"`

	RawFootageUnlocked bool   `json:"raw_footage_unlocked"`
	VideoURL           string `json:"video_url"`
	ContractURL        string `json:"contract_url"`

	Status        string `json:"status" gorm:"default:'CONFIRMED'"`
	ReservationID *uint  `json:"reservation_id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

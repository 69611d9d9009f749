package utils

import (
	"github.com/dlw1rma/rauvfilm-sub002/models"
	"gorm.io/gorm"
)

// Reservation→booking status mapping. Production stages on the booking
// side have no reservation equivalent and are left untouched.
var reservationToBookingStatus = map[string]string{
	models.ReservationStatusConfirmed: models.BookingStatusConfirmed,
	models.ReservationStatusCancelled: models.BookingStatusCancelled,
	models.ReservationStatusCompleted: models.BookingStatusDelivered,
	models.ReservationStatusDelivered: models.BookingStatusDelivered,
}

var bookingToReservationStatus = map[string]string{
	models.BookingStatusCancelled: models.ReservationStatusCancelled,
	models.BookingStatusDelivered: models.ReservationStatusDelivered,
}

// BuildBookingTwin constructs the booking twin of a confirmed reservation
// at promotion time. referrerBookingID links the twin to the booking of
// the reservation whose code referred this one, when that booking exists.
func BuildBookingTwin(reservation *models.Reservation, referrerBookingID *uint) models.Booking {
	booking := models.Booking{
		CustomerNameEnc:  reservation.CustomerNameEnc,
		CustomerPhoneEnc: reservation.CustomerPhoneEnc,
		EventDate:        reservation.EventDate,
		ProductType:      reservation.ProductType,
		TotalAmount:      reservation.TotalAmount,
		DepositAmount:    reservation.DepositAmount,
		TravelFee:        reservation.TravelFee,
		EventDiscount:    reservation.EventDiscount,
		NewYearDiscount:  reservation.NewYearDiscount,
		ReferralDiscount: reservation.ReferralDiscount,
		ReviewDiscount:   reservation.ReviewDiscount,
		ReferredBy:       reservation.ReferredBy,
		ReferredCount:    reservation.ReferredCount,
		// Booking-side codes are stored unspaced.
		PartnerCode:           stripWhitespace(reservation.ReferralCode),
		PartnerCodeNormalized: NormalizeReferralCode(reservation.ReferralCode),
		ReferredByBookingID:   referrerBookingID,
		RawFootageUnlocked:    reservation.RawFootageUnlocked,
		Status:                models.BookingStatusConfirmed,
		ReservationID:         &reservation.ID,
	}
	RecalculateBooking(&booking)
	return booking
}

// MirrorReservationToBooking copies the reservation's discount, balance,
// referral, and status state onto its linked booking. Best-effort: any
// failure is logged and swallowed so the primary operation still succeeds;
// divergence is surfaced by the reconciliation audit.
func MirrorReservationToBooking(db *gorm.DB, reservation *models.Reservation) {
	if reservation.BookingID == nil {
		return
	}

	var booking models.Booking
	if err := db.First(&booking, *reservation.BookingID).Error; err != nil {
		LogError("Sync: booking %d for reservation %d not found: %v", *reservation.BookingID, reservation.ID, err)
		notifySyncFailure("reservation", reservation.ID, err)
		return
	}

	booking.CustomerNameEnc = reservation.CustomerNameEnc
	booking.CustomerPhoneEnc = reservation.CustomerPhoneEnc
	booking.EventDate = reservation.EventDate
	booking.ProductType = reservation.ProductType
	booking.TotalAmount = reservation.TotalAmount
	booking.DepositAmount = reservation.DepositAmount
	booking.TravelFee = reservation.TravelFee
	booking.EventDiscount = reservation.EventDiscount
	booking.NewYearDiscount = reservation.NewYearDiscount
	booking.ReferralDiscount = reservation.ReferralDiscount
	booking.ReviewDiscount = reservation.ReviewDiscount
	booking.ReferredBy = reservation.ReferredBy
	booking.ReferredCount = reservation.ReferredCount
	booking.RawFootageUnlocked = reservation.RawFootageUnlocked
	if reservation.ReferralCode != "" && booking.PartnerCode == "" {
		booking.PartnerCode = stripWhitespace(reservation.ReferralCode)
		booking.PartnerCodeNormalized = NormalizeReferralCode(reservation.ReferralCode)
	}
	if mapped, ok := reservationToBookingStatus[reservation.Status]; ok {
		booking.Status = mapped
	}
	RecalculateBooking(&booking)

	if err := db.Save(&booking).Error; err != nil {
		LogError("Sync: failed to mirror reservation %d onto booking %d: %v", reservation.ID, booking.ID, err)
		notifySyncFailure("reservation", reservation.ID, err)
	}
}

// MirrorBookingToReservation propagates admin edits made on the booking
// back onto the customer-facing reservation, same best-effort semantics.
func MirrorBookingToReservation(db *gorm.DB, booking *models.Booking) {
	if booking.ReservationID == nil {
		return
	}

	var reservation models.Reservation
	if err := db.First(&reservation, *booking.ReservationID).Error; err != nil {
		LogError("Sync: reservation %d for booking %d not found: %v", *booking.ReservationID, booking.ID, err)
		notifySyncFailure("booking", booking.ID, err)
		return
	}

	reservation.EventDate = booking.EventDate
	reservation.ProductType = booking.ProductType
	reservation.TotalAmount = booking.TotalAmount
	reservation.DepositAmount = booking.DepositAmount
	reservation.TravelFee = booking.TravelFee
	reservation.EventDiscount = booking.EventDiscount
	reservation.NewYearDiscount = booking.NewYearDiscount
	reservation.ReferralDiscount = booking.ReferralDiscount
	reservation.ReviewDiscount = booking.ReviewDiscount
	reservation.ReferredCount = booking.ReferredCount
	reservation.RawFootageUnlocked = booking.RawFootageUnlocked
	if mapped, ok := bookingToReservationStatus[booking.Status]; ok {
		reservation.Status = mapped
	}
	RecalculateReservation(&reservation)

	if err := db.Save(&reservation).Error; err != nil {
		LogError("Sync: failed to mirror booking %d onto reservation %d: %v", booking.ID, reservation.ID, err)
		notifySyncFailure("booking", booking.ID, err)
	}
}

// PairInSync reports whether a reservation/booking pair agrees on the
// fields the synchronizer owns. Used by the reconciliation audit.
func PairInSync(reservation *models.Reservation, booking *models.Booking) bool {
	if reservation.EventDiscount != booking.EventDiscount ||
		reservation.NewYearDiscount != booking.NewYearDiscount ||
		reservation.ReferralDiscount != booking.ReferralDiscount ||
		reservation.ReviewDiscount != booking.ReviewDiscount ||
		reservation.DiscountAmount != booking.DiscountAmount ||
		reservation.FinalBalance != booking.FinalBalance {
		return false
	}
	if mapped, ok := reservationToBookingStatus[reservation.Status]; ok {
		// Production stages between CONFIRMED and DELIVERED all map back
		// to a confirmed reservation.
		if mapped == models.BookingStatusConfirmed {
			return booking.Status != models.BookingStatusCancelled
		}
		return booking.Status == mapped
	}
	return true
}

func notifySyncFailure(kind string, id uint, err error) {
	go SendSyncFailureAlert(kind, id, err)
}

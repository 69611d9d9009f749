package utils

import (
	"testing"

	"github.com/dlw1rma/rauvfilm-sub002/models"
	"github.com/stretchr/testify/assert"
)

func syncedPair() (*models.Reservation, *models.Booking) {
	reservation := &models.Reservation{
		EventDiscount:    50000,
		ReferralDiscount: 10000,
		ReviewDiscount:   20000,
		DiscountAmount:   80000,
		FinalBalance:     770000,
		Status:           models.ReservationStatusConfirmed,
	}
	booking := &models.Booking{
		EventDiscount:    50000,
		ReferralDiscount: 10000,
		ReviewDiscount:   20000,
		DiscountAmount:   80000,
		FinalBalance:     770000,
		Status:           models.BookingStatusConfirmed,
	}
	return reservation, booking
}

func TestBuildBookingTwinCopiesStateAndLinksReferrer(t *testing.T) {
	referrerBookingID := uint(77)
	reservation := &models.Reservation{
		ID:                 5,
		TotalAmount:        950000,
		DepositAmount:      100000,
		EventDiscount:      50000,
		ReferralCode:       "240511 홍 길동",
		ReferredBy:         "231001김철수",
		RawFootageUnlocked: true,
		Status:             models.ReservationStatusConfirmed,
	}

	RecalculateReservation(reservation)

	booking := BuildBookingTwin(reservation, &referrerBookingID)

	assert.Equal(t, "240511홍길동", booking.PartnerCode)
	assert.Equal(t, NormalizeReferralCode(reservation.ReferralCode), booking.PartnerCodeNormalized)
	assert.Equal(t, &referrerBookingID, booking.ReferredByBookingID)
	assert.Equal(t, reservation.ID, *booking.ReservationID)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, int64(800000), booking.FinalBalance)
	assert.True(t, booking.RawFootageUnlocked)
	assert.True(t, PairInSync(reservation, &booking))
}

func TestBuildBookingTwinWithoutReferrer(t *testing.T) {
	booking := BuildBookingTwin(&models.Reservation{ID: 9, TotalAmount: 500000, DepositAmount: 100000}, nil)

	assert.Nil(t, booking.ReferredByBookingID)
	assert.Equal(t, "", booking.PartnerCode)
	assert.Equal(t, int64(400000), booking.FinalBalance)
}

func TestPairInSync(t *testing.T) {
	reservation, booking := syncedPair()
	assert.True(t, PairInSync(reservation, booking))
}

func TestPairInSyncDetectsDiscountDrift(t *testing.T) {
	reservation, booking := syncedPair()
	booking.ReviewDiscount = 0
	assert.False(t, PairInSync(reservation, booking))

	reservation, booking = syncedPair()
	booking.FinalBalance = 790000
	assert.False(t, PairInSync(reservation, booking))
}

func TestPairInSyncDetectsStatusDrift(t *testing.T) {
	reservation, booking := syncedPair()
	booking.Status = models.BookingStatusCancelled
	assert.False(t, PairInSync(reservation, booking))

	reservation, booking = syncedPair()
	reservation.Status = models.ReservationStatusDelivered
	assert.False(t, PairInSync(reservation, booking))
}

func TestPairInSyncAllowsProductionStages(t *testing.T) {
	// SHOOTING_DONE and EDITING have no reservation-side equivalent; a
	// confirmed reservation stays in sync with any of them.
	reservation, booking := syncedPair()
	booking.Status = models.BookingStatusShootingDone
	assert.True(t, PairInSync(reservation, booking))

	booking.Status = models.BookingStatusEditing
	assert.True(t, PairInSync(reservation, booking))

	reservation.Status = models.ReservationStatusDelivered
	booking.Status = models.BookingStatusDelivered
	assert.True(t, PairInSync(reservation, booking))
}

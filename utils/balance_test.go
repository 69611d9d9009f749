package utils

import (
	"testing"

	"github.com/dlw1rma/rauvfilm-sub002/config"
	"github.com/dlw1rma/rauvfilm-sub002/models"
	"github.com/stretchr/testify/assert"
)

func TestCalculateBalanceFullStack(t *testing.T) {
	policy := config.DefaultDiscountPolicy()

	breakdown := CalculateBalance(policy, BalanceInput{
		ListPrice:           950000,
		DepositAmount:       100000,
		EventDiscount:       50000,
		HasReferral:         true,
		ApprovedReviewCount: 2,
	})

	assert.Equal(t, int64(10000), breakdown.ReferralDiscount)
	assert.Equal(t, int64(20000), breakdown.ReviewDiscount)
	assert.Equal(t, int64(80000), breakdown.TotalDiscount)
	assert.Equal(t, int64(770000), breakdown.FinalBalance)
}

func TestCalculateBalanceNeverNegative(t *testing.T) {
	policy := config.DefaultDiscountPolicy()

	breakdown := CalculateBalance(policy, BalanceInput{
		ListPrice:           150000,
		DepositAmount:       100000,
		EventDiscount:       200000,
		HasReferral:         true,
		ApprovedReviewCount: 2,
	})

	assert.Equal(t, int64(0), breakdown.FinalBalance)
}

func TestCalculateBalanceClampsNegativeInputs(t *testing.T) {
	policy := config.DefaultDiscountPolicy()

	breakdown := CalculateBalance(policy, BalanceInput{
		ListPrice:       500000,
		DepositAmount:   100000,
		EventDiscount:   -30000,
		NewYearDiscount: -1,
		TravelFee:       -50000,
	})

	assert.Equal(t, int64(0), breakdown.EventDiscount)
	assert.Equal(t, int64(0), breakdown.TravelFee)
	assert.Equal(t, int64(400000), breakdown.FinalBalance)
}

func TestCalculateBalanceTravelFeeAdds(t *testing.T) {
	policy := config.DefaultDiscountPolicy()

	breakdown := CalculateBalance(policy, BalanceInput{
		ListPrice:     950000,
		TravelFee:     30000,
		DepositAmount: 100000,
	})

	assert.Equal(t, int64(880000), breakdown.FinalBalance)
}

func TestRecalculateReservationIsIdempotent(t *testing.T) {
	reservation := &models.Reservation{
		TotalAmount:      950000,
		DepositAmount:    100000,
		EventDiscount:    50000,
		ReferralDiscount: 10000,
		ReviewDiscount:   20000,
	}

	first := RecalculateReservation(reservation)
	second := RecalculateReservation(reservation)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(80000), reservation.DiscountAmount)
	assert.Equal(t, int64(770000), reservation.FinalBalance)
}

func TestRecalculateMatchesCalculateBalance(t *testing.T) {
	policy := config.DefaultDiscountPolicy()

	reservation := &models.Reservation{
		TotalAmount:      950000,
		DepositAmount:    100000,
		TravelFee:        30000,
		EventDiscount:    50000,
		ReferralDiscount: policy.ReferralAmount,
		ReviewDiscount:   policy.ReviewCashAmount(),
	}
	fromRecord := RecalculateReservation(reservation)

	fromInput := CalculateBalance(policy, BalanceInput{
		ListPrice:           950000,
		TravelFee:           30000,
		DepositAmount:       100000,
		EventDiscount:       50000,
		HasReferral:         true,
		ApprovedReviewCount: policy.ReviewCashThreshold,
	})

	// Both paths funnel through the same arithmetic.
	assert.Equal(t, fromInput, fromRecord)
}

func TestRecalculateBookingMatchesReservation(t *testing.T) {
	reservation := &models.Reservation{
		TotalAmount:      800000,
		DepositAmount:    100000,
		TravelFee:        20000,
		NewYearDiscount:  30000,
		ReferralDiscount: 10000,
	}
	booking := &models.Booking{
		TotalAmount:      800000,
		DepositAmount:    100000,
		TravelFee:        20000,
		NewYearDiscount:  30000,
		ReferralDiscount: 10000,
	}

	r := RecalculateReservation(reservation)
	b := RecalculateBooking(booking)

	assert.Equal(t, r.FinalBalance, b.FinalBalance)
	assert.Equal(t, int64(680000), r.FinalBalance)
}

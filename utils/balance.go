package utils

import (
	"github.com/dlw1rma/rauvfilm-sub002/config"
	"github.com/dlw1rma/rauvfilm-sub002/models"
)

// BalanceInput carries every component that feeds a balance computation.
// ApprovedReviewCount is the tier-adjusted count from the review gate,
// not the raw submission count.
type BalanceInput struct {
	ListPrice           int64
	TravelFee           int64
	DepositAmount       int64
	EventDiscount       int64
	NewYearDiscount     int64
	HasReferral         bool
	ApprovedReviewCount int
}

// BalanceBreakdown is the full result of a balance computation. Callers
// persist the breakdown as a whole rather than patching single fields.
type BalanceBreakdown struct {
	ListPrice        int64 `json:"list_price"`
	TravelFee        int64 `json:"travel_fee"`
	DepositAmount    int64 `json:"deposit_amount"`
	EventDiscount    int64 `json:"event_discount"`
	NewYearDiscount  int64 `json:"new_year_discount"`
	ReferralDiscount int64 `json:"referral_discount"`
	ReviewDiscount   int64 `json:"review_discount"`
	TotalDiscount    int64 `json:"total_discount"`
	FinalBalance     int64 `json:"final_balance"`
}

// CalculateBalance computes the payable balance from the full component
// set. Pure and total: negative inputs are clamped to zero and the final
// balance never goes below zero.
func CalculateBalance(policy config.DiscountPolicy, in BalanceInput) BalanceBreakdown {
	breakdown := BalanceBreakdown{
		ListPrice:       in.ListPrice,
		TravelFee:       in.TravelFee,
		DepositAmount:   in.DepositAmount,
		EventDiscount:   in.EventDiscount,
		NewYearDiscount: in.NewYearDiscount,
	}
	if in.HasReferral {
		breakdown.ReferralDiscount = policy.ReferralAmount
	}
	if in.ApprovedReviewCount > 0 {
		breakdown.ReviewDiscount = int64(in.ApprovedReviewCount) * policy.ReviewUnitAmount
	}
	return finalizeBreakdown(breakdown)
}

// finalizeBreakdown clamps every component, then derives the aggregate
// discount and the final balance. All balance math funnels through here.
func finalizeBreakdown(b BalanceBreakdown) BalanceBreakdown {
	b.ListPrice = clampNonNegative(b.ListPrice)
	b.TravelFee = clampNonNegative(b.TravelFee)
	b.DepositAmount = clampNonNegative(b.DepositAmount)
	b.EventDiscount = clampNonNegative(b.EventDiscount)
	b.NewYearDiscount = clampNonNegative(b.NewYearDiscount)
	b.ReferralDiscount = clampNonNegative(b.ReferralDiscount)
	b.ReviewDiscount = clampNonNegative(b.ReviewDiscount)

	b.TotalDiscount = b.EventDiscount + b.NewYearDiscount + b.ReferralDiscount + b.ReviewDiscount
	b.FinalBalance = clampNonNegative(b.ListPrice + b.TravelFee - b.DepositAmount - b.TotalDiscount)
	return b
}

// RecalculateReservation recomputes the aggregate discount and final
// balance of a reservation from its stored discount components and writes
// them back onto the record. Every mutation path calls this instead of
// applying a delta.
func RecalculateReservation(r *models.Reservation) BalanceBreakdown {
	breakdown := finalizeBreakdown(BalanceBreakdown{
		ListPrice:        r.TotalAmount,
		TravelFee:        r.TravelFee,
		DepositAmount:    r.DepositAmount,
		EventDiscount:    r.EventDiscount,
		NewYearDiscount:  r.NewYearDiscount,
		ReferralDiscount: r.ReferralDiscount,
		ReviewDiscount:   r.ReviewDiscount,
	})
	r.DiscountAmount = breakdown.TotalDiscount
	r.FinalBalance = breakdown.FinalBalance
	return breakdown
}

// RecalculateBooking does the same full-vector recompute on the booking twin.
func RecalculateBooking(b *models.Booking) BalanceBreakdown {
	breakdown := finalizeBreakdown(BalanceBreakdown{
		ListPrice:        b.TotalAmount,
		TravelFee:        b.TravelFee,
		DepositAmount:    b.DepositAmount,
		EventDiscount:    b.EventDiscount,
		NewYearDiscount:  b.NewYearDiscount,
		ReferralDiscount: b.ReferralDiscount,
		ReviewDiscount:   b.ReviewDiscount,
	})
	b.DiscountAmount = breakdown.TotalDiscount
	b.FinalBalance = breakdown.FinalBalance
	return breakdown
}

func clampNonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

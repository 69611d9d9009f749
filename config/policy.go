package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DiscountPolicy is the single source for every discount amount, review
// tier rule, and scrape limit. It is loaded once at startup and passed by
// value so no call site can mutate it.
type DiscountPolicy struct {
	// DepositAmount is subtracted from every balance; paid up front.
	DepositAmount int64
	// ReferralAmount is the one-time credit for each side of a referral pair.
	ReferralAmount int64
	// ReviewUnitAmount is the per-approved-review value used when
	// converting a tier-adjusted count into a cash discount.
	ReviewUnitAmount int64
	// ReviewCashThreshold is the approved-submission count that unlocks
	// the cash discount on non raw-footage tiers.
	ReviewCashThreshold int
	// RawFootageTier names the product tier whose review benefit is raw
	// footage delivery rather than cash.
	RawFootageTier string

	// BrandKeywords is the set of names a review title must contain,
	// matched case-insensitively.
	BrandKeywords []string
	// MinContentChars is the whitespace-stripped character count a review
	// body needs to pass the content rule.
	MinContentChars int
	// MinExtractChars is the floor below which an extraction is treated as
	// an access failure (private or unlisted post), not a content failure.
	MinExtractChars int

	ScrapeTimeout time.Duration
}

// ReviewCashAmount is the fixed cash discount written when the approved
// count crosses the threshold.
func (p DiscountPolicy) ReviewCashAmount() int64 {
	return int64(p.ReviewCashThreshold) * p.ReviewUnitAmount
}

// DefaultDiscountPolicy returns the studio's standing policy.
func DefaultDiscountPolicy() DiscountPolicy {
	return DiscountPolicy{
		DepositAmount:       100000,
		ReferralAmount:      10000,
		ReviewUnitAmount:    10000,
		ReviewCashThreshold: 2,
		RawFootageTier:      "sub-1",
		BrandKeywords:       []string{"rauvfilm", "라우브필름"},
		MinContentChars:     500,
		MinExtractChars:     30,
		ScrapeTimeout:       10 * time.Second,
	}
}

// LoadDiscountPolicy returns the default policy with any env overrides
// applied. Unset or malformed values keep the defaults.
func LoadDiscountPolicy() DiscountPolicy {
	p := DefaultDiscountPolicy()

	if v, err := strconv.ParseInt(os.Getenv("POLICY_DEPOSIT_AMOUNT"), 10, 64); err == nil && v >= 0 {
		p.DepositAmount = v
	}
	if v, err := strconv.ParseInt(os.Getenv("POLICY_REFERRAL_AMOUNT"), 10, 64); err == nil && v >= 0 {
		p.ReferralAmount = v
	}
	if v, err := strconv.ParseInt(os.Getenv("POLICY_REVIEW_UNIT_AMOUNT"), 10, 64); err == nil && v >= 0 {
		p.ReviewUnitAmount = v
	}
	if v, err := strconv.Atoi(os.Getenv("POLICY_REVIEW_CASH_THRESHOLD")); err == nil && v > 0 {
		p.ReviewCashThreshold = v
	}
	if v := os.Getenv("POLICY_RAW_FOOTAGE_TIER"); v != "" {
		p.RawFootageTier = v
	}
	if v := os.Getenv("POLICY_BRAND_KEYWORDS"); v != "" {
		var keywords []string
		for _, k := range strings.Split(v, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keywords = append(keywords, k)
			}
		}
		if len(keywords) > 0 {
			p.BrandKeywords = keywords
		}
	}
	if v, err := strconv.Atoi(os.Getenv("POLICY_MIN_CONTENT_CHARS")); err == nil && v > 0 {
		p.MinContentChars = v
	}
	if v, err := strconv.Atoi(os.Getenv("POLICY_SCRAPE_TIMEOUT_SECONDS")); err == nil && v > 0 {
		p.ScrapeTimeout = time.Duration(v) * time.Second
	}

	return p
}

// Policy is the process-wide discount policy, set once in main.
var Policy = DefaultDiscountPolicy()

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestGenerateReferralCode(t *testing.T) {
	code := GenerateReferralCode(date(2024, time.May, 11), "홍 길동")
	assert.Equal(t, "240511홍길동", code)

	code = GenerateReferralCode(date(2025, time.December, 3), "Kim Minji")
	assert.Equal(t, "251203KimMinji", code)
}

func TestNormalizeReferralCodeToleratesSpacing(t *testing.T) {
	// Reservation-side codes may carry spaces, booking-side never do.
	spaced := NormalizeReferralCode("240511 홍 길동")
	unspaced := NormalizeReferralCode("240511홍길동")
	assert.Equal(t, unspaced, spaced)

	assert.Equal(t, NormalizeReferralCode("251203KimMinji"), NormalizeReferralCode("251203 kim minji"))
}

func TestDisambiguateCodeAppendsSuffix(t *testing.T) {
	existing := map[string]bool{
		NormalizeReferralCode("240511홍길동"):  true,
		NormalizeReferralCode("240511홍길동2"): true,
	}
	taken := func(normalized string) (bool, error) {
		return existing[normalized], nil
	}

	code, err := disambiguateCode("240511홍길동", taken)
	assert.NoError(t, err)
	assert.Equal(t, "240511홍길동3", code)
}

func TestDisambiguateCodeKeepsFreeCandidate(t *testing.T) {
	taken := func(string) (bool, error) { return false, nil }

	code, err := disambiguateCode("240511홍길동", taken)
	assert.NoError(t, err)
	assert.Equal(t, "240511홍길동", code)
}

func TestReferrerCreditEligible(t *testing.T) {
	now := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.Local)

	// Event was yesterday: referee keeps the discount elsewhere, but the
	// referrer earns nothing new.
	assert.False(t, ReferrerCreditEligible(date(2026, time.March, 9), now))

	// Same day still credits, regardless of hour.
	assert.True(t, ReferrerCreditEligible(time.Date(2026, time.March, 10, 9, 0, 0, 0, time.Local), now))

	assert.True(t, ReferrerCreditEligible(date(2026, time.June, 20), now))
}

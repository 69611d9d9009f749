package models

import (
	"time"

	"gorm.io/gorm"
)

// Review platform constants
const (
	PlatformNaverBlog = "NAVER_BLOG"
	PlatformNaverCafe = "NAVER_CAFE"
	PlatformInstagram = "INSTAGRAM"
	PlatformOther     = "OTHER"
)

// Review submission status constants. APPROVED and REJECTED are terminal.
const (
	ReviewStatusPending      = "PENDING"
	ReviewStatusAutoApproved = "AUTO_APPROVED"
	ReviewStatusManualReview = "MANUAL_REVIEW"
	ReviewStatusApproved     = "APPROVED"
	ReviewStatusRejected     = "REJECTED"
)

// ReviewSubmission is one customer-submitted review URL. NormalizedURL
// is the canonical form used for duplicate detection across the whole
// system, not just the submitter's own reservations.
type ReviewSubmission struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	ReservationID uint        `json:"reservation_id"`
	Reservation   Reservation `json:"-" gorm:"foreignKey:ReservationID"`

	Token string `gorm:"uniqueIndex" json:"token"`
	URL   string `json:"url"`
	// Unique among non-rejected rows: the database, not a handler re-read,
	// is what makes two racing submissions of the same link collide.
	NormalizedURL string `gorm:"uniqueIndex:idx_review_submissions_normalized_url,where:status <> 'REJECTED'" json:"-"`
	Platform      string `json:"platform"`

	Status         string `json:"status" gorm:"default:'PENDING'"`
	TitleValid     bool   `json:"title_valid"`
	ContentValid   bool   `json:"content_valid"`
	CharacterCount int    `json:"character_count"`
	AutoVerified   bool   `json:"auto_verified"`
	RejectReason   string `json:"reject_reason,omitempty"`

	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsTerminal reports whether the submission can no longer change state.
func (s *ReviewSubmission) IsTerminal() bool {
	return s.Status == ReviewStatusApproved || s.Status == ReviewStatusRejected
}

// CountsAsApproved reports whether the submission counts toward the
// review-discount tier.
func (s *ReviewSubmission) CountsAsApproved() bool {
	return s.Status == ReviewStatusApproved || s.Status == ReviewStatusAutoApproved
}

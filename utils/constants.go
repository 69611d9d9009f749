package utils

// Application constants
const (
	// Application name
	AppName = "rauvfilm-sub002"

	// API version
	APIVersion = "v1"

	// Default port
	DefaultPort = "8080"

	// Default pagination limit
	DefaultPaginationLimit = 10

	// Maximum pagination limit
	MaxPaginationLimit = 100

	// Maximum accepted review URL length
	MaxReviewURLLength = 2048

	// Minimum name length
	MinNameLength = 2

	// Maximum name length
	MaxNameLength = 50
)

// Error messages
const (
	ErrInvalidReferralCode  = "Referral code not found"
	ErrReferralSelf         = "You cannot use your own referral code"
	ErrDuplicateReview      = "This review link has already been submitted"
	ErrInvalidReviewURL     = "Invalid review link"
	ErrReservationNotFound  = "Reservation not found"
	ErrBookingNotFound      = "Booking not found"
	ErrReviewNotFound       = "Review submission not found"
	ErrReviewTerminal       = "Review submission is already finalized"
	ErrAlreadyConfirmed     = "Reservation is already confirmed"
	ErrReservationCancelled = "Reservation has been cancelled"
	ErrInternalServer       = "Internal server error"
)

// Success messages
const (
	MsgReservationCreated = "Reservation submitted successfully"
	MsgReservationUpdated = "Reservation updated successfully"
	MsgReviewSubmitted    = "Review link submitted successfully"
)

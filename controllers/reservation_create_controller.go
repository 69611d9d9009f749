package controllers

import (
	"time"

	"github.com/dlw1rma/rauvfilm-sub002/config"
	"github.com/dlw1rma/rauvfilm-sub002/models"
	"github.com/dlw1rma/rauvfilm-sub002/utils"
	"github.com/gin-gonic/gin"
)

// CreateReservationRequest represents the public reservation submission
type CreateReservationRequest struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	EventDate   string `json:"event_date" binding:"required"`
	ProductType string `json:"product_type" binding:"required"`
	TotalAmount int64  `json:"total_amount" binding:"required"`
	TravelFee   int64  `json:"travel_fee"`
	ReferredBy  string `json:"referred_by"`
}

var validProductTypes = map[string]bool{
	models.ProductTierSub1: true,
	models.ProductTierSub2: true,
	models.ProductTierSub3: true,
	models.ProductTierMain: true,
}

// CreateReservation handles the public inquiry form submission. The
// reservation starts PENDING; a referral code entered here is validated
// immediately but only credited at confirmation.
func CreateReservation(c *gin.Context) {
	utils.LogInfo("CreateReservation called")

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid reservation request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if len(req.Name) < utils.MinNameLength || len(req.Name) > utils.MaxNameLength {
		utils.BadRequest(c, "Name must be between 2 and 50 characters", nil)
		return
	}
	if !validProductTypes[req.ProductType] {
		utils.BadRequest(c, "Unknown product type", nil)
		return
	}
	if req.TotalAmount <= 0 {
		utils.BadRequest(c, "Total amount must be greater than 0", nil)
		return
	}
	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		utils.BadRequest(c, "Event date must be YYYY-MM-DD", nil)
		return
	}

	// A bad referral code is a validation error reported before any state
	// is written, not a silent no-op.
	if req.ReferredBy != "" {
		if _, appErr := utils.ResolveReferralCode(config.DB, req.ReferredBy); appErr != nil {
			if utils.IsNotFoundError(appErr) {
				utils.LogInfo("Rejected unknown referral code on submission: %s", req.ReferredBy)
				utils.BadRequest(c, utils.ErrInvalidReferralCode, nil)
				return
			}
			utils.LogError("Referral lookup failed: %v", appErr)
			utils.RespondError(c, appErr)
			return
		}
	}

	nameEnc, err := utils.SealField(req.Name)
	if err != nil {
		utils.LogError("Failed to seal customer name: %v", err)
		utils.InternalServerError(c, utils.ErrInternalServer, nil)
		return
	}
	phoneEnc, err := utils.SealField(req.Phone)
	if err != nil {
		utils.LogError("Failed to seal customer phone: %v", err)
		utils.InternalServerError(c, utils.ErrInternalServer, nil)
		return
	}

	reservation := models.Reservation{
		CustomerNameEnc:  nameEnc,
		CustomerPhoneEnc: phoneEnc,
		EventDate:        eventDate,
		ProductType:      req.ProductType,
		TotalAmount:      req.TotalAmount,
		DepositAmount:    config.Policy.DepositAmount,
		TravelFee:        req.TravelFee,
		ReferredBy:       req.ReferredBy,
		Status:           models.ReservationStatusPending,
	}
	breakdown := utils.RecalculateReservation(&reservation)

	if err := config.DB.Create(&reservation).Error; err != nil {
		utils.LogError("Failed to create reservation: %v", err)
		utils.InternalServerError(c, utils.ErrInternalServer, nil)
		return
	}

	utils.LogInfo("Reservation %d created, final balance %d", reservation.ID, reservation.FinalBalance)
	utils.Created(c, utils.MsgReservationCreated, gin.H{
		"reservation_id": reservation.ID,
		"status":         reservation.Status,
		"balance":        breakdown,
	})
}

// GetReservationBalance returns the current balance breakdown, recomputed
// from the stored discount components on every read.
func GetReservationBalance(c *gin.Context) {
	var reservation models.Reservation
	if err := config.DB.First(&reservation, c.Param("id")).Error; err != nil {
		utils.NotFound(c, utils.ErrReservationNotFound)
		return
	}

	breakdown := utils.RecalculateReservation(&reservation)
	utils.Success(c, "Balance computed", gin.H{
		"reservation_id":       reservation.ID,
		"status":               reservation.Status,
		"raw_footage_unlocked": reservation.RawFootageUnlocked,
		"balance":              breakdown,
	})
}

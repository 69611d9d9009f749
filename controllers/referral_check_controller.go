package controllers

import (
	"github.com/dlw1rma/rauvfilm-sub002/config"
	"github.com/dlw1rma/rauvfilm-sub002/utils"
	"github.com/gin-gonic/gin"
)

// CheckReferralCode validates a referral code before the customer submits
// the reservation form. Matching tolerates spaced and unspaced forms and
// only confirmed records count.
func CheckReferralCode(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		utils.BadRequest(c, "code query parameter is required", nil)
		return
	}

	referrer, appErr := utils.ResolveReferralCode(config.DB, code)
	if appErr != nil {
		if !utils.IsNotFoundError(appErr) {
			utils.LogError("Referral check failed for %q: %v", code, appErr)
		}
		utils.RespondError(c, appErr)
		return
	}

	name, err := utils.OpenField(referrer.CustomerNameEnc)
	if err != nil {
		utils.LogError("Failed to open referrer name for reservation %d: %v", referrer.ID, err)
		name = ""
	}

	utils.Success(c, "Referral code is valid", gin.H{
		"valid":         true,
		"referrer_name": utils.MaskName(name),
	})
}

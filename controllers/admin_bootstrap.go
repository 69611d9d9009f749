package controllers

import (
	"os"

	"github.com/dlw1rma/rauvfilm-sub002/config"
	"github.com/dlw1rma/rauvfilm-sub002/models"
	"github.com/dlw1rma/rauvfilm-sub002/utils"
	"gorm.io/gorm"
)

// CreateSampleAdmin ensures the ops admin record referenced by the bearer
// tokens exists. Token issuance itself lives in the website layer.
func CreateSampleAdmin() error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		utils.LogInfo("ADMIN_EMAIL not set, skipping admin bootstrap")
		return nil
	}

	var admin models.Admin
	err := config.DB.Where("email = ?", email).First(&admin).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	admin = models.Admin{
		Email:     email,
		FirstName: "Studio",
		LastName:  "Admin",
		IsActive:  true,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		return err
	}

	utils.LogInfo("Bootstrapped admin account %s", email)
	return nil
}

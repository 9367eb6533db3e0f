package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/savoria/restaurant-backend/models"
	"github.com/savoria/restaurant-backend/utils"
)

type NewsletterController struct {
	DB *gorm.DB
}

func NewNewsletterController(db *gorm.DB) *NewsletterController {
	return &NewsletterController{DB: db}
}

// Subscribe -> append a subscriber; emails are unique case-insensitively.
func (nc *NewsletterController) Subscribe(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		utils.RespondError(c, http.StatusBadRequest, ErrEmailRequired)
		return
	}

	var count int64
	if err := nc.DB.Model(&models.NewsletterSubscriber{}).
		Where("LOWER(email) = LOWER(?)", req.Email).
		Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if count > 0 {
		utils.RespondError(c, http.StatusConflict, ErrAlreadySubscribed)
		return
	}

	subscriber := models.NewsletterSubscriber{
		ID:           uuid.New().String(),
		Email:        req.Email,
		SubscribedAt: time.Now().UTC(),
	}

	if err := nc.DB.Create(&subscriber).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Newsletter subscription: %s", subscriber.Email)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Subscribed successfully",
	})
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/savoria/restaurant-backend/models"
	"github.com/savoria/restaurant-backend/utils"
)

type GalleryController struct {
	DB *gorm.DB
}

func NewGalleryController(db *gorm.DB) *GalleryController {
	return &GalleryController{DB: db}
}

// GetGallery -> list gallery items, same filter contract as the menu but over
// the gallery's own category domain.
func (gc *GalleryController) GetGallery(c *gin.Context) {
	items := []models.GalleryItem{}

	tx := gc.DB
	if category := c.Query("category"); category != "" && category != "all" {
		tx = tx.Where("category = ?", category)
	}

	if err := tx.Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/savoria/restaurant-backend/models"
	"github.com/savoria/restaurant-backend/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetMenu -> list menu items, optionally filtered by category. The filter
// matches the stored category verbatim; "all" means no filter.
func (mc *MenuController) GetMenu(c *gin.Context) {
	items := []models.MenuItem{}

	tx := mc.DB
	if category := c.Query("category"); category != "" && category != "all" {
		tx = tx.Where("category = ?", category)
	}

	if err := tx.Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/savoria/restaurant-backend/models"
	"github.com/savoria/restaurant-backend/utils"
)

type ReviewController struct {
	DB *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db}
}

// GetReviews -> full review collection in insertion order.
func (rc *ReviewController) GetReviews(c *gin.Context) {
	reviews := []models.Review{}
	if err := rc.DB.Find(&reviews).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateReview -> append a review. The id follows the collection count, the
// date is the server's UTC calendar day, and the avatar derives from the
// reviewer's initial. Email is required but not stored.
func (rc *ReviewController) CreateReview(c *gin.Context) {
	var req struct {
		Name    string      `json:"name"`
		Email   string      `json:"email"`
		Rating  interface{} `json:"rating"`
		Comment string      `json:"comment"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, ErrMissingFields)
		return
	}
	if req.Name == "" || req.Email == "" || req.Comment == "" || !ratingPresent(req.Rating) {
		utils.RespondError(c, http.StatusBadRequest, ErrMissingFields)
		return
	}

	var count int64
	if err := rc.DB.Model(&models.Review{}).Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	review := models.Review{
		ID:      uint(count) + 1,
		Name:    req.Name,
		Rating:  ratingValue(req.Rating),
		Date:    time.Now().UTC().Format("2006-01-02"),
		Comment: req.Comment,
		Avatar:  models.ReviewAvatar(req.Name),
	}

	if err := rc.DB.Create(&review).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New review #%d from %s (rating %v)", review.ID, review.Name, review.Rating)
	c.JSON(http.StatusCreated, review)
}

// ratingPresent reports whether the raw rating field was submitted with a
// non-zero value. The check runs on the raw JSON value, so the string "0"
// passes while the number 0 does not.
func ratingPresent(v interface{}) bool {
	switch r := v.(type) {
	case nil:
		return false
	case float64:
		return r != 0
	case string:
		return r != ""
	case bool:
		return r
	default:
		return true
	}
}

// ratingValue coerces the submitted rating to a number without clamping it to
// any range. Values that do not coerce are stored as zero.
func ratingValue(v interface{}) float64 {
	switch r := v.(type) {
	case float64:
		return r
	case string:
		f, err := strconv.ParseFloat(r, 64)
		if err != nil {
			return 0
		}
		return f
	case bool:
		if r {
			return 1
		}
		return 0
	default:
		return 0
	}
}

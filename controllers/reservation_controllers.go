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

// maxTablesPerSlot caps how many reservations share one exact (date, time)
// slot. The check is exact-instant equality, not interval overlap.
const maxTablesPerSlot = 10

type ReservationController struct {
	DB *gorm.DB
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{DB: db}
}

// CreateReservation -> validate, check slot capacity, append.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req struct {
		Name   string `json:"name"`
		Email  string `json:"email"`
		Phone  string `json:"phone"`
		Guests int    `json:"guests"`
		Date   string `json:"date"`
		Time   string `json:"time"`
		Notes  string `json:"notes"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, ErrMissingFields)
		return
	}
	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Guests == 0 || req.Date == "" || req.Time == "" {
		utils.RespondError(c, http.StatusBadRequest, ErrMissingFields)
		return
	}

	// Count reservations whose parsed date+time lands on the same instant.
	// Rows are re-parsed so two spellings of the same instant still collide;
	// an unparseable request never collides with anything.
	requested := models.Reservation{Date: req.Date, Time: req.Time}
	if slot, ok := requested.SlotTime(); ok {
		var existing []models.Reservation
		if err := rc.DB.Find(&existing).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}

		taken := 0
		for i := range existing {
			if t, ok := existing[i].SlotTime(); ok && t.Equal(slot) {
				taken++
			}
		}
		if taken >= maxTablesPerSlot {
			utils.RespondError(c, http.StatusConflict, ErrNoTables)
			return
		}
	}

	reservation := models.Reservation{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Guests:    req.Guests,
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,
		CreatedAt: time.Now().UTC(),
	}

	if err := rc.DB.Create(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %s for %s on %s %s (%d guests)",
		reservation.ID, reservation.Name, reservation.Date, reservation.Time, reservation.Guests)
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Reservation confirmed",
		"reservation": reservation,
	})
}

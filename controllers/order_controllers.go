package controllers

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/savoria/restaurant-backend/models"
	"github.com/savoria/restaurant-backend/utils"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// CreateOrder -> validate, snapshot menu prices into order items, append.
// Item lookup is interleaved with total accumulation: the first unknown menu
// id aborts the request and nothing is stored.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req struct {
		Items []struct {
			ID       uint `json:"id"`
			Quantity int  `json:"quantity"`
		} `json:"items"`
		Customer *models.OrderCustomer `json:"customer"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || len(req.Items) == 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrItemsRequired)
		return
	}
	if req.Customer == nil || req.Customer.Name == "" || req.Customer.Email == "" || req.Customer.Phone == "" {
		utils.RespondError(c, http.StatusBadRequest, ErrCustomerRequired)
		return
	}

	var total float64
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		var menuItem models.MenuItem
		if err := oc.DB.First(&menuItem, item.ID).Error; err != nil {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("Menu item with id %d not found", item.ID))
			return
		}

		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		total += menuItem.Price * float64(quantity)

		items = append(items, models.OrderItem{
			MenuItemID: menuItem.ID,
			Name:       menuItem.Name,
			Price:      menuItem.Price,
			Quantity:   quantity,
		})
	}

	now := time.Now().UTC()
	order := models.Order{
		ID:               uuid.New().String(),
		Items:            items,
		Customer:         *req.Customer,
		Total:            math.Round(total*100) / 100,
		Status:           models.StatusConfirmed,
		CreatedAt:        now,
		EstimatedArrival: now.Add(30 * time.Minute),
	}

	if err := oc.DB.Create(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Order %s placed by %s (%d items, total %.2f)",
		order.ID, order.Customer.Name, len(order.Items), order.Total)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
	})
}

// GetOrderStatus -> derive the status from elapsed time and write it back to
// the stored order before answering. The write-back makes this GET
// non-idempotent on purpose: the stored record tracks what the caller last
// saw.
func (oc *OrderController) GetOrderStatus(c *gin.Context) {
	orderID := c.Param("order_id")

	var order models.Order
	if err := oc.DB.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOrderNotFound)
		return
	}

	status := order.StatusAt(time.Now().UTC())
	if err := oc.DB.Model(&order).Update("status", status).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":               order.ID,
		"status":           status,
		"estimatedArrival": order.EstimatedArrival,
		"customer":         order.Customer,
		"items":            order.Items,
		"total":            order.Total,
	})
}

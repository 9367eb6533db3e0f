package models

import "time"

const (
	StatusConfirmed = "Order Confirmed"
	StatusPreparing = "Preparing"
	StatusOnTheWay  = "On the Way"
	StatusDelivered = "Delivered"
)

type OrderCustomer struct {
	Name  string `gorm:"type:varchar(255);not null" json:"name"`
	Email string `gorm:"type:varchar(255);not null" json:"email"`
	Phone string `gorm:"type:varchar(50);not null" json:"phone"`
}

type Order struct {
	ID               string        `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Items            []OrderItem   `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items"`
	Customer         OrderCustomer `gorm:"embedded;embeddedPrefix:customer_" json:"customer"`
	Total            float64       `gorm:"type:decimal(10,2);not null" json:"total"`
	Status           string        `gorm:"type:varchar(30);not null" json:"status"`
	CreatedAt        time.Time     `gorm:"not null" json:"createdAt"`
	EstimatedArrival time.Time     `gorm:"not null" json:"estimatedArrival"`
}

// StatusAt derives the tracking status from the whole minutes elapsed between
// the order's creation and now.
func (o *Order) StatusAt(now time.Time) string {
	minutes := int(now.Sub(o.CreatedAt).Minutes())
	switch {
	case minutes >= 25:
		return StatusDelivered
	case minutes >= 15:
		return StatusOnTheWay
	case minutes >= 5:
		return StatusPreparing
	default:
		return StatusConfirmed
	}
}

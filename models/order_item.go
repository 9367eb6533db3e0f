package models

// OrderItem snapshots a menu item's id, name and price at order time; later
// menu changes do not affect placed orders.
type OrderItem struct {
	ID         uint    `gorm:"primaryKey" json:"-"`
	OrderID    string  `gorm:"type:varchar(36);not null;index" json:"-"`
	MenuItemID uint    `gorm:"not null" json:"id"`
	Name       string  `gorm:"type:varchar(255);not null" json:"name"`
	Price      float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity   int     `gorm:"not null" json:"quantity"`
}

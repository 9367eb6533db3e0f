package models

type MenuItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"type:varchar(255);not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Image       string  `gorm:"type:varchar(255)" json:"image"`
	Category    string  `gorm:"type:varchar(50);not null;index" json:"category"`
	Rating      float64 `gorm:"type:decimal(2,1)" json:"rating"`
}

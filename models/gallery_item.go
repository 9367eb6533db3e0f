package models

type GalleryItem struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Image    string `gorm:"type:varchar(255);not null" json:"image"`
	Title    string `gorm:"type:varchar(255);not null" json:"title"`
	Category string `gorm:"type:varchar(50);not null;index" json:"category"`
}

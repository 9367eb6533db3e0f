package models

import "time"

type NewsletterSubscriber struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Email        string    `gorm:"type:varchar(255);not null" json:"email"`
	SubscribedAt time.Time `gorm:"not null" json:"subscribedAt"`
}

package models

import "time"

type Reservation struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone     string    `gorm:"type:varchar(50);not null" json:"phone"`
	Guests    int       `gorm:"not null" json:"guests"`
	Date      string    `gorm:"type:varchar(10);not null" json:"date"`
	Time      string    `gorm:"type:varchar(5);not null" json:"time"`
	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

// SlotTime parses the reservation's date and time into the instant used for
// the capacity check. ok is false when the pair does not parse; such a
// reservation never collides with any slot.
func (r *Reservation) SlotTime() (time.Time, bool) {
	t, err := time.Parse("2006-01-02T15:04:05", r.Date+"T"+r.Time+":00")
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

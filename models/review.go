package models

import (
	"net/url"
	"strings"
)

type Review struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"type:varchar(255);not null" json:"name"`
	Rating  float64 `gorm:"not null" json:"rating"`
	Date    string  `gorm:"type:varchar(10);not null" json:"date"`
	Comment string  `gorm:"type:text;not null" json:"comment"`
	Avatar  string  `gorm:"type:varchar(255)" json:"avatar"`
}

// ReviewAvatar builds the placeholder avatar URL from the uppercased first
// letter of the reviewer's name.
func ReviewAvatar(name string) string {
	initial := ""
	for _, r := range name {
		initial = strings.ToUpper(string(r))
		break
	}
	return "https://placehold.co/100x100?text=" + url.QueryEscape(initial)
}

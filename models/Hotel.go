package models

import (
	"gorm.io/gorm"
)

type Hotel struct {
	gorm.Model
	Name     string `json:"name"`
	Street   string `json:"street"`
	City     string `json:"city" gorm:"index"`
	Country  string `json:"country" gorm:"index"`
	Category int    `json:"category"` // star rating, 1-5
	Rooms    []Room `json:"rooms,omitempty" gorm:"foreignKey:HotelID;references:ID"`
}

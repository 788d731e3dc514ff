package models

import (
	"gorm.io/gorm"
)

type Employee struct {
	gorm.Model
	HotelID    uint   `json:"hotelID" gorm:"index;not null"`
	Hotel      Hotel  `json:"hotel,omitempty" gorm:"foreignKey:HotelID;references:ID"`
	Role       string `json:"role" gorm:"type:varchar(50)"` // manager, receptionist, ...
	FirstName  string `json:"firstName"`
	MiddleName string `json:"middleName"`
	LastName   string `json:"lastName"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	SSN        string `json:"-"`
	Email      string `json:"email" gorm:"uniqueIndex"`
	Password   string `json:"-"` // bcrypt hash, never serialized
}

package models

import (
	"time"

	"gorm.io/gorm"
)

type Customer struct {
	gorm.Model
	FirstName    string    `json:"firstName"`
	MiddleName   string    `json:"middleName"`
	LastName     string    `json:"lastName"`
	Street       string    `json:"street"`
	City         string    `json:"city"`
	PostalCode   string    `json:"postalCode"`
	Email        string    `json:"email" gorm:"uniqueIndex"`
	PhoneNumber  string    `json:"phoneNumber"`
	IDType       string    `json:"idType"` // Passport, Driver's Licence, SSN
	RegisteredAt time.Time `json:"registeredAt" gorm:"type:date"`
	Password     string    `json:"-"` // bcrypt hash, never serialized
}

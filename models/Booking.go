package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking is a tentative, unpaid hold on a room. It keeps the room out of
// availability for its stay range but carries no payment or staff data.
// Deleting it (cancellation or promotion into a Renting) releases the hold.
type Booking struct {
	gorm.Model
	RoomID     uint      `json:"roomID" gorm:"index;not null"`
	Room       Room      `json:"room,omitempty" gorm:"foreignKey:RoomID;references:ID"`
	CustomerID uint      `json:"customerID" gorm:"index;not null"`
	Customer   Customer  `json:"customer,omitempty" gorm:"foreignKey:CustomerID;references:ID"`
	CheckIn    time.Time `json:"checkIn" gorm:"type:date;index"`
	CheckOut   time.Time `json:"checkOut" gorm:"type:date"`
}

func (b *Booking) Interval() Interval {
	return NewInterval(b.CheckIn, b.CheckOut)
}

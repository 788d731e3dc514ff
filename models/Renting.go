package models

import (
	"time"

	"gorm.io/gorm"
)

// Renting is a finalized, paid occupancy record: who stayed, which employee
// executed the transaction and the payment instrument used. Immutable once
// created. Card data is stored opaquely and never serialized or charged.
type Renting struct {
	gorm.Model
	RoomID     uint      `json:"roomID" gorm:"index;not null"`
	Room       Room      `json:"room,omitempty" gorm:"foreignKey:RoomID;references:ID"`
	CustomerID uint      `json:"customerID" gorm:"index;not null"`
	Customer   Customer  `json:"customer,omitempty" gorm:"foreignKey:CustomerID;references:ID"`
	EmployeeID uint      `json:"employeeID" gorm:"index;not null"`
	Employee   Employee  `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;references:ID"`
	CheckIn    time.Time `json:"checkIn" gorm:"type:date;index"`
	CheckOut   time.Time `json:"checkOut" gorm:"type:date"`
	CardNumber string    `json:"-"`
	CardCVV    string    `json:"-"`
	CardExpiry string    `json:"-"`
}

func (r *Renting) Interval() Interval {
	return NewInterval(r.CheckIn, r.CheckOut)
}

package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Room struct {
	gorm.Model
	HotelID      uint           `json:"hotelID" gorm:"index;not null"`
	Hotel        Hotel          `json:"hotel,omitempty" gorm:"foreignKey:HotelID;references:ID"`
	Price        float64        `json:"price"`
	Capacity     int            `json:"capacity"`
	Amenities    datatypes.JSON `json:"amenities" gorm:"type:jsonb"`
	SeaView      bool           `json:"seaView"`
	MountainView bool           `json:"mountainView"`
	Extendable   bool           `json:"extendable"`
	DamageStatus string         `json:"damageStatus" gorm:"type:varchar(50);default:'none'"`
}

// Custom JSON marshaling so the stored amenities column is always exposed as
// an array, never null.
func (r *Room) MarshalJSON() ([]byte, error) {
	type Alias Room
	aux := &struct {
		Amenities []string `json:"amenities"`
		Hotel     *Hotel   `json:"hotel,omitempty"`
		*Alias
	}{
		Amenities: []string{},
		Alias:     (*Alias)(r),
	}

	if r.Amenities != nil {
		var amenities []string
		if err := json.Unmarshal(r.Amenities, &amenities); err == nil {
			aux.Amenities = amenities
		}
	}

	if r.Hotel.ID != 0 {
		aux.Hotel = &r.Hotel
	}

	return json.Marshal(aux)
}

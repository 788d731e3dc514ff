package services

import (
	"context"

	"hotel-reservation-server/models"
	"hotel-reservation-server/storage"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AvailabilityService answers which rooms are free over a date range.
type AvailabilityService struct{}

func NewAvailabilityService() *AvailabilityService {
	return &AvailabilityService{}
}

// RoomFilter narrows an availability search. Zero values mean "no filter";
// filters that are set apply conjunctively.
type RoomFilter struct {
	MinCapacity int
	Category    int
	Country     string
	City        string
}

// AvailableRoom is a room joined with its hotel context, as returned by a
// search.
type AvailableRoom struct {
	RoomID        uint           `json:"roomID"`
	HotelID       uint           `json:"hotelID"`
	HotelName     string         `json:"hotelName"`
	Street        string         `json:"street"`
	City          string         `json:"city"`
	Country       string         `json:"country"`
	HotelCategory int            `json:"hotelCategory"`
	Price         float64        `json:"price"`
	Capacity      int            `json:"capacity"`
	Amenities     datatypes.JSON `json:"amenities"`
	SeaView       bool           `json:"seaView"`
	MountainView  bool           `json:"mountainView"`
	Extendable    bool           `json:"extendable"`
	DamageStatus  string         `json:"damageStatus"`
}

// FindAvailableRooms returns every room with no booking or renting whose
// stay overlaps target. A room occupied by a finalized renting is just as
// unavailable as one held by a booking. No qualifying rooms is an empty
// result, not an error.
func (s *AvailabilityService) FindAvailableRooms(ctx context.Context, target models.Interval, filter RoomFilter) ([]AvailableRoom, error) {
	if !target.Valid() {
		return nil, ErrInvalidInterval
	}

	rooms := []AvailableRoom{}
	err := withReadRetry(ctx, func() error {
		rooms = rooms[:0]
		return availableRoomsQuery(storage.DB.WithContext(ctx), target, filter).Scan(&rooms).Error
	})
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func availableRoomsQuery(db *gorm.DB, target models.Interval, filter RoomFilter) *gorm.DB {
	q := db.Table("rooms").
		Select(`rooms.id AS room_id, rooms.hotel_id, hotels.name AS hotel_name,
			hotels.street, hotels.city, hotels.country, hotels.category AS hotel_category,
			rooms.price, rooms.capacity, rooms.amenities, rooms.sea_view,
			rooms.mountain_view, rooms.extendable, rooms.damage_status`).
		Joins("JOIN hotels ON hotels.id = rooms.hotel_id").
		Where("rooms.deleted_at IS NULL AND hotels.deleted_at IS NULL").
		Where(`NOT EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.room_id = rooms.id AND b.deleted_at IS NULL
			AND b.check_out > ? AND b.check_in < ?)`, target.CheckIn, target.CheckOut).
		Where(`NOT EXISTS (
			SELECT 1 FROM rentings r
			WHERE r.room_id = rooms.id AND r.deleted_at IS NULL
			AND r.check_out > ? AND r.check_in < ?)`, target.CheckIn, target.CheckOut)

	if filter.MinCapacity > 0 {
		q = q.Where("rooms.capacity >= ?", filter.MinCapacity)
	}
	if filter.Category > 0 {
		q = q.Where("hotels.category = ?", filter.Category)
	}
	if filter.Country != "" {
		q = q.Where("hotels.country = ?", filter.Country)
	}
	if filter.City != "" {
		q = q.Where("hotels.city = ?", filter.City)
	}
	return q
}

// roomOccupied reports whether any booking or renting on the room overlaps
// target. Runs inside the caller's transaction so the answer stays true
// until commit.
func roomOccupied(tx *gorm.DB, roomID uint, target models.Interval) (bool, error) {
	var count int64
	err := tx.Model(&models.Booking{}).
		Where("room_id = ? AND check_out > ? AND check_in < ?", roomID, target.CheckIn, target.CheckOut).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}

	err = tx.Model(&models.Renting{}).
		Where("room_id = ? AND check_out > ? AND check_in < ?", roomID, target.CheckIn, target.CheckOut).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

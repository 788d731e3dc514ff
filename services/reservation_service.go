package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hotel-reservation-server/models"
	"hotel-reservation-server/storage"
	"hotel-reservation-server/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReservationService owns booking records and room details.
type ReservationService struct{}

func NewReservationService() *ReservationService {
	return &ReservationService{}
}

// CreateBooking places a tentative hold on a room. The overlap check and the
// insert run in one transaction under a row lock on the room, so two
// concurrent holds for overlapping dates cannot both commit: the loser gets
// ErrConflict. The old advisory search-then-insert flow allowed exactly that
// double booking.
func (s *ReservationService) CreateBooking(ctx context.Context, roomID, customerID uint, target models.Interval) (uint, error) {
	if !target.Valid() {
		return 0, ErrInvalidInterval
	}

	var booking models.Booking
	err := storage.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := lockForUpdate(tx).First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("room", roomID)
			}
			return err
		}

		var customer models.Customer
		if err := tx.First(&customer, customerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("customer", customerID)
			}
			return err
		}

		occupied, err := roomOccupied(tx, roomID, target)
		if err != nil {
			return err
		}
		if occupied {
			return ErrConflict
		}

		booking = models.Booking{
			RoomID:     roomID,
			CustomerID: customerID,
			CheckIn:    target.CheckIn,
			CheckOut:   target.CheckOut,
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return 0, err
	}

	invalidateAreaCache(ctx)
	utils.Audit("customer", customerID, "booking.create", "booking", booking.ID, nil, &booking)
	return booking.ID, nil
}

// DeleteBooking cancels a hold. Customers may only cancel their own
// bookings; employees may cancel any.
func (s *ReservationService) DeleteBooking(ctx context.Context, bookingID, callerID uint, byEmployee bool) error {
	var booking models.Booking
	err := storage.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("booking", bookingID)
			}
			return err
		}
		if !byEmployee && booking.CustomerID != callerID {
			return ErrNotOwner
		}
		return tx.Delete(&booking).Error
	})
	if err != nil {
		return err
	}

	invalidateAreaCache(ctx)
	actorType := "customer"
	if byEmployee {
		actorType = "employee"
	}
	utils.Audit(actorType, callerID, "booking.cancel", "booking", bookingID, &booking, nil)
	return nil
}

// CustomerBooking is a booking joined with its room and hotel, as shown to
// the customer who holds it.
type CustomerBooking struct {
	BookingID  uint      `json:"bookingID"`
	RoomID     uint      `json:"roomID"`
	HotelName  string    `json:"hotelName"`
	Price      float64   `json:"price"`
	CheckIn    time.Time `json:"checkIn"`
	CheckOut   time.Time `json:"checkOut"`
	TotalPrice float64   `json:"totalPrice" gorm:"-"`
}

func (s *ReservationService) ListBookingsForCustomer(ctx context.Context, customerID uint) ([]CustomerBooking, error) {
	bookings := []CustomerBooking{}
	err := withReadRetry(ctx, func() error {
		bookings = bookings[:0]
		return storage.DB.WithContext(ctx).Table("bookings").
			Select(`bookings.id AS booking_id, bookings.room_id, hotels.name AS hotel_name,
				rooms.price, bookings.check_in, bookings.check_out`).
			Joins("JOIN rooms ON rooms.id = bookings.room_id").
			Joins("JOIN hotels ON hotels.id = rooms.hotel_id").
			Where("bookings.deleted_at IS NULL AND bookings.customer_id = ?", customerID).
			Order("bookings.check_in DESC").
			Scan(&bookings).Error
	})
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		stay := models.NewInterval(bookings[i].CheckIn, bookings[i].CheckOut)
		bookings[i].TotalPrice = float64(stay.Nights()) * bookings[i].Price
	}
	return bookings, nil
}

// HotelBooking is a booking joined with its room and customer, as shown to
// hotel staff.
type HotelBooking struct {
	BookingID  uint      `json:"bookingID"`
	RoomID     uint      `json:"roomID"`
	CustomerID uint      `json:"customerID"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	CheckIn    time.Time `json:"checkIn"`
	CheckOut   time.Time `json:"checkOut"`
}

func (s *ReservationService) ListBookingsForHotel(ctx context.Context, hotelID uint) ([]HotelBooking, error) {
	bookings := []HotelBooking{}
	err := withReadRetry(ctx, func() error {
		bookings = bookings[:0]
		return storage.DB.WithContext(ctx).Table("bookings").
			Select(`bookings.id AS booking_id, bookings.room_id, customers.id AS customer_id,
				customers.first_name, customers.last_name, bookings.check_in, bookings.check_out`).
			Joins("JOIN rooms ON rooms.id = bookings.room_id").
			Joins("JOIN customers ON customers.id = bookings.customer_id").
			Where("bookings.deleted_at IS NULL AND rooms.hotel_id = ?", hotelID).
			Order("bookings.check_in DESC").
			Scan(&bookings).Error
	})
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// RoomUpdate carries the full replacement state for a room's mutable
// fields. Every field is written, including zero values.
type RoomUpdate struct {
	Price        float64
	Capacity     int
	Amenities    []string
	SeaView      bool
	MountainView bool
	Extendable   bool
	DamageStatus string
}

func (s *ReservationService) UpdateRoomDetails(ctx context.Context, roomID, employeeID uint, update RoomUpdate) error {
	amenities := update.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	amenitiesJSON, err := marshalAmenities(amenities)
	if err != nil {
		return err
	}

	var room models.Room
	err = storage.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("room", roomID)
			}
			return err
		}

		var employee models.Employee
		if err := tx.First(&employee, employeeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("employee", employeeID)
			}
			return err
		}
		// map form so zero values (capacity 0, flags false) overwrite
		return tx.Model(&room).Updates(map[string]interface{}{
			"price":         update.Price,
			"capacity":      update.Capacity,
			"amenities":     amenitiesJSON,
			"sea_view":      update.SeaView,
			"mountain_view": update.MountainView,
			"extendable":    update.Extendable,
			"damage_status": update.DamageStatus,
		}).Error
	})
	if err != nil {
		return err
	}

	utils.Audit("employee", employeeID, "room.update", "room", roomID, nil, &update)
	return nil
}

func marshalAmenities(amenities []string) (datatypes.JSON, error) {
	b, err := json.Marshal(amenities)
	if err != nil {
		return nil, fmt.Errorf("%w: amenities: %v", ErrInvalidArgument, err)
	}
	return datatypes.JSON(b), nil
}

// lockForUpdate takes a row lock where the dialect supports it. SQLite (used
// in tests) serializes writers on its own and rejects FOR UPDATE syntax.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

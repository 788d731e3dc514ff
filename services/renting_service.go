package services

import (
	"context"
	"errors"

	"hotel-reservation-server/models"
	"hotel-reservation-server/storage"
	"hotel-reservation-server/utils"

	"gorm.io/gorm"
)

// RentingService finalizes stays: it promotes bookings into rentings and
// records walk-in rentings.
type RentingService struct{}

func NewRentingService() *RentingService {
	return &RentingService{}
}

// PaymentInstrument is the card reference attached to a renting. Stored
// opaquely; never validated, charged or returned to callers.
type PaymentInstrument struct {
	CardNumber string
	CVV        string
	Expiry     string
}

// PromoteBooking converts a booking into a renting. The renting copies the
// booking's room, customer and stay dates verbatim and attaches the
// operating employee plus payment data. The booking is consumed in the same
// transaction: leaving the hold behind would keep the room blocked for dates
// the renting already covers.
func (s *RentingService) PromoteBooking(ctx context.Context, bookingID, employeeID uint, payment PaymentInstrument) (uint, error) {
	var renting models.Renting
	err := storage.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := lockForUpdate(tx).First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("booking", bookingID)
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

		renting = models.Renting{
			RoomID:     booking.RoomID,
			CustomerID: booking.CustomerID,
			EmployeeID: employeeID,
			CheckIn:    booking.CheckIn,
			CheckOut:   booking.CheckOut,
			CardNumber: payment.CardNumber,
			CardCVV:    payment.CVV,
			CardExpiry: payment.Expiry,
		}
		if err := tx.Create(&renting).Error; err != nil {
			return err
		}
		return tx.Delete(&booking).Error
	})
	if err != nil {
		return 0, err
	}

	invalidateAreaCache(ctx)
	utils.Audit("employee", employeeID, "booking.promote", "renting", renting.ID, nil, &renting)
	return renting.ID, nil
}

// CreateRenting records a walk-in stay with no prior booking. Same locked
// overlap protocol as CreateBooking: a room already held or occupied for the
// dates yields ErrConflict.
func (s *RentingService) CreateRenting(ctx context.Context, roomID, customerID, employeeID uint, target models.Interval, payment PaymentInstrument) (uint, error) {
	if !target.Valid() {
		return 0, ErrInvalidInterval
	}

	var renting models.Renting
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

		var employee models.Employee
		if err := tx.First(&employee, employeeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("employee", employeeID)
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

		renting = models.Renting{
			RoomID:     roomID,
			CustomerID: customerID,
			EmployeeID: employeeID,
			CheckIn:    target.CheckIn,
			CheckOut:   target.CheckOut,
			CardNumber: payment.CardNumber,
			CardCVV:    payment.CVV,
			CardExpiry: payment.Expiry,
		}
		return tx.Create(&renting).Error
	})
	if err != nil {
		return 0, err
	}

	invalidateAreaCache(ctx)
	utils.Audit("employee", employeeID, "renting.create", "renting", renting.ID, nil, &renting)
	return renting.ID, nil
}

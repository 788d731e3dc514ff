package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel-reservation-server/models"
	"hotel-reservation-server/storage"
	"hotel-reservation-server/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DirectoryService serves the hotel/room catalog and manages customer and
// employee accounts.
type DirectoryService struct{}

func NewDirectoryService() *DirectoryService {
	return &DirectoryService{}
}

func (s *DirectoryService) Countries(ctx context.Context) ([]string, error) {
	countries := []string{}
	err := withReadRetry(ctx, func() error {
		countries = countries[:0]
		return storage.DB.WithContext(ctx).Model(&models.Hotel{}).
			Distinct("country").Order("country").
			Pluck("country", &countries).Error
	})
	if err != nil {
		return nil, err
	}
	return countries, nil
}

func (s *DirectoryService) Cities(ctx context.Context, country string) ([]string, error) {
	cities := []string{}
	err := withReadRetry(ctx, func() error {
		cities = cities[:0]
		return storage.DB.WithContext(ctx).Model(&models.Hotel{}).
			Where("country = ?", country).
			Distinct("city").Order("city").
			Pluck("city", &cities).Error
	})
	if err != nil {
		return nil, err
	}
	return cities, nil
}

func (s *DirectoryService) Hotels(ctx context.Context) ([]models.Hotel, error) {
	hotels := []models.Hotel{}
	err := withReadRetry(ctx, func() error {
		hotels = hotels[:0]
		return storage.DB.WithContext(ctx).Order("name").Find(&hotels).Error
	})
	if err != nil {
		return nil, err
	}
	return hotels, nil
}

func (s *DirectoryService) RoomsByHotel(ctx context.Context, hotelID uint) ([]models.Room, error) {
	rooms := []models.Room{}
	err := withReadRetry(ctx, func() error {
		rooms = rooms[:0]
		return storage.DB.WithContext(ctx).Where("hotel_id = ?", hotelID).Find(&rooms).Error
	})
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

type CustomerInput struct {
	FirstName   string
	MiddleName  string
	LastName    string
	Street      string
	City        string
	PostalCode  string
	Email       string
	PhoneNumber string
	IDType      string
	Password    string
}

// RegisterCustomer creates a customer account. The password is stored as a
// bcrypt hash, never as the raw secret. Registration date is stamped
// server-side.
func (s *DirectoryService) RegisterCustomer(ctx context.Context, input CustomerInput) (uint, error) {
	if !utils.ValidatePhoneNumber(input.PhoneNumber) {
		return 0, fmt.Errorf("%w: phone number %q", ErrInvalidArgument, input.PhoneNumber)
	}

	hashed, err := hashAndSaltPassword(input.Password)
	if err != nil {
		return 0, err
	}

	idType := input.IDType
	if idType == "driverLicense" {
		idType = "Driver's Licence"
	}

	customer := models.Customer{
		FirstName:    input.FirstName,
		MiddleName:   input.MiddleName,
		LastName:     input.LastName,
		Street:       input.Street,
		City:         input.City,
		PostalCode:   input.PostalCode,
		Email:        input.Email,
		PhoneNumber:  utils.NormalizePhoneNumber(input.PhoneNumber),
		IDType:       idType,
		RegisteredAt: models.CanonicalDate(time.Now()),
		Password:     hashed,
	}
	if err := storage.DB.WithContext(ctx).Create(&customer).Error; err != nil {
		return 0, err
	}
	return customer.ID, nil
}

// VerifyCustomer checks a submitted secret against the stored hash and
// returns the customer's identity. The stored credential never leaves the
// service.
func (s *DirectoryService) VerifyCustomer(ctx context.Context, email, password string) (uint, error) {
	var customer models.Customer
	err := withReadRetry(ctx, func() error {
		return storage.DB.WithContext(ctx).Where("email = ?", email).First(&customer).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrInvalidCredentials
		}
		return 0, err
	}
	if bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(password)) != nil {
		return 0, ErrInvalidCredentials
	}
	return customer.ID, nil
}

type EmployeeInput struct {
	HotelID    uint
	Role       string
	FirstName  string
	MiddleName string
	LastName   string
	Street     string
	City       string
	PostalCode string
	SSN        string
	Email      string
	Password   string
}

func (s *DirectoryService) RegisterEmployee(ctx context.Context, input EmployeeInput) (uint, error) {
	hashed, err := hashAndSaltPassword(input.Password)
	if err != nil {
		return 0, err
	}

	var hotel models.Hotel
	if err := storage.DB.WithContext(ctx).First(&hotel, input.HotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, notFound("hotel", input.HotelID)
		}
		return 0, err
	}

	employee := models.Employee{
		HotelID:    input.HotelID,
		Role:       input.Role,
		FirstName:  input.FirstName,
		MiddleName: input.MiddleName,
		LastName:   input.LastName,
		Street:     input.Street,
		City:       input.City,
		PostalCode: input.PostalCode,
		SSN:        input.SSN,
		Email:      input.Email,
		Password:   hashed,
	}
	if err := storage.DB.WithContext(ctx).Create(&employee).Error; err != nil {
		return 0, err
	}
	return employee.ID, nil
}

// VerifyEmployee returns the employee's identity and hotel on success.
func (s *DirectoryService) VerifyEmployee(ctx context.Context, email, password string) (uint, uint, error) {
	var employee models.Employee
	err := withReadRetry(ctx, func() error {
		return storage.DB.WithContext(ctx).Where("email = ?", email).First(&employee).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, ErrInvalidCredentials
		}
		return 0, 0, err
	}
	if bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(password)) != nil {
		return 0, 0, ErrInvalidCredentials
	}
	return employee.ID, employee.HotelID, nil
}

func hashAndSaltPassword(password string) (hashedPassword string, err error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"hotel-reservation-server/models"
	"hotel-reservation-server/storage"
)

func TestRegisterAndVerifyCustomer(t *testing.T) {
	setupTestDB(t)
	svc := NewDirectoryService()
	ctx := context.Background()

	customerID, err := svc.RegisterCustomer(ctx, CustomerInput{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Street:      "2 Side St",
		City:        "Ottawa",
		PostalCode:  "K1A 0A1",
		Email:       "ada@example.com",
		PhoneNumber: "613-555-0100",
		IDType:      "driverLicense",
		Password:    "correct horse battery",
	})
	if err != nil {
		t.Fatalf("RegisterCustomer: %v", err)
	}

	var stored models.Customer
	if err := storage.DB.First(&stored, customerID).Error; err != nil {
		t.Fatalf("reload customer: %v", err)
	}
	if stored.Password == "correct horse battery" {
		t.Error("password must be stored hashed, not in the clear")
	}
	if stored.PhoneNumber != "(613) 555-0100" {
		t.Errorf("expected normalized phone, got %q", stored.PhoneNumber)
	}
	if stored.IDType != "Driver's Licence" {
		t.Errorf("expected aliased id type, got %q", stored.IDType)
	}

	gotID, err := svc.VerifyCustomer(ctx, "ada@example.com", "correct horse battery")
	if err != nil {
		t.Fatalf("VerifyCustomer: %v", err)
	}
	if gotID != customerID {
		t.Errorf("expected customer %d, got %d", customerID, gotID)
	}

	if _, err := svc.VerifyCustomer(ctx, "ada@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.VerifyCustomer(ctx, "nobody@example.com", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestRegisterCustomerBadPhone(t *testing.T) {
	setupTestDB(t)
	svc := NewDirectoryService()

	_, err := svc.RegisterCustomer(context.Background(), CustomerInput{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		PhoneNumber: "12",
		Password:    "correct horse battery",
	})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for undialable phone, got %v", err)
	}
}

func TestRegisterAndVerifyEmployee(t *testing.T) {
	setupTestDB(t)
	svc := NewDirectoryService()
	ctx := context.Background()

	hotel := seedHotel(t, "Harbour View", "Halifax", "Canada", 4)

	employeeID, err := svc.RegisterEmployee(ctx, EmployeeInput{
		HotelID:    hotel.ID,
		Role:       "manager",
		FirstName:  "Grace",
		LastName:   "Hopper",
		Street:     "3 Back St",
		City:       "Halifax",
		PostalCode: "B3H 0A1",
		SSN:        "000-00-0000",
		Email:      "grace@example.com",
		Password:   "s3cret-enough",
	})
	if err != nil {
		t.Fatalf("RegisterEmployee: %v", err)
	}

	gotID, gotHotel, err := svc.VerifyEmployee(ctx, "grace@example.com", "s3cret-enough")
	if err != nil {
		t.Fatalf("VerifyEmployee: %v", err)
	}
	if gotID != employeeID || gotHotel != hotel.ID {
		t.Errorf("expected employee %d at hotel %d, got %d at %d", employeeID, hotel.ID, gotID, gotHotel)
	}

	if _, err := svc.RegisterEmployee(ctx, EmployeeInput{HotelID: 9999, Email: "x@example.com", Password: "whatever9"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown hotel, got %v", err)
	}
}

func TestCountriesAndCities(t *testing.T) {
	setupTestDB(t)
	svc := NewDirectoryService()
	ctx := context.Background()

	seedHotel(t, "Le Quai", "Nice", "France", 5)
	seedHotel(t, "Harbour View", "Halifax", "Canada", 4)
	seedHotel(t, "Old Port", "Montreal", "Canada", 3)
	seedHotel(t, "Second Harbour", "Halifax", "Canada", 2)

	countries, err := svc.Countries(ctx)
	if err != nil {
		t.Fatalf("Countries: %v", err)
	}
	if !reflect.DeepEqual(countries, []string{"Canada", "France"}) {
		t.Errorf("expected sorted distinct countries, got %v", countries)
	}

	cities, err := svc.Cities(ctx, "Canada")
	if err != nil {
		t.Fatalf("Cities: %v", err)
	}
	if !reflect.DeepEqual(cities, []string{"Halifax", "Montreal"}) {
		t.Errorf("expected sorted distinct cities, got %v", cities)
	}
}

func TestRoomsByHotel(t *testing.T) {
	setupTestDB(t)
	svc := NewDirectoryService()
	ctx := context.Background()

	hotel := seedHotel(t, "Harbour View", "Halifax", "Canada", 4)
	other := seedHotel(t, "Le Quai", "Nice", "France", 5)
	seedRoom(t, hotel.ID, 120, 2)
	seedRoom(t, hotel.ID, 140, 3)
	seedRoom(t, other.ID, 300, 4)

	rooms, err := svc.RoomsByHotel(ctx, hotel.ID)
	if err != nil {
		t.Fatalf("RoomsByHotel: %v", err)
	}
	if len(rooms) != 2 {
		t.Errorf("expected 2 rooms, got %d", len(rooms))
	}
}

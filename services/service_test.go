package services

import (
	"testing"
	"time"

	"hotel-reservation-server/models"
	"hotel-reservation-server/storage"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB swaps the global store for an in-memory sqlite database. The
// pool is pinned to a single connection so every query sees the same
// :memory: instance.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Hotel{},
		&models.Room{},
		&models.Customer{},
		&models.Employee{},
		&models.Booking{},
		&models.Renting{},
		&models.AuditLog{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	storage.DB = db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func interval(t *testing.T, inY int, inM time.Month, inD, outY int, outM time.Month, outD int) models.Interval {
	t.Helper()
	return models.NewInterval(date(inY, inM, inD), date(outY, outM, outD))
}

func seedHotel(t *testing.T, name, city, country string, category int) models.Hotel {
	t.Helper()
	hotel := models.Hotel{Name: name, Street: "1 Main St", City: city, Country: country, Category: category}
	if err := storage.DB.Create(&hotel).Error; err != nil {
		t.Fatalf("seed hotel: %v", err)
	}
	return hotel
}

func seedRoom(t *testing.T, hotelID uint, price float64, capacity int) models.Room {
	t.Helper()
	room := models.Room{HotelID: hotelID, Price: price, Capacity: capacity, DamageStatus: "none"}
	if err := storage.DB.Create(&room).Error; err != nil {
		t.Fatalf("seed room: %v", err)
	}
	return room
}

func seedCustomer(t *testing.T, email string) models.Customer {
	t.Helper()
	customer := models.Customer{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Street:       "2 Side St",
		City:         "Ottawa",
		PostalCode:   "K1A 0A1",
		Email:        email,
		PhoneNumber:  "(613) 555-0100",
		IDType:       "Passport",
		RegisteredAt: models.CanonicalDate(time.Now()),
		Password:     "not-a-real-hash",
	}
	if err := storage.DB.Create(&customer).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return customer
}

func seedEmployee(t *testing.T, hotelID uint, email string) models.Employee {
	t.Helper()
	employee := models.Employee{
		HotelID:    hotelID,
		Role:       "receptionist",
		FirstName:  "Grace",
		LastName:   "Hopper",
		Street:     "3 Back St",
		City:       "Ottawa",
		PostalCode: "K1A 0A2",
		SSN:        "000-00-0000",
		Email:      email,
		Password:   "not-a-real-hash",
	}
	if err := storage.DB.Create(&employee).Error; err != nil {
		t.Fatalf("seed employee: %v", err)
	}
	return employee
}

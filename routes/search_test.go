package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotel-reservation-server/models"
	"hotel-reservation-server/storage"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// buildTestApp creates a minimal iris app with the search routes over an
// in-memory store.
func buildTestApp(t *testing.T) *iris.Application {
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

	app := iris.New()
	app.Validator = validator.New()
	app.Get("/search", SearchAvailableRooms)
	app.Get("/hotel-capacity", HotelCapacity)
	if err := app.Build(); err != nil {
		t.Fatalf("build app: %v", err)
	}
	return app
}

func seedSearchData(t *testing.T) {
	t.Helper()

	hotel := models.Hotel{Name: "Harbour View", Street: "1 Main St", City: "Halifax", Country: "Canada", Category: 4}
	if err := storage.DB.Create(&hotel).Error; err != nil {
		t.Fatalf("seed hotel: %v", err)
	}
	room := models.Room{HotelID: hotel.ID, Price: 120, Capacity: 2, DamageStatus: "none"}
	if err := storage.DB.Create(&room).Error; err != nil {
		t.Fatalf("seed room: %v", err)
	}
	customer := models.Customer{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", RegisteredAt: time.Now()}
	if err := storage.DB.Create(&customer).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	booking := models.Booking{
		RoomID:     room.ID,
		CustomerID: customer.ID,
		CheckIn:    time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC),
	}
	if err := storage.DB.Create(&booking).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}
}

func TestSearchRoute(t *testing.T) {
	app := buildTestApp(t)
	seedSearchData(t)

	// Overlapping range: the booked room is excluded.
	req := httptest.NewRequest(http.MethodGet, "/search?checkin=2024-06-03&checkout=2024-06-07", nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var body struct {
		Success bool              `json:"success"`
		Data    []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Data) != 0 {
		t.Errorf("expected no rooms for overlapping range, got %d", len(body.Data))
	}

	// Adjacent range: the room is available.
	req2 := httptest.NewRequest(http.MethodGet, "/search?checkin=2024-06-05&checkout=2024-06-10", nil)
	resp2 := httptest.NewRecorder()
	app.ServeHTTP(resp2, req2)
	if resp2.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp2.Code, resp2.Body.String())
	}
	if err := json.Unmarshal(resp2.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Data) != 1 {
		t.Errorf("expected 1 room for adjacent range, got %d", len(body.Data))
	}
}

func TestSearchRouteBadDates(t *testing.T) {
	app := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/search?checkin=June-1&checkout=2024-06-07", nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed date, got %d", resp.Code)
	}

	// Equal dates parse fine but fail interval validation.
	req2 := httptest.NewRequest(http.MethodGet, "/search?checkin=2024-06-10&checkout=2024-06-10", nil)
	resp2 := httptest.NewRecorder()
	app.ServeHTTP(resp2, req2)
	if resp2.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty interval, got %d", resp2.Code)
	}
}

func TestHotelCapacityRoute(t *testing.T) {
	app := buildTestApp(t)
	seedSearchData(t)

	req := httptest.NewRequest(http.MethodGet, "/hotel-capacity?hotelId=9999", nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for unknown hotel, got %d", resp.Code)
	}
	var body struct {
		TotalCapacity int `json:"totalCapacity"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.TotalCapacity != 0 {
		t.Errorf("expected capacity 0 for unknown hotel, got %d", body.TotalCapacity)
	}
}

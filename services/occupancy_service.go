package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"hotel-reservation-server/models"
	"hotel-reservation-server/storage"

	"golang.org/x/exp/slices"
)

// OccupancyService derives aggregate availability and capacity statistics.
type OccupancyService struct{}

func NewOccupancyService() *OccupancyService {
	return &OccupancyService{}
}

type AreaAvailabilityRow struct {
	Country        string `json:"country"`
	City           string `json:"city"`
	AvailableRooms int    `json:"availableRooms"`
}

var areaSortColumns = map[string]string{
	"Country":        "country",
	"City":           "city",
	"AvailableRooms": "available_rooms",
}

var areaSortKeys = []string{"Country", "City", "AvailableRooms"}

const areaCacheTTL = 30 * time.Second

// AreaAvailability groups rooms by (country, city) and counts those with no
// currently active occupying record. A booking or renting whose checkout
// date is strictly before today no longer occupies its room. Results are
// cached briefly in redis; occupancy writes invalidate the cache.
func (s *OccupancyService) AreaAvailability(ctx context.Context, sortKey, order string) ([]AreaAvailabilityRow, error) {
	if sortKey == "" {
		sortKey = "Country"
	}
	if !slices.Contains(areaSortKeys, sortKey) {
		return nil, fmt.Errorf("%w: sort key %q", ErrInvalidArgument, sortKey)
	}
	sortOrder := "ASC"
	if strings.EqualFold(order, "DESC") {
		sortOrder = "DESC"
	}

	cacheKey := fmt.Sprintf("area-availability:%s:%s", sortKey, sortOrder)
	if storage.Redis != nil {
		if cached, err := storage.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var rows []AreaAvailabilityRow
			if err := json.Unmarshal([]byte(cached), &rows); err == nil {
				return rows, nil
			}
		}
	}

	today := models.CanonicalDate(time.Now())
	rows := []AreaAvailabilityRow{}
	err := withReadRetry(ctx, func() error {
		rows = rows[:0]
		return storage.DB.WithContext(ctx).Table("rooms").
			Select("hotels.country, hotels.city, COUNT(rooms.id) AS available_rooms").
			Joins("JOIN hotels ON hotels.id = rooms.hotel_id").
			Where("rooms.deleted_at IS NULL AND hotels.deleted_at IS NULL").
			Where(`NOT EXISTS (
				SELECT 1 FROM bookings b
				WHERE b.room_id = rooms.id AND b.deleted_at IS NULL AND b.check_out >= ?)`, today).
			Where(`NOT EXISTS (
				SELECT 1 FROM rentings r
				WHERE r.room_id = rooms.id AND r.deleted_at IS NULL AND r.check_out >= ?)`, today).
			Group("hotels.country, hotels.city").
			Order(areaSortColumns[sortKey] + " " + sortOrder).
			Scan(&rows).Error
	})
	if err != nil {
		return nil, err
	}

	if storage.Redis != nil {
		if payload, err := json.Marshal(rows); err == nil {
			storage.Redis.Set(ctx, cacheKey, payload, areaCacheTTL)
		}
	}
	return rows, nil
}

// HotelCapacity sums the capacity of every room in a hotel. A hotel with no
// rooms, or no hotel at all, has capacity 0; that is an answer, not an
// error.
func (s *OccupancyService) HotelCapacity(ctx context.Context, hotelID uint) (int, error) {
	var total int
	err := withReadRetry(ctx, func() error {
		return storage.DB.WithContext(ctx).Table("rooms").
			Where("deleted_at IS NULL AND hotel_id = ?", hotelID).
			Select("COALESCE(SUM(capacity), 0)").
			Row().Scan(&total)
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// invalidateAreaCache drops every cached per-area aggregate. Called after
// any write that changes room occupancy.
func invalidateAreaCache(ctx context.Context) {
	if storage.Redis == nil {
		return
	}
	keys := make([]string, 0, len(areaSortKeys)*2)
	for _, key := range areaSortKeys {
		keys = append(keys, fmt.Sprintf("area-availability:%s:ASC", key))
		keys = append(keys, fmt.Sprintf("area-availability:%s:DESC", key))
	}
	storage.Redis.Del(ctx, keys...)
}

package routes

import (
	"hotel-reservation-server/services"

	"github.com/kataras/iris/v12"
)

// SearchAvailableRooms handles GET /search: rooms free over the requested
// dates, optionally narrowed by capacity, hotel category, country and city.
func SearchAvailableRooms(ctx iris.Context) {
	target, err := parseInterval(ctx.URLParam("checkin"), ctx.URLParam("checkout"))
	if err != nil {
		ctx.StatusCode(iris.StatusBadRequest)
		ctx.JSON(iris.Map{"message": "Invalid check-in or check-out date format"})
		return
	}

	filter := services.RoomFilter{
		MinCapacity: ctx.URLParamIntDefault("capacity", 0),
		Category:    ctx.URLParamIntDefault("rating", 0),
		Country:     ctx.URLParam("country"),
		City:        ctx.URLParam("city"),
	}

	rooms, err := availabilityService.FindAvailableRooms(ctx.Request().Context(), target, filter)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(iris.Map{
		"success": true,
		"data":    rooms,
	})
}

// AreaAvailability handles GET /available-rooms-per-area.
func AreaAvailability(ctx iris.Context) {
	sortKey := ctx.URLParamDefault("sort", "Country")
	order := ctx.URLParamDefault("order", "ASC")

	rows, err := occupancyService.AreaAvailability(ctx.Request().Context(), sortKey, order)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(iris.Map{
		"success": true,
		"data":    rows,
	})
}

// HotelCapacity handles GET /hotel-capacity.
func HotelCapacity(ctx iris.Context) {
	hotelID, err := ctx.URLParamInt("hotelId")
	if err != nil || hotelID < 0 {
		ctx.StatusCode(iris.StatusBadRequest)
		ctx.JSON(iris.Map{"message": "Invalid hotel ID"})
		return
	}

	total, err := occupancyService.HotelCapacity(ctx.Request().Context(), uint(hotelID))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(iris.Map{
		"success":       true,
		"totalCapacity": total,
	})
}

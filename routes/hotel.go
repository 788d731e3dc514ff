package routes

import (
	"github.com/kataras/iris/v12"
)

// ListCountries handles GET /countries.
func ListCountries(ctx iris.Context) {
	countries, err := directoryService.Countries(ctx.Request().Context())
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(countries)
}

// ListCities handles GET /cities?country=.
func ListCities(ctx iris.Context) {
	country := ctx.URLParam("country")
	if country == "" {
		ctx.StatusCode(iris.StatusBadRequest)
		ctx.JSON(iris.Map{"message": "Country is required"})
		return
	}

	cities, err := directoryService.Cities(ctx.Request().Context(), country)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(cities)
}

// ListHotels handles GET /hotels.
func ListHotels(ctx iris.Context) {
	hotels, err := directoryService.Hotels(ctx.Request().Context())
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(iris.Map{
		"success": true,
		"data":    hotels,
	})
}

// ListRoomsByHotel handles GET /rooms-by-hotel?hotelId=.
func ListRoomsByHotel(ctx iris.Context) {
	hotelID, err := ctx.URLParamInt("hotelId")
	if err != nil || hotelID <= 0 {
		ctx.StatusCode(iris.StatusBadRequest)
		ctx.JSON(iris.Map{"message": "Invalid hotel ID"})
		return
	}

	rooms, err := directoryService.RoomsByHotel(ctx.Request().Context(), uint(hotelID))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(iris.Map{
		"success": true,
		"data":    rooms,
	})
}

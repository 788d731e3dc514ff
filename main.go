package main

import (
	"os"

	"hotel-reservation-server/routes"
	"hotel-reservation-server/storage"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
)

func main() {
	godotenv.Load()
	storage.InitializeDB()
	storage.InitializeRedis()

	app := iris.New()
	app.Validator = validator.New()

	// CORS for the booking front end
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	app.Get("/", func(ctx iris.Context) {
		ctx.JSON("Server is running!")
	})

	// Availability and aggregates
	app.Get("/search", routes.SearchAvailableRooms)
	app.Get("/available-rooms-per-area", routes.AreaAvailability)
	app.Get("/hotel-capacity", routes.HotelCapacity)

	// Catalog
	app.Get("/countries", routes.ListCountries)
	app.Get("/cities", routes.ListCities)
	app.Get("/hotels", routes.ListHotels)
	app.Get("/rooms-by-hotel", routes.ListRoomsByHotel)
	app.Post("/update-room", routes.UpdateRoom)

	// Reservation lifecycle
	app.Post("/create-booking", routes.CreateBooking)
	app.Get("/bookings", routes.ListCustomerBookings)
	app.Get("/bookings-by-hotel", routes.ListHotelBookings)
	app.Delete("/delete-booking", routes.DeleteBooking)
	app.Post("/transform-booking", routes.PromoteBooking)
	app.Post("/create-renting", routes.CreateRenting)

	// Accounts
	app.Post("/customers", routes.RegisterCustomer)
	app.Post("/verify-customer", routes.VerifyCustomer)
	app.Post("/employees", routes.RegisterEmployee)
	app.Post("/verify-employee", routes.VerifyEmployee)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	app.Listen(":" + port)
}

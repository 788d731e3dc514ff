package routes

import (
	"hotel-reservation-server/utils"

	"github.com/kataras/iris/v12"
)

type CreateBookingInput struct {
	RoomID     uint   `json:"roomID" validate:"required"`
	CustomerID uint   `json:"customerID" validate:"required"`
	CheckIn    string `json:"checkin" validate:"required"`
	CheckOut   string `json:"checkout" validate:"required"`
}

// CreateBooking handles POST /create-booking.
func CreateBooking(ctx iris.Context) {
	var input CreateBookingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	target, err := parseInterval(input.CheckIn, input.CheckOut)
	if err != nil {
		ctx.StatusCode(iris.StatusBadRequest)
		ctx.JSON(iris.Map{"message": "Invalid check-in or check-out date format"})
		return
	}

	bookingID, err := reservationService.CreateBooking(ctx.Request().Context(), input.RoomID, input.CustomerID, target)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{
		"message":   "Booking created",
		"bookingID": bookingID,
	})
}

// ListCustomerBookings handles GET /bookings?customerID=.
func ListCustomerBookings(ctx iris.Context) {
	customerID, err := ctx.URLParamInt("customerID")
	if err != nil || customerID <= 0 {
		ctx.StatusCode(iris.StatusBadRequest)
		ctx.JSON(iris.Map{"message": "Customer ID is required"})
		return
	}

	bookings, err := reservationService.ListBookingsForCustomer(ctx.Request().Context(), uint(customerID))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(iris.Map{
		"success": true,
		"data":    bookings,
	})
}

// ListHotelBookings handles GET /bookings-by-hotel?hotelId=.
func ListHotelBookings(ctx iris.Context) {
	hotelID, err := ctx.URLParamInt("hotelId")
	if err != nil || hotelID <= 0 {
		ctx.StatusCode(iris.StatusBadRequest)
		ctx.JSON(iris.Map{"message": "Hotel ID is required"})
		return
	}

	bookings, err := reservationService.ListBookingsForHotel(ctx.Request().Context(), uint(hotelID))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(iris.Map{
		"success": true,
		"data":    bookings,
	})
}

type DeleteBookingInput struct {
	BookingID  uint `json:"bookingID" validate:"required"`
	CustomerID uint `json:"customerID"`
	ByEmployee bool `json:"byEmployee"`
}

// DeleteBooking handles DELETE /delete-booking. The caller's identity comes
// with the request; customers can only cancel their own holds.
func DeleteBooking(ctx iris.Context) {
	var input DeleteBookingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	err := reservationService.DeleteBooking(ctx.Request().Context(), input.BookingID, input.CustomerID, input.ByEmployee)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(iris.Map{"message": "Booking deleted"})
}

package routes

import (
	"hotel-reservation-server/services"
	"hotel-reservation-server/utils"

	"github.com/kataras/iris/v12"
)

type PromoteBookingInput struct {
	BookingID  uint   `json:"bookingID" validate:"required"`
	EmployeeID uint   `json:"employeeID" validate:"required"`
	CardNumber string `json:"cardNumber" validate:"required"`
	CVV        string `json:"cvv" validate:"required"`
	ExpiryDate string `json:"expiryDate" validate:"required"`
}

// PromoteBooking handles POST /transform-booking: a booking becomes a
// renting with the same stay dates and the hold is released.
func PromoteBooking(ctx iris.Context) {
	var input PromoteBookingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	rentingID, err := rentingService.PromoteBooking(ctx.Request().Context(), input.BookingID, input.EmployeeID, services.PaymentInstrument{
		CardNumber: input.CardNumber,
		CVV:        input.CVV,
		Expiry:     input.ExpiryDate,
	})
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(iris.Map{
		"message":   "Booking transformed successfully",
		"rentingID": rentingID,
	})
}

type CreateRentingInput struct {
	RoomID     uint   `json:"roomID" validate:"required"`
	CustomerID uint   `json:"customerID" validate:"required"`
	EmployeeID uint   `json:"employeeID" validate:"required"`
	CheckIn    string `json:"checkInDate" validate:"required"`
	CheckOut   string `json:"checkOutDate" validate:"required"`
	CardNumber string `json:"cardNumber" validate:"required"`
	CVV        string `json:"cvv" validate:"required"`
	ExpiryDate string `json:"expiryDate" validate:"required"`
}

// CreateRenting handles POST /create-renting for walk-in stays.
func CreateRenting(ctx iris.Context) {
	var input CreateRentingInput
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

	rentingID, err := rentingService.CreateRenting(ctx.Request().Context(), input.RoomID, input.CustomerID, input.EmployeeID, target, services.PaymentInstrument{
		CardNumber: input.CardNumber,
		CVV:        input.CVV,
		Expiry:     input.ExpiryDate,
	})
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(iris.Map{
		"message":   "Renting created successfully",
		"rentingID": rentingID,
	})
}

package routes

import (
	"hotel-reservation-server/services"
	"hotel-reservation-server/utils"

	"github.com/kataras/iris/v12"
)

type RegisterEmployeeInput struct {
	HotelID    uint   `json:"hotelID" validate:"required"`
	Role       string `json:"role" validate:"required"`
	FirstName  string `json:"firstName" validate:"required"`
	MiddleName string `json:"middleName"`
	LastName   string `json:"lastName" validate:"required"`
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	SSN        string `json:"ssn" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
}

// RegisterEmployee handles POST /employees.
func RegisterEmployee(ctx iris.Context) {
	var input RegisterEmployeeInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	employeeID, err := directoryService.RegisterEmployee(ctx.Request().Context(), services.EmployeeInput{
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
		Password:   input.Password,
	})
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{
		"message":    "New employee created",
		"employeeID": employeeID,
	})
}

// VerifyEmployee handles POST /verify-employee.
func VerifyEmployee(ctx iris.Context) {
	var input VerifyCredentialsInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	employeeID, hotelID, err := directoryService.VerifyEmployee(ctx.Request().Context(), input.Email, input.Password)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(iris.Map{
		"isValid":    true,
		"employeeID": employeeID,
		"hotelID":    hotelID,
	})
}

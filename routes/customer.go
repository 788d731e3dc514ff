package routes

import (
	"hotel-reservation-server/services"
	"hotel-reservation-server/utils"

	"github.com/kataras/iris/v12"
)

type RegisterCustomerInput struct {
	FirstName   string `json:"firstName" validate:"required"`
	MiddleName  string `json:"middleName"`
	LastName    string `json:"lastName" validate:"required"`
	Street      string `json:"street" validate:"required"`
	City        string `json:"city" validate:"required"`
	PostalCode  string `json:"postalCode" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	IDType      string `json:"idType" validate:"required"`
	Password    string `json:"password" validate:"required,min=8"`
}

// RegisterCustomer handles POST /customers.
func RegisterCustomer(ctx iris.Context) {
	var input RegisterCustomerInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	customerID, err := directoryService.RegisterCustomer(ctx.Request().Context(), services.CustomerInput{
		FirstName:   input.FirstName,
		MiddleName:  input.MiddleName,
		LastName:    input.LastName,
		Street:      input.Street,
		City:        input.City,
		PostalCode:  input.PostalCode,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		IDType:      input.IDType,
		Password:    input.Password,
	})
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{
		"message":    "New customer created",
		"customerID": customerID,
	})
}

type VerifyCredentialsInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// VerifyCustomer handles POST /verify-customer.
func VerifyCustomer(ctx iris.Context) {
	var input VerifyCredentialsInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	customerID, err := directoryService.VerifyCustomer(ctx.Request().Context(), input.Email, input.Password)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(iris.Map{
		"isValid":    true,
		"customerID": customerID,
	})
}

package routes

import (
	"hotel-reservation-server/services"
	"hotel-reservation-server/utils"

	"github.com/kataras/iris/v12"
)

type UpdateRoomInput struct {
	RoomID       uint     `json:"roomID" validate:"required"`
	EmployeeID   uint     `json:"employeeID" validate:"required"`
	Price        float64  `json:"price" validate:"min=0"`
	Capacity     int      `json:"capacity" validate:"min=0"`
	Amenities    []string `json:"amenities"`
	SeaView      bool     `json:"seaView"`
	MountainView bool     `json:"mountainView"`
	Extendable   bool     `json:"extendable"`
	DamageStatus string   `json:"damageStatus"`
}

// UpdateRoom handles POST /update-room: full overwrite of a room's mutable
// details.
func UpdateRoom(ctx iris.Context) {
	var input UpdateRoomInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	err := reservationService.UpdateRoomDetails(ctx.Request().Context(), input.RoomID, input.EmployeeID, services.RoomUpdate{
		Price:        input.Price,
		Capacity:     input.Capacity,
		Amenities:    input.Amenities,
		SeaView:      input.SeaView,
		MountainView: input.MountainView,
		Extendable:   input.Extendable,
		DamageStatus: input.DamageStatus,
	})
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(iris.Map{"message": "Room details updated successfully"})
}

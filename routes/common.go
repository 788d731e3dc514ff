package routes

import (
	"errors"
	"time"

	"hotel-reservation-server/models"
	"hotel-reservation-server/services"
	"hotel-reservation-server/utils"

	"github.com/kataras/iris/v12"
)

var (
	availabilityService = services.NewAvailabilityService()
	reservationService  = services.NewReservationService()
	rentingService      = services.NewRentingService()
	occupancyService    = services.NewOccupancyService()
	directoryService    = services.NewDirectoryService()
)

const dateLayout = "2006-01-02"

// handleServiceError maps a service error kind onto an HTTP status. Every
// kind gets its own status; unknown errors are reported as a storage
// failure, never swallowed.
func handleServiceError(ctx iris.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInterval):
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_interval", err.Error())
	case errors.Is(err, services.ErrInvalidArgument):
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_argument", err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(ctx, iris.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, services.ErrConflict):
		utils.JSONError(ctx, iris.StatusConflict, "conflict", err.Error())
	case errors.Is(err, services.ErrNotOwner):
		utils.JSONError(ctx, iris.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(ctx, iris.StatusUnauthorized, "invalid_credentials", err.Error())
	default:
		utils.JSONError(ctx, iris.StatusInternalServerError, "storage_error", err.Error())
	}
}

// parseInterval reads checkin/checkout query or body values in YYYY-MM-DD
// form. A malformed date is reported right away; range validity is the
// services' job.
func parseInterval(checkin, checkout string) (models.Interval, error) {
	in, err := time.Parse(dateLayout, checkin)
	if err != nil {
		return models.Interval{}, err
	}
	out, err := time.Parse(dateLayout, checkout)
	if err != nil {
		return models.Interval{}, err
	}
	return models.NewInterval(in, out), nil
}

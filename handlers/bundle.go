package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"beautycrave/services/booking"
	"beautycrave/services/scheduling"
	"beautycrave/utils"
)

// HandlerBundle groups the endpoint handlers and their dependencies.
type HandlerBundle struct {
	Booking booking.BookingService
	Cache   *redis.Client
}

func NewHandlerBundle(svc booking.BookingService, cache *redis.Client) *HandlerBundle {
	return &HandlerBundle{Booking: svc, Cache: cache}
}

// respondError translates service errors into HTTP responses. Booking errors
// carry their taxonomy code so the booking page can branch on it.
func respondError(c *gin.Context, err error) {
	if be, ok := scheduling.AsBookingError(err); ok {
		status := http.StatusInternalServerError
		switch be.Code {
		case scheduling.CodeInvalidName, scheduling.CodeInvalidPhoneNumber:
			status = http.StatusUnprocessableEntity
		case scheduling.CodeSlotAlreadyBooked, scheduling.CodeInsufficientSlots:
			status = http.StatusConflict
		case scheduling.CodeUnknownError:
			status = http.StatusNotFound
		case scheduling.CodeNetworkError:
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, utils.ErrorResponse{Message: be.Message, Code: be.Code})
		return
	}
	c.JSON(http.StatusInternalServerError, utils.ErrorResponse{Message: "Internal server error", Details: err.Error()})
}

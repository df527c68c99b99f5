package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	scheduleRepo "beautycrave/database/repository/schedule"
	"beautycrave/models"
	"beautycrave/utils"
)

const dateLayout = "2006-01-02"

// CreateScheduleHandler opens a new business day.
func (hb *HandlerBundle) CreateScheduleHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	schedule, err := hb.Booking.CreateSchedule(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleExists) {
			utils.JSONError(c, http.StatusConflict, "Schedule already exists", "a schedule for "+req.Date+" already exists")
			return
		}
		logger.Error("Failed to create schedule", zap.String("date", req.Date), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"schedule":  schedule,
		"shareLink": hb.Booking.ShareLink(*schedule),
	})
}

// ListSchedulesHandler returns all schedules, soonest first.
func (hb *HandlerBundle) ListSchedulesHandler(c *gin.Context) {
	schedules, err := hb.Booking.ListSchedules(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to list schedules", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": schedules})
}

// GetScheduleHandler returns one schedule by ID.
func (hb *HandlerBundle) GetScheduleHandler(c *gin.Context) {
	schedule, err := hb.Booking.GetSchedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"schedule":  schedule,
		"shareLink": hb.Booking.ShareLink(*schedule),
	})
}

// GetShareLinkHandler returns the public booking URL for one schedule.
func (hb *HandlerBundle) GetShareLinkHandler(c *gin.Context) {
	schedule, err := hb.Booking.GetSchedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"shareLink": hb.Booking.ShareLink(*schedule)})
}

// GetStatsHandler returns the derived dashboard view for one schedule.
func (hb *HandlerBundle) GetStatsHandler(c *gin.Context) {
	stats, err := hb.Booking.Stats(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// CancelBookingHandler frees the booking anchored at the given slot.
func (hb *HandlerBundle) CancelBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	schedule, err := hb.Booking.Cancel(c.Request.Context(), c.Param("id"), c.Param("slotId"))
	if err != nil {
		logger.Error("Failed to cancel booking",
			zap.String("scheduleId", c.Param("id")),
			zap.String("slotId", c.Param("slotId")),
			zap.Error(err))
		respondError(c, err)
		return
	}

	hb.invalidatePublicCache(c, schedule)
	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}

// UpdateBookingHandler moves or edits a booking within one schedule.
func (hb *HandlerBundle) UpdateBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	schedule, err := hb.Booking.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		logger.Error("Failed to update booking",
			zap.String("scheduleId", c.Param("id")),
			zap.String("originalSlotId", req.OriginalSlotID),
			zap.Error(err))
		respondError(c, err)
		return
	}

	hb.invalidatePublicCache(c, schedule)
	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}

// MoveBookingHandler transfers a booking to a different day.
func (hb *HandlerBundle) MoveBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.MoveBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	schedule, err := hb.Booking.Move(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to move booking",
			zap.String("fromScheduleId", req.FromScheduleID),
			zap.String("toScheduleId", req.ToScheduleID),
			zap.Error(err))
		respondError(c, err)
		return
	}

	// Both days changed; drop whatever snapshots are cached.
	hb.invalidatePublicCache(c, schedule)
	if src, err := hb.Booking.GetSchedule(c.Request.Context(), req.FromScheduleID); err == nil {
		hb.invalidatePublicCache(c, src)
	}

	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}

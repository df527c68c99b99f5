package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"beautycrave/models"
)

const publicCachePrefix = "schedule:token:"
const publicCacheTTL = 30 * time.Second

// publicSchedule is the sanitized booking-page shape. Customers see which
// slots are taken, never by whom.
type publicSchedule struct {
	Schedule models.DaySchedule `json:"schedule"`
	Services []models.Service   `json:"services"`
}

func sanitize(s models.DaySchedule) models.DaySchedule {
	out := s.Clone()
	for i := range out.TimeSlots {
		out.TimeSlots[i].CustomerName = ""
		out.TimeSlots[i].CustomerPhone = ""
		out.TimeSlots[i].CustomerEmail = ""
		out.TimeSlots[i].Notes = ""
		out.TimeSlots[i].Services = nil
	}
	return out
}

// GetPublicScheduleHandler serves the booking page payload for a share token.
// Snapshots are cached briefly; the reserve path re-validates against the
// database regardless, so a stale view costs at most one rejected attempt.
func (hb *HandlerBundle) GetPublicScheduleHandler(c *gin.Context) {
	token := c.Param("token")
	cacheKey := publicCachePrefix + token

	if hb.Cache != nil {
		if cached, err := hb.Cache.Get(c.Request.Context(), cacheKey).Result(); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
			return
		}
	}

	schedule, err := hb.Booking.GetScheduleByToken(c.Request.Context(), token)
	if err != nil {
		respondError(c, err)
		return
	}

	payload := publicSchedule{
		Schedule: sanitize(*schedule),
		Services: hb.Booking.Catalog(),
	}

	if hb.Cache != nil {
		if b, err := json.Marshal(payload); err == nil {
			if err := hb.Cache.Set(c.Request.Context(), cacheKey, b, publicCacheTTL).Err(); err != nil {
				getLogger(c).Warn("Failed to cache schedule snapshot", zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, payload)
}

// AvailabilityHandler lists the slots that can host the requested services.
// Services are passed as a comma separated list of catalog IDs.
func (hb *HandlerBundle) AvailabilityHandler(c *gin.Context) {
	var serviceIDs []string
	if raw := c.Query("services"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				serviceIDs = append(serviceIDs, id)
			}
		}
	}

	slots, err := hb.Booking.Availability(c.Request.Context(), c.Param("token"), serviceIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availableSlots": slots})
}

// ReserveHandler books a run of slots for a customer.
func (hb *HandlerBundle) ReserveHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	schedule, err := hb.Booking.Reserve(c.Request.Context(), c.Param("token"), req)
	if err != nil {
		logger.Warn("Reservation rejected",
			zap.String("slotId", req.SlotID),
			zap.Error(err))
		respondError(c, err)
		return
	}

	hb.invalidatePublicCache(c, schedule)

	c.JSON(http.StatusCreated, gin.H{
		"schedule": sanitize(*schedule),
		"slotId":   req.SlotID,
	})
}

// invalidatePublicCache drops the cached booking-page snapshot after a write.
func (hb *HandlerBundle) invalidatePublicCache(c *gin.Context, schedule *models.DaySchedule) {
	if hb.Cache == nil || schedule == nil || schedule.ShareToken == "" {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := hb.Cache.Del(ctx, publicCachePrefix+schedule.ShareToken).Err(); err != nil {
		getLogger(c).Warn("Failed to invalidate schedule snapshot", zap.Error(err))
	}
}

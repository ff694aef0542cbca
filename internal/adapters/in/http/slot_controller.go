package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/dental-schedule-slots/internal/config"
	"github.com/suchimauz/dental-schedule-slots/internal/core/json_types"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/in"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/out"
)

type SlotController struct {
	*responder
	slotGeneratorUseCase in.SlotGeneratorUseCase
	sessionUseCase       in.SessionUseCase
	cfg                  *config.Config
}

func NewSlotController(
	slotGeneratorUseCase in.SlotGeneratorUseCase,
	sessionUseCase in.SessionUseCase,
	cfg *config.Config,
	logger out.LoggerPort,
) *SlotController {
	return &SlotController{
		responder:            &responder{sessions: sessionUseCase, logger: logger.WithModule("SlotController")},
		slotGeneratorUseCase: slotGeneratorUseCase,
		sessionUseCase:       sessionUseCase,
		cfg:                  cfg,
	}
}

func (c *SlotController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.GET("/slots", c.generateSlots)
		api.GET("/dentists/:id/availability", requireSession(c.sessionUseCase, c.cfg), c.getAvailability)
	}
}

// generateSlots сетка времени для окна start..end с шагом interval минут
func (c *SlotController) generateSlots(ctx *gin.Context) {
	slots, err := c.slotGeneratorUseCase.GenerateSlots(ctx.Query("start"), ctx.Query("end"), queryInt(ctx, "interval"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid slot parameters"})
		return
	}

	ctx.JSON(http.StatusOK, slots)
}

func (c *SlotController) getAvailability(ctx *gin.Context) {
	dentistID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	query := in.AvailabilityQuery{
		DentistID:            dentistID,
		ExcludeAppointmentID: queryInt(ctx, "exclude"),
	}
	if value := ctx.Query("date"); value != "" {
		date, err := json_types.ParseDate(value)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
			return
		}
		query.Date = date
	}
	if value := ctx.Query("timeFrom"); value != "" {
		timeFrom, err := json_types.ParseTimeOfDay(value)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid timeFrom"})
			return
		}
		query.TimeFrom = timeFrom
	}

	availability, debugInfo, err := c.slotGeneratorUseCase.GetAvailability(ctx.Request.Context(), currentSession(ctx), query)
	if err != nil {
		c.fail(ctx, err, "Failed to fetch available times")
		return
	}

	if ctx.Query("debug") == "true" {
		ctx.JSON(http.StatusOK, gin.H{
			"availability": availability,
			"debugInfo":    debugInfo,
		})
		return
	}

	ctx.JSON(http.StatusOK, availability)
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/dental-schedule-slots/internal/config"
	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/in"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/out"
)

type AppointmentController struct {
	*responder
	bookingUseCase in.BookingUseCase
	sessionUseCase in.SessionUseCase
	cfg            *config.Config
}

func NewAppointmentController(
	bookingUseCase in.BookingUseCase,
	sessionUseCase in.SessionUseCase,
	cfg *config.Config,
	logger out.LoggerPort,
) *AppointmentController {
	return &AppointmentController{
		responder:      &responder{sessions: sessionUseCase, logger: logger.WithModule("AppointmentController")},
		bookingUseCase: bookingUseCase,
		sessionUseCase: sessionUseCase,
		cfg:            cfg,
	}
}

func (c *AppointmentController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1", requireSession(c.sessionUseCase, c.cfg))

	appointments := api.Group("/appointments")
	{
		appointments.GET("", c.list)
		appointments.POST("", c.create)
		appointments.PUT("/:id", c.update)
		appointments.POST("/:id/cancel", c.cancel)
		appointments.DELETE("/:id", c.delete)
	}

	form := api.Group("/booking-form")
	{
		form.POST("", c.openForm)
		form.GET("", c.getForm)
		form.PATCH("", c.patchForm)
		form.POST("/clear", c.clearForm)
		form.POST("/submit", c.submitForm)
		form.DELETE("", c.discardForm)
	}
}

func (c *AppointmentController) list(ctx *gin.Context) {
	page, err := c.bookingUseCase.List(ctx.Request.Context(), currentSession(ctx), in.AppointmentListQuery{
		Search:  ctx.Query("search"),
		Page:    queryInt(ctx, "page"),
		PerPage: queryInt(ctx, "perPage"),
	})
	if err != nil {
		c.fail(ctx, err, "Failed to fetch appointments")
		return
	}

	ctx.JSON(http.StatusOK, page)
}

func (c *AppointmentController) create(ctx *gin.Context) {
	c.submit(ctx, 0, http.StatusCreated)
}

func (c *AppointmentController) update(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	c.submit(ctx, id, http.StatusOK)
}

func (c *AppointmentController) submit(ctx *gin.Context, editingID int, status int) {
	var proposed domain.ProposedBooking
	if err := ctx.ShouldBindJSON(&proposed); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	appointment, result, err := c.bookingUseCase.Submit(ctx.Request.Context(), currentSession(ctx), proposed, editingID)
	if err != nil {
		c.fail(ctx, err, "Failed to save appointment")
		return
	}
	if !result.OK() {
		c.reject(ctx, result)
		return
	}

	ctx.JSON(status, appointment)
}

func (c *AppointmentController) cancel(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	appointment, err := c.bookingUseCase.Cancel(ctx.Request.Context(), currentSession(ctx), id)
	if err != nil {
		c.fail(ctx, err, "Failed to cancel appointment")
		return
	}

	ctx.JSON(http.StatusOK, appointment)
}

func (c *AppointmentController) delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.bookingUseCase.Delete(ctx.Request.Context(), currentSession(ctx), id); err != nil {
		c.fail(ctx, err, "Failed to delete appointment")
		return
	}

	ctx.Status(http.StatusNoContent)
}

type openFormRequest struct {
	EditingID int `json:"editingId"`
}

func (c *AppointmentController) openForm(ctx *gin.Context) {
	var request openFormRequest
	// Пустое тело открывает форму новой записи
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
	}

	view, err := c.bookingUseCase.OpenForm(ctx.Request.Context(), currentSession(ctx), request.EditingID)
	if err != nil {
		c.fail(ctx, err, "Failed to open booking form")
		return
	}

	ctx.JSON(http.StatusOK, view)
}

func (c *AppointmentController) getForm(ctx *gin.Context) {
	view, err := c.bookingUseCase.GetForm(ctx.Request.Context(), currentSession(ctx))
	if err != nil {
		c.fail(ctx, err, "Failed to load booking form")
		return
	}

	ctx.JSON(http.StatusOK, view)
}

func (c *AppointmentController) patchForm(ctx *gin.Context) {
	var patch domain.BookingFormPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	view, err := c.bookingUseCase.PatchForm(ctx.Request.Context(), currentSession(ctx), patch)
	if err != nil {
		c.fail(ctx, err, "Failed to update booking form")
		return
	}

	ctx.JSON(http.StatusOK, view)
}

func (c *AppointmentController) clearForm(ctx *gin.Context) {
	view, err := c.bookingUseCase.ClearForm(ctx.Request.Context(), currentSession(ctx))
	if err != nil {
		c.fail(ctx, err, "Failed to clear booking form")
		return
	}

	ctx.JSON(http.StatusOK, view)
}

func (c *AppointmentController) submitForm(ctx *gin.Context) {
	appointment, result, err := c.bookingUseCase.SubmitForm(ctx.Request.Context(), currentSession(ctx))
	if err != nil {
		c.fail(ctx, err, "Failed to save appointment")
		return
	}
	if !result.OK() {
		c.reject(ctx, result)
		return
	}

	ctx.JSON(http.StatusOK, appointment)
}

func (c *AppointmentController) discardForm(ctx *gin.Context) {
	c.bookingUseCase.DiscardForm(ctx.Request.Context(), currentSession(ctx))
	ctx.Status(http.StatusNoContent)
}

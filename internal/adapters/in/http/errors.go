package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/in"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/out"
)

const loginRedirect = "/login"

// responder переводит ошибки сервисов в HTTP ответы
type responder struct {
	sessions in.SessionUseCase
	logger   out.LoggerPort
}

// fail отвечает на ошибку. fallback показывается, если у ошибки нет понятного пользователю текста.
// 401 от внешнего API завершает сессию.
func (r *responder) fail(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrSessionNotFound):
		if session := currentSession(ctx); session.ID != "" {
			r.sessions.Teardown(ctx.Request.Context(), session)
		}
		ctx.JSON(http.StatusUnauthorized, gin.H{
			"error":    domain.UpstreamMessage(err, "Session expired. Please log in again."),
			"redirect": loginRedirect,
		})
	case errors.Is(err, domain.ErrRequiredFields), errors.Is(err, domain.ErrInvalidSchedule), errors.Is(err, domain.ErrInvalidInterval):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": rootMessage(err)})
	case errors.Is(err, domain.ErrAppointmentCancelled):
		ctx.JSON(http.StatusConflict, gin.H{"error": "Cancelled appointments cannot be changed"})
	case errors.Is(err, domain.ErrBookingFormNotOpened):
		ctx.JSON(http.StatusConflict, gin.H{"error": "Booking form is not opened"})
	case errors.Is(err, domain.ErrUnknownForm):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Form not found"})
	case errors.Is(err, domain.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": domain.UpstreamMessage(err, fallback)})
	default:
		var upstreamErr *domain.UpstreamError
		if errors.As(err, &upstreamErr) && upstreamErr.StatusCode >= 400 && upstreamErr.StatusCode < 500 {
			ctx.JSON(upstreamErr.StatusCode, gin.H{"error": domain.UpstreamMessage(err, fallback)})
			return
		}

		r.logger.Error("http.request.failed", out.LogFields{
			"path":      ctx.FullPath(),
			"requestId": ctx.GetString(requestIDKey),
			"error":     err.Error(),
		})
		status := http.StatusInternalServerError
		if upstreamErr != nil {
			status = http.StatusBadGateway
		}
		ctx.JSON(status, gin.H{"error": domain.UpstreamMessage(err, fallback)})
	}
}

// reject отвечает на отказ проверки записи
func (r *responder) reject(ctx *gin.Context, result domain.ValidationResult) {
	ctx.JSON(http.StatusUnprocessableEntity, gin.H{
		"kind":    result.Kind(),
		"reason":  result.Reason,
		"message": result.Message(),
	})
}

// rootMessage текст самой внутренней ошибки, без префиксов событий
func rootMessage(err error) string {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err.Error()
		}
		err = unwrapped
	}
}

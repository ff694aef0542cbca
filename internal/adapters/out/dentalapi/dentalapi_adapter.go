package dentalapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/suchimauz/dental-schedule-slots/internal/config"
	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/out"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Ограничение на чтение тела ответа с ошибкой
const maxErrorBodySize = 64 << 10

// DentalAPIAdapter клиент внешнего REST API клиники. Авторизация по bearer токену сессии.
type DentalAPIAdapter struct {
	client  *http.Client
	baseURL string
	logger  out.LoggerPort
}

func NewDentalAPIAdapter(cfg *config.Config, logger out.LoggerPort) *DentalAPIAdapter {
	return NewDentalAPIAdapterWithClient(cfg, &http.Client{
		Timeout:   cfg.DentalAPI.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}, logger)
}

func NewDentalAPIAdapterWithClient(cfg *config.Config, client *http.Client, logger out.LoggerPort) *DentalAPIAdapter {
	return &DentalAPIAdapter{
		client:  client,
		baseURL: cfg.DentalAPI.URL,
		logger:  logger.WithModule("DentalAPIAdapter"),
	}
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do выполняет запрос и декодирует ответ в result, если он не nil.
// Пустое тело успешного ответа не считается ошибкой.
func (a *DentalAPIAdapter) do(ctx context.Context, event, method, path, token string, body, result any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s.encode_failed: %w", event, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s.request_failed: %w", event, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error(event+".failed", out.LogFields{
			"method": method,
			"path":   path,
			"error":  err.Error(),
		})
		return fmt.Errorf("%s.failed: %w", event, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		upstreamErr := decodeError(resp)
		a.logger.Warn(event+".failed", out.LogFields{
			"method":  method,
			"path":    path,
			"status":  resp.StatusCode,
			"message": upstreamErr.Message,
		})
		return upstreamErr
	}

	if result == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		a.logger.Error(event+".decode_failed", out.LogFields{
			"method": method,
			"path":   path,
			"error":  err.Error(),
		})
		return fmt.Errorf("%s.decode_failed: %w", event, err)
	}

	a.logger.Debug(event+".success", out.LogFields{
		"method": method,
		"path":   path,
	})

	return nil
}

func decodeError(resp *http.Response) *domain.UpstreamError {
	upstreamErr := &domain.UpstreamError{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil || len(data) == 0 {
		return upstreamErr
	}

	var body errorResponse
	if err := json.Unmarshal(data, &body); err != nil {
		return upstreamErr
	}

	upstreamErr.Message = body.Message
	if upstreamErr.Message == "" {
		upstreamErr.Message = body.Error
	}

	return upstreamErr
}

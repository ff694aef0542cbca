package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/suchimauz/dental-schedule-slots/internal/config"
	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/in"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/out"
	"golang.org/x/time/rate"
)

const (
	requestIDHeader   = "X-Request-Id"
	sessionHeader     = "X-Session-Id"
	requestIDKey      = "requestId"
	sessionContextKey = "session"

	defaultRateStoreSize = 10000
)

func requestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Set(requestIDKey, id)
		ctx.Header(requestIDHeader, id)
		ctx.Next()
	}
}

func requestLogger(logger out.LoggerPort) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		fields := out.LogFields{
			"method":    ctx.Request.Method,
			"path":      ctx.FullPath(),
			"status":    ctx.Writer.Status(),
			"latencyMs": time.Since(start).Milliseconds(),
			"requestId": ctx.GetString(requestIDKey),
		}
		if ctx.Writer.Status() >= http.StatusInternalServerError {
			logger.Error("http.request", fields)
			return
		}
		logger.Debug("http.request", fields)
	}
}

// ipRateLimiter ограничитель запросов по IP для входа и регистрации.
// Лимитеры хранятся в LRU с истечением, неактивные IP вытесняются.
type ipRateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
	logger   out.LoggerPort
}

func newIPRateLimiter(cfg *config.Config, logger out.LoggerPort) *ipRateLimiter {
	limiter := &ipRateLimiter{
		limit:  rate.Inf,
		burst:  cfg.Auth.RateBurst,
		logger: logger,
	}
	if limiter.burst <= 0 {
		limiter.burst = 1
	}

	// Лимитер живет столько, сколько нужно на полное восстановление burst
	ttl := time.Minute
	if cfg.Auth.RatePerMinute > 0 {
		interval := time.Minute / time.Duration(cfg.Auth.RatePerMinute)
		limiter.limit = rate.Every(interval)
		if refill := interval * time.Duration(limiter.burst); refill > ttl {
			ttl = refill
		}
	}

	size := cfg.Auth.RateStoreSize
	if size <= 0 {
		size = defaultRateStoreSize
	}
	limiter.limiters = expirable.NewLRU[string, *rate.Limiter](size, nil, ttl)

	return limiter
}

func (l *ipRateLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.limiters.Get(ip)
	if !exists {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters.Add(ip, limiter)
	}
	return limiter
}

func (l *ipRateLimiter) middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ip := ctx.ClientIP()
		if !l.get(ip).Allow() {
			l.logger.Warn("http.rate_limit.exceeded", out.LogFields{
				"ip":   ip,
				"path": ctx.FullPath(),
			})
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many attempts. Try again later."})
			return
		}
		ctx.Next()
	}
}

// sessionID берется из cookie, либо из заголовка X-Session-Id
func sessionID(ctx *gin.Context, cfg *config.Config) string {
	if id, err := ctx.Cookie(cfg.Session.CookieName); err == nil && id != "" {
		return id
	}
	return ctx.GetHeader(sessionHeader)
}

func requireSession(sessions in.SessionUseCase, cfg *config.Config) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		session, err := sessions.Resolve(ctx.Request.Context(), sessionID(ctx, cfg))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":    "Session expired. Please log in again.",
				"redirect": loginRedirect,
			})
			return
		}
		ctx.Set(sessionContextKey, *session)
		ctx.Next()
	}
}

func currentSession(ctx *gin.Context) domain.Session {
	value, _ := ctx.Get(sessionContextKey)
	session, _ := value.(domain.Session)
	return session
}

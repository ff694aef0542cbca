package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/dental-schedule-slots/internal/config"
	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/in"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/out"
)

type AuthController struct {
	*responder
	sessionUseCase in.SessionUseCase
	limiter        *ipRateLimiter
	cfg            *config.Config
}

func NewAuthController(sessionUseCase in.SessionUseCase, cfg *config.Config, logger out.LoggerPort) *AuthController {
	logger = logger.WithModule("AuthController")
	return &AuthController{
		responder:      &responder{sessions: sessionUseCase, logger: logger},
		sessionUseCase: sessionUseCase,
		limiter:        newIPRateLimiter(cfg, logger),
		cfg:            cfg,
	}
}

func (c *AuthController) RegisterRoutes(router *gin.Engine) {
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/login", c.limiter.middleware(), c.login)
		auth.POST("/register", c.limiter.middleware(), c.register)
		auth.POST("/logout", c.logout)
		auth.GET("/me", requireSession(c.sessionUseCase, c.cfg), c.me)
	}
}

func (c *AuthController) login(ctx *gin.Context) {
	var credentials domain.Credentials
	if err := ctx.ShouldBindJSON(&credentials); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	session, err := c.sessionUseCase.Login(ctx.Request.Context(), credentials)
	if errors.Is(err, domain.ErrUnauthorized) {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": domain.UpstreamMessage(err, "Invalid email or password")})
		return
	}
	if err != nil {
		c.fail(ctx, err, "Login failed")
		return
	}

	c.setSessionCookie(ctx, session.ID, int(time.Until(session.ExpiresAt).Seconds()))
	ctx.JSON(http.StatusOK, gin.H{
		"sessionId": session.ID,
		"session":   session,
	})
}

func (c *AuthController) register(ctx *gin.Context) {
	var registration domain.Registration
	if err := ctx.ShouldBindJSON(&registration); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := c.sessionUseCase.Register(ctx.Request.Context(), registration); err != nil {
		c.fail(ctx, err, "Registration failed")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"redirect": loginRedirect})
}

func (c *AuthController) logout(ctx *gin.Context) {
	if err := c.sessionUseCase.Logout(ctx.Request.Context(), sessionID(ctx, c.cfg)); err != nil {
		c.fail(ctx, err, "Logout failed")
		return
	}

	c.setSessionCookie(ctx, "", -1)
	ctx.JSON(http.StatusOK, gin.H{"redirect": loginRedirect})
}

func (c *AuthController) me(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, currentSession(ctx))
}

func (c *AuthController) setSessionCookie(ctx *gin.Context, value string, maxAge int) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.cfg.Session.CookieName, value, maxAge, "/", "", c.cfg.IsNotLocal(), true)
}

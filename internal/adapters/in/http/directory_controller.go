package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/dental-schedule-slots/internal/config"
	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/in"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/out"
)

type DirectoryController struct {
	*responder
	directoryUseCase in.DirectoryUseCase
	sessionUseCase   in.SessionUseCase
	cfg              *config.Config
}

func NewDirectoryController(
	directoryUseCase in.DirectoryUseCase,
	sessionUseCase in.SessionUseCase,
	cfg *config.Config,
	logger out.LoggerPort,
) *DirectoryController {
	return &DirectoryController{
		responder:        &responder{sessions: sessionUseCase, logger: logger.WithModule("DirectoryController")},
		directoryUseCase: directoryUseCase,
		sessionUseCase:   sessionUseCase,
		cfg:              cfg,
	}
}

func (c *DirectoryController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1", requireSession(c.sessionUseCase, c.cfg))

	dentists := api.Group("/dentists")
	{
		dentists.GET("", c.listDentists)
		dentists.POST("", c.createDentist)
		dentists.PUT("/:id", c.updateDentist)
		dentists.DELETE("/:id", c.deleteDentist)
	}

	users := api.Group("/users")
	{
		users.GET("", c.listUsers)
		users.POST("", c.createUser)
		users.PUT("/:id", c.updateUser)
		users.DELETE("/:id", c.deleteUser)
	}

	api.GET("/statuses", c.listStatuses)
	api.GET("/forms/:name", c.getForm)
	api.POST("/forms/:name", c.getForm)
}

func (c *DirectoryController) listDentists(ctx *gin.Context) {
	dentists, err := c.directoryUseCase.ListDentists(ctx.Request.Context(), currentSession(ctx), sortQuery(ctx))
	if err != nil {
		c.fail(ctx, err, "Failed to fetch dentists")
		return
	}

	ctx.JSON(http.StatusOK, dentists)
}

func (c *DirectoryController) createDentist(ctx *gin.Context) {
	var input domain.DentistInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	dentist, err := c.directoryUseCase.CreateDentist(ctx.Request.Context(), currentSession(ctx), input)
	if err != nil {
		c.fail(ctx, err, "Failed to save dentist")
		return
	}

	ctx.JSON(http.StatusCreated, dentist)
}

func (c *DirectoryController) updateDentist(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var input domain.DentistInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	dentist, err := c.directoryUseCase.UpdateDentist(ctx.Request.Context(), currentSession(ctx), id, input)
	if err != nil {
		c.fail(ctx, err, "Failed to save dentist")
		return
	}

	ctx.JSON(http.StatusOK, dentist)
}

func (c *DirectoryController) deleteDentist(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.directoryUseCase.DeleteDentist(ctx.Request.Context(), currentSession(ctx), id); err != nil {
		c.fail(ctx, err, "Failed to delete dentist")
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *DirectoryController) listUsers(ctx *gin.Context) {
	users, err := c.directoryUseCase.ListUsers(ctx.Request.Context(), currentSession(ctx), sortQuery(ctx))
	if err != nil {
		c.fail(ctx, err, "Failed to fetch users")
		return
	}

	ctx.JSON(http.StatusOK, users)
}

func (c *DirectoryController) createUser(ctx *gin.Context) {
	var input domain.UserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := c.directoryUseCase.CreateUser(ctx.Request.Context(), currentSession(ctx), input)
	if err != nil {
		c.fail(ctx, err, "Failed to save user")
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

func (c *DirectoryController) updateUser(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var input domain.UserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := c.directoryUseCase.UpdateUser(ctx.Request.Context(), currentSession(ctx), id, input)
	if err != nil {
		c.fail(ctx, err, "Failed to save user")
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (c *DirectoryController) deleteUser(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.directoryUseCase.DeleteUser(ctx.Request.Context(), currentSession(ctx), id); err != nil {
		c.fail(ctx, err, "Failed to delete user")
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *DirectoryController) listStatuses(ctx *gin.Context) {
	statuses, err := c.directoryUseCase.ListStatuses(ctx.Request.Context(), currentSession(ctx))
	if err != nil {
		c.fail(ctx, err, "Failed to fetch statuses")
		return
	}

	ctx.JSON(http.StatusOK, statuses)
}

// getForm описание формы. Значения приходят телом POST или параметрами GET запроса.
func (c *DirectoryController) getForm(ctx *gin.Context) {
	values := domain.FormValues{}
	if ctx.Request.Method == http.MethodPost && ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&values); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
	} else {
		for key, query := range ctx.Request.URL.Query() {
			if len(query) > 0 {
				values[key] = query[0]
			}
		}
	}

	form, err := c.directoryUseCase.GetForm(ctx.Request.Context(), currentSession(ctx), ctx.Param("name"), values)
	if err != nil {
		c.fail(ctx, err, "Failed to build form")
		return
	}

	ctx.JSON(http.StatusOK, form)
}

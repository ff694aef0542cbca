package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/in"
)

// pathID разбирает числовой параметр пути, при ошибке отвечает 400
func pathID(ctx *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}

// queryInt необязательный числовой параметр запроса, некорректное значение считается отсутствующим
func queryInt(ctx *gin.Context, name string) int {
	value, err := strconv.Atoi(ctx.Query(name))
	if err != nil {
		return 0
	}
	return value
}

func sortQuery(ctx *gin.Context) in.SortQuery {
	return in.SortQuery{
		Key:        ctx.Query("sort"),
		Descending: ctx.Query("order") == "desc",
	}
}

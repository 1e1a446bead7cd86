package http

import (
	"github.com/gin-gonic/gin"

	"nutrichat/internal/meal"
	"nutrichat/pkg/log"
)

// Handler is the public interface for the meal HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	History(c *gin.Context)
	DaySummary(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc meal.UseCase
}

// New creates a new HTTP handler for the meal domain.
func New(l log.Logger, uc meal.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

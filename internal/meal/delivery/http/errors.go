package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"nutrichat/internal/meal"
	"nutrichat/pkg/response"
)

// respondError translates domain errors into the HTTP envelope.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, meal.ErrModelUnavailable):
		response.Unavailable(c, err)
	case errors.Is(err, meal.ErrNoMealsForDay):
		response.NotFound(c, err)
	case errors.Is(err, meal.ErrEmptyMessage), errors.Is(err, meal.ErrInvalidDay):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}

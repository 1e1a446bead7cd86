package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"nutrichat/internal/meal"
	"nutrichat/internal/model"
)

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, meal.ErrEmptyMessage
	}
	return req, req.validate()
}

// processDayParam validates the :date URI param.
func (h *handler) processDayParam(c *gin.Context) (string, error) {
	day := c.Param("date")
	if _, err := time.Parse(model.DayKeyFormat, day); err != nil {
		return "", meal.ErrInvalidDay
	}
	return day, nil
}

package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"nutrichat/internal/meal"
	"nutrichat/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Processes one conversational turn: describes food, answers a clarifying question, or confirms logging the pending meal.
// @Tags        Meal
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "User message and optional session ID"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request - empty message"
// @Failure     503 {object} response.Resp "Service Unavailable - nutrition model down"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	output, err := h.uc.Chat(ctx, req.scope(), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// History godoc
// @Summary     Get meal history
// @Description Returns nutrition totals for every day with at least one logged meal.
// @Tags        Meal
// @Produce     json
// @Success     200 {object} historyResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.History(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newHistoryResp(output))
}

// DaySummary godoc
// @Summary     Get one day's summary
// @Description Returns nutrition totals and flattened items for a single day.
// @Tags        Meal
// @Produce     json
// @Param       date path string true "Calendar day (YYYY-MM-DD)"
// @Success     200 {object} daySummaryResp
// @Failure     400 {object} response.Resp "Bad Request - malformed date"
// @Failure     404 {object} response.Resp "Not Found - no meals that day"
// @Router      /api/v1/history/{date} [GET]
func (h *handler) DaySummary(c *gin.Context) {
	ctx := c.Request.Context()

	day, err := h.processDayParam(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	output, err := h.uc.DaySummary(ctx, day)
	if err != nil {
		if !errors.Is(err, meal.ErrNoMealsForDay) {
			h.l.Errorf(ctx, "uc.DaySummary: %v", err)
		}
		h.respondError(c, err)
		return
	}

	response.OK(c, newDaySummaryResp(output.Day, output.Summary))
}

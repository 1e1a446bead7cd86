package http

import (
	"nutrichat/internal/meal"
	"nutrichat/internal/model"
)

// --- Request DTOs ---

type chatReq struct {
	Message   string `json:"message"    binding:"required"`
	SessionID string `json:"session_id"`
}

func (r chatReq) validate() error { return nil }

func (r chatReq) toInput() meal.ChatInput {
	return meal.ChatInput{Message: r.Message}
}

func (r chatReq) scope() model.Scope {
	return model.Scope{SessionID: r.SessionID}
}

// --- Response DTOs ---

type chatResp struct {
	Reply             string `json:"reply"`
	NeedsConfirmation bool   `json:"needsConfirmation"`
	SessionID         string `json:"session_id"`
	Outcome           string `json:"outcome"`
}

func (h *handler) newChatResp(out meal.ChatOutput) chatResp {
	return chatResp{
		Reply:             out.Reply,
		NeedsConfirmation: out.NeedsConfirmation,
		SessionID:         out.SessionID,
		Outcome:           string(out.Outcome),
	}
}

type daySummaryResp struct {
	Date     string           `json:"date"`
	Calories int              `json:"calories"`
	Protein  int              `json:"protein"`
	Carbs    int              `json:"carbs"`
	Fat      int              `json:"fat"`
	Items    []model.FoodItem `json:"items"`
}

func newDaySummaryResp(day string, s model.DaySummary) daySummaryResp {
	items := s.Items
	if items == nil {
		items = []model.FoodItem{}
	}
	return daySummaryResp{
		Date:     day,
		Calories: s.Calories,
		Protein:  s.Protein,
		Carbs:    s.Carbs,
		Fat:      s.Fat,
		Items:    items,
	}
}

type historyResp struct {
	Days map[string]daySummaryResp `json:"days"`
}

func (h *handler) newHistoryResp(out meal.HistoryOutput) historyResp {
	days := make(map[string]daySummaryResp, len(out.Days))
	for day, s := range out.Days {
		days[day] = newDaySummaryResp(day, s)
	}
	return historyResp{Days: days}
}

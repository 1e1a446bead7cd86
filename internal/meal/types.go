package meal

import "nutrichat/internal/model"

// Outcome classifies the result of one chat turn.
type Outcome string

const (
	// OutcomeLogged means the pending meal was committed to the daily log.
	OutcomeLogged Outcome = "logged"
	// OutcomeNeedsConfirmation means items were parsed and the user is being
	// asked to log the meal or add more food.
	OutcomeNeedsConfirmation Outcome = "needs_confirmation"
	// OutcomePlainReply means the model is still clarifying; nothing parsed.
	OutcomePlainReply Outcome = "plain_reply"
)

// ChatInput is the input for one conversational turn.
type ChatInput struct {
	Message string // free-text food description from the user
}

// ChatOutput is the result of one conversational turn.
type ChatOutput struct {
	SessionID         string
	Reply             string
	NeedsConfirmation bool
	Outcome           Outcome
}

// DaySummaryOutput is the aggregation for a single day.
type DaySummaryOutput struct {
	Day     string
	Summary model.DaySummary
}

// HistoryOutput is the aggregation for every day with logged meals.
type HistoryOutput struct {
	Days map[string]model.DaySummary
}

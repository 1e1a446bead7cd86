package meal

import (
	"context"

	"nutrichat/internal/model"
)

// UseCase defines the business logic interface for the meal domain.
type UseCase interface {
	// Chat processes one user utterance: it drives the model call, accumulates
	// parsed food items into the session's pending meal, and commits the meal
	// to the daily log when the model signals confirmed intent.
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)

	// DaySummary aggregates every meal logged on one calendar day.
	DaySummary(ctx context.Context, day string) (DaySummaryOutput, error)

	// History aggregates all days with at least one logged meal.
	History(ctx context.Context) (HistoryOutput, error)
}

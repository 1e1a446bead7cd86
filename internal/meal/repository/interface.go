package repository

import (
	"context"

	"nutrichat/internal/model"
)

// LogRepository persists committed meals keyed by calendar day (YYYY-MM-DD).
type LogRepository interface {
	// AppendMeal stores one committed meal under the given day.
	AppendMeal(ctx context.Context, day string, meal model.Meal) error

	// MealsOn returns the meals logged on a day in commit order.
	// An unknown day yields an empty slice, not an error.
	MealsOn(ctx context.Context, day string) ([]model.Meal, error)

	// Days returns every day with at least one logged meal, sorted ascending.
	Days(ctx context.Context) ([]string, error)
}

package meal

import "errors"

// Domain-specific errors for the meal package.
var (
	ErrEmptyMessage     = errors.New("message is empty")
	ErrInvalidDay       = errors.New("day must be formatted as YYYY-MM-DD")
	ErrNoMealsForDay    = errors.New("no meals logged for this day")
	ErrModelUnavailable = errors.New("nutrition model is unavailable")
)

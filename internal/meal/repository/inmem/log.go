// Package inmem provides the in-memory meal log. All data lives for the
// lifetime of the process only.
package inmem

import (
	"context"
	"sort"
	"sync"

	"nutrichat/internal/meal/repository"
	"nutrichat/internal/model"
)

type logRepository struct {
	mu    sync.RWMutex
	meals map[string][]model.Meal
}

// NewLogRepository creates an empty in-memory meal log.
func NewLogRepository() repository.LogRepository {
	return &logRepository{
		meals: make(map[string][]model.Meal),
	}
}

func (r *logRepository) AppendMeal(_ context.Context, day string, meal model.Meal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]model.FoodItem, len(meal.Items))
	copy(items, meal.Items)
	meal.Items = items

	r.meals[day] = append(r.meals[day], meal)
	return nil
}

func (r *logRepository) MealsOn(_ context.Context, day string) ([]model.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.meals[day]
	out := make([]model.Meal, len(stored))
	copy(out, stored)
	return out, nil
}

func (r *logRepository) Days(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	days := make([]string, 0, len(r.meals))
	for day := range r.meals {
		days = append(days, day)
	}
	sort.Strings(days)
	return days, nil
}

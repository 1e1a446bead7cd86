package inmem

import (
	"context"
	"testing"
	"time"

	"nutrichat/internal/model"
)

func TestLogRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("AppendAndReadBack", func(t *testing.T) {
		repo := NewLogRepository()
		meal := model.Meal{
			CommittedAt: time.Now(),
			Items: []model.FoodItem{
				{Food: "Eggs (4 medium)", Protein: 24, Carbs: 0, Fat: 12, Calories: 280},
			},
		}
		if err := repo.AppendMeal(ctx, "2026-08-31", meal); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		meals, err := repo.MealsOn(ctx, "2026-08-31")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(meals) != 1 {
			t.Fatalf("expected 1 meal, got %d", len(meals))
		}
		if meals[0].Items[0].Food != "Eggs (4 medium)" {
			t.Errorf("unexpected food %q", meals[0].Items[0].Food)
		}
	})

	t.Run("CommitOrderPreserved", func(t *testing.T) {
		repo := NewLogRepository()
		for _, name := range []string{"breakfast", "lunch", "dinner"} {
			meal := model.Meal{Items: []model.FoodItem{{Food: name}}}
			if err := repo.AppendMeal(ctx, "2026-08-31", meal); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		meals, err := repo.MealsOn(ctx, "2026-08-31")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(meals) != 3 {
			t.Fatalf("expected 3 meals, got %d", len(meals))
		}
		for i, name := range []string{"breakfast", "lunch", "dinner"} {
			if meals[i].Items[0].Food != name {
				t.Errorf("position %d: expected %q, got %q", i, name, meals[i].Items[0].Food)
			}
		}
	})

	t.Run("UnknownDayIsEmpty", func(t *testing.T) {
		repo := NewLogRepository()
		meals, err := repo.MealsOn(ctx, "2026-01-01")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(meals) != 0 {
			t.Errorf("expected no meals, got %d", len(meals))
		}
	})

	t.Run("DaysSortedAscending", func(t *testing.T) {
		repo := NewLogRepository()
		for _, day := range []string{"2026-08-31", "2026-08-02", "2026-08-15"} {
			if err := repo.AppendMeal(ctx, day, model.Meal{}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		days, err := repo.Days(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"2026-08-02", "2026-08-15", "2026-08-31"}
		if len(days) != len(want) {
			t.Fatalf("expected %d days, got %d", len(want), len(days))
		}
		for i := range want {
			if days[i] != want[i] {
				t.Errorf("position %d: expected %q, got %q", i, want[i], days[i])
			}
		}
	})

	t.Run("StoredMealIsolatedFromCallerSlice", func(t *testing.T) {
		repo := NewLogRepository()
		items := []model.FoodItem{{Food: "Rice (200g)", Carbs: 56, Calories: 260}}
		if err := repo.AppendMeal(ctx, "2026-08-31", model.Meal{Items: items}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		items[0].Food = "mutated"

		meals, err := repo.MealsOn(ctx, "2026-08-31")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if meals[0].Items[0].Food != "Rice (200g)" {
			t.Errorf("stored meal shares memory with caller slice: %q", meals[0].Items[0].Food)
		}
	})
}

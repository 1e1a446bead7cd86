package usecase

import (
	"context"
	"time"

	"nutrichat/internal/meal"
	"nutrichat/internal/model"
)

func (uc *implUseCase) DaySummary(ctx context.Context, day string) (meal.DaySummaryOutput, error) {
	if _, err := time.Parse(model.DayKeyFormat, day); err != nil {
		return meal.DaySummaryOutput{}, meal.ErrInvalidDay
	}

	meals, err := uc.repo.MealsOn(ctx, day)
	if err != nil {
		uc.l.Errorf(ctx, "meal.usecase.DaySummary: %v", err)
		return meal.DaySummaryOutput{}, err
	}
	if len(meals) == 0 {
		return meal.DaySummaryOutput{}, meal.ErrNoMealsForDay
	}

	return meal.DaySummaryOutput{Day: day, Summary: foldMeals(meals)}, nil
}

func (uc *implUseCase) History(ctx context.Context) (meal.HistoryOutput, error) {
	days, err := uc.repo.Days(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "meal.usecase.History: %v", err)
		return meal.HistoryOutput{}, err
	}

	out := meal.HistoryOutput{Days: make(map[string]model.DaySummary, len(days))}
	for _, day := range days {
		meals, err := uc.repo.MealsOn(ctx, day)
		if err != nil {
			uc.l.Errorf(ctx, "meal.usecase.History: %v", err)
			return meal.HistoryOutput{}, err
		}
		out.Days[day] = foldMeals(meals)
	}
	return out, nil
}

// foldMeals flattens a day's meals into one summary, items in
// meal-then-item order.
func foldMeals(meals []model.Meal) model.DaySummary {
	var s model.DaySummary
	for _, m := range meals {
		for _, item := range m.Items {
			s.Items = append(s.Items, item)
			s.Calories += item.Calories
			s.Protein += item.Protein
			s.Carbs += item.Carbs
			s.Fat += item.Fat
		}
	}
	return s
}

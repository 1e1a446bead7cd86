package usecase

import (
	"context"

	"nutrichat/internal/model"
	"nutrichat/internal/profile"
)

func (uc *implUseCase) Get(_ context.Context) (model.Profile, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.current, nil
}

func (uc *implUseCase) Update(ctx context.Context, input profile.UpdateInput) (model.Profile, error) {
	if err := validate(input); err != nil {
		return model.Profile{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if input.Name != nil {
		uc.current.Name = *input.Name
	}
	if input.Age != nil {
		uc.current.Age = *input.Age
	}
	if input.Email != nil {
		uc.current.Email = *input.Email
	}
	if input.Height != nil {
		uc.current.Height = *input.Height
	}
	if input.Weight != nil {
		uc.current.Weight = *input.Weight
	}
	if input.Theme != nil {
		uc.current.Theme = *input.Theme
	}
	if input.FontSize != nil {
		uc.current.FontSize = *input.FontSize
	}

	uc.l.Infof(ctx, "profile updated")
	return uc.current, nil
}

func validate(input profile.UpdateInput) error {
	if input.Age != nil && (*input.Age < 0 || *input.Age > 150) {
		return profile.ErrInvalidAge
	}
	if input.Theme != nil && *input.Theme != "light" && *input.Theme != "dark" {
		return profile.ErrInvalidTheme
	}
	if input.FontSize != nil {
		switch *input.FontSize {
		case "small", "medium", "large":
		default:
			return profile.ErrInvalidFontSize
		}
	}
	return nil
}

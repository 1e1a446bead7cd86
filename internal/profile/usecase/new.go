package usecase

import (
	"sync"

	"nutrichat/config"
	"nutrichat/internal/model"
	"nutrichat/internal/profile"
	pkgLog "nutrichat/pkg/log"
)

type implUseCase struct {
	l pkgLog.Logger

	mu      sync.RWMutex
	current model.Profile
}

// New creates the profile use case seeded from config. The profile lives in
// memory only; there is a single user.
func New(l pkgLog.Logger, cfg config.ProfileConfig) profile.UseCase {
	return &implUseCase{
		l: l,
		current: model.Profile{
			Name:     cfg.Name,
			Theme:    "light",
			FontSize: "medium",
		},
	}
}

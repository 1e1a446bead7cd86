package usecase

import (
	"time"

	"nutrichat/config"
	"nutrichat/internal/meal"
	"nutrichat/internal/meal/repository"
	"nutrichat/internal/meal/session"
	"nutrichat/pkg/llmprovider"
	pkgLog "nutrichat/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	generator llmprovider.Generator
	repo      repository.LogRepository
	sessions  *session.Store
	loc       *time.Location
	timeout   time.Duration
	clock     func() time.Time
}

// New creates the meal use case. Timezone and request timeout come from the
// chat config; invalid values fall back to UTC and 30s.
func New(
	l pkgLog.Logger,
	generator llmprovider.Generator,
	repo repository.LogRepository,
	sessions *session.Store,
	cfg config.ChatConfig,
) meal.UseCase {
	loc := time.UTC
	if cfg.Timezone != "" {
		if parsed, err := time.LoadLocation(cfg.Timezone); err == nil {
			loc = parsed
		}
	}

	timeout := 30 * time.Second
	if d, err := time.ParseDuration(cfg.RequestTimeout); err == nil && d > 0 {
		timeout = d
	}

	return &implUseCase{
		l:         l,
		generator: generator,
		repo:      repo,
		sessions:  sessions,
		loc:       loc,
		timeout:   timeout,
		clock:     time.Now,
	}
}

package profile

import (
	"context"

	"nutrichat/internal/model"
)

// UseCase defines the business logic interface for the profile domain.
type UseCase interface {
	Get(ctx context.Context) (model.Profile, error)
	Update(ctx context.Context, input UpdateInput) (model.Profile, error)
}

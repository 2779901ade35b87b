package auth

import (
	"context"

	drepo "WyckoffLab/internal/domain/repository"
)

// StaticProvider treats the bearer token itself as the user id. Used when
// verification is disabled in local development.
type StaticProvider struct{}

func NewStaticProvider() drepo.IdentityProvider {
	return StaticProvider{}
}

func (StaticProvider) CurrentUserID(_ context.Context, token string) (string, error) {
	return token, nil
}

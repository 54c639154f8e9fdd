package session

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, userID int, tokenHash string, expiresAt time.Time) error

	// Validate returns the user owning an unexpired session with the given
	// token hash, or ErrInvalidSession.
	Validate(ctx context.Context, tokenHash string) (int, error)

	// Delete revokes the session with the given token hash. Revoking an
	// unknown session is not an error.
	Delete(ctx context.Context, tokenHash string) error
}

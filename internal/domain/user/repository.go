package user

import "context"

type Repository interface {
	// Create inserts a new user and returns its ID. Returns ErrEmailTaken
	// when the email is already registered.
	Create(ctx context.Context, email, passwordHash string) (int, error)

	// FindByEmail returns the user matching email, or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (User, error)
}

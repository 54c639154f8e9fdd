package aluno

import "context"

// Repository is the persistence contract for alunos. Every operation is
// scoped by the owning user: a record is only visible to and mutable by
// its owner.
type Repository interface {
	// List returns all records owned by userID, newest first.
	List(ctx context.Context, userID int) ([]Aluno, error)

	// Get returns the record matching alunoID, or ErrNotFound when it does
	// not exist or belongs to another user.
	Get(ctx context.Context, userID int, alunoID string) (*Aluno, error)

	// Create inserts a new record and fills in its store-assigned ID and
	// CreatedAt.
	Create(ctx context.Context, a *Aluno) error

	// Update overwrites the user-editable fields of the record matching
	// a.ID. Returns ErrNotFound when no owned row matches.
	Update(ctx context.Context, a *Aluno) error

	// Delete removes the record matching alunoID. Returns ErrNotFound when
	// no owned row matches.
	Delete(ctx context.Context, userID int, alunoID string) error
}

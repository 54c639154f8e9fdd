package aluno

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, userID int) ([]Aluno, error)
	Create(ctx context.Context, userID int, p Payload) (*Aluno, error)
	Update(ctx context.Context, userID int, alunoID string, p Payload) (*Aluno, error)
	Delete(ctx context.Context, userID int, alunoID string) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) Servicer {
	return &Service{
		repo: repo,
		log:  log.With("component", "aluno_service"),
	}
}

// List returns all records owned by userID, newest first.
func (s *Service) List(ctx context.Context, userID int) ([]Aluno, error) {
	alunos, err := s.repo.List(ctx, userID)
	if err != nil {
		s.log.Error("failed to list alunos", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list alunos: %w", err)
	}
	return alunos, nil
}

// Create validates p and inserts a new record owned by userID.
func (s *Service) Create(ctx context.Context, userID int, p Payload) (*Aluno, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}

	a := &Aluno{
		Nome:   p.Nome,
		Email:  p.Email,
		Curso:  p.Curso,
		Idade:  p.Idade,
		UserID: userID,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.log.Error("failed to create aluno", "user_id", userID, "error", err)
		return nil, fmt.Errorf("create aluno: %w", err)
	}

	s.log.Info("aluno created", "aluno_id", a.ID, "user_id", userID)
	return a, nil
}

// Update validates p and overwrites the editable fields of the owned record
// matching alunoID. ID and UserID never change.
func (s *Service) Update(ctx context.Context, userID int, alunoID string, p Payload) (*Aluno, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}

	current, err := s.repo.Get(ctx, userID, alunoID)
	if err != nil {
		return nil, err
	}

	current.Nome = p.Nome
	current.Email = p.Email
	current.Curso = p.Curso
	current.Idade = p.Idade

	if err := s.repo.Update(ctx, current); err != nil {
		s.log.Error("failed to update aluno",
			"aluno_id", alunoID, "user_id", userID, "error", err)
		return nil, fmt.Errorf("update aluno: %w", err)
	}

	s.log.Info("aluno updated", "aluno_id", alunoID, "user_id", userID)
	return current, nil
}

// Delete removes the owned record matching alunoID.
func (s *Service) Delete(ctx context.Context, userID int, alunoID string) error {
	if err := s.repo.Delete(ctx, userID, alunoID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete aluno",
			"aluno_id", alunoID, "user_id", userID, "error", err)
		return fmt.Errorf("delete aluno: %w", err)
	}

	s.log.Info("aluno deleted", "aluno_id", alunoID, "user_id", userID)
	return nil
}

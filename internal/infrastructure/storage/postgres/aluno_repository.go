package postgres

import (
	"context"
	"errors"
	"fmt"

	"alunos/internal/domain/aluno"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

type AlunoRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewAlunoRepository(pool *pgxpool.Pool, log *slog.Logger) *AlunoRepository {
	return &AlunoRepository{
		pool: pool,
		log:  log.With("component", "aluno_repository"),
	}
}

func (r *AlunoRepository) List(ctx context.Context, userID int) ([]aluno.Aluno, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id::text, user_id, nome, email, curso, idade, created_at
		 FROM alunos
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list alunos: %w", err)
	}
	defer rows.Close()

	return scanAlunos(rows)
}

func (r *AlunoRepository) Get(ctx context.Context, userID int, alunoID string) (*aluno.Aluno, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id::text, user_id, nome, email, curso, idade, created_at
		 FROM alunos
		 WHERE id = $1 AND user_id = $2`,
		alunoID, userID,
	)

	a, err := scanAluno(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, aluno.ErrNotFound
		}
		return nil, fmt.Errorf("get aluno: %w", err)
	}
	return a, nil
}

// Create mints the record id and reads back the store-assigned timestamp.
func (r *AlunoRepository) Create(ctx context.Context, a *aluno.Aluno) error {
	a.ID = uuid.New().String()

	row := r.pool.QueryRow(ctx,
		`INSERT INTO alunos (id, user_id, nome, email, curso, idade)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		a.ID, a.UserID, a.Nome, a.Email, a.Curso, a.Idade,
	)
	if err := row.Scan(&a.CreatedAt); err != nil {
		return fmt.Errorf("create aluno: %w", err)
	}

	r.log.Debug("aluno created", "id", a.ID)
	return nil
}

func (r *AlunoRepository) Update(ctx context.Context, a *aluno.Aluno) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE alunos
		 SET nome = $1, email = $2, curso = $3, idade = $4
		 WHERE id = $5 AND user_id = $6`,
		a.Nome, a.Email, a.Curso, a.Idade, a.ID, a.UserID,
	)
	if err != nil {
		return fmt.Errorf("update aluno: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return aluno.ErrNotFound
	}
	return nil
}

func (r *AlunoRepository) Delete(ctx context.Context, userID int, alunoID string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM alunos WHERE id = $1 AND user_id = $2`,
		alunoID, userID,
	)
	if err != nil {
		return fmt.Errorf("delete aluno: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return aluno.ErrNotFound
	}
	return nil
}

func scanAlunos(rows pgx.Rows) ([]aluno.Aluno, error) {
	alunos := make([]aluno.Aluno, 0)
	for rows.Next() {
		var a aluno.Aluno
		err := rows.Scan(&a.ID, &a.UserID, &a.Nome, &a.Email, &a.Curso, &a.Idade, &a.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan aluno row: %w", err)
		}
		alunos = append(alunos, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate aluno rows: %w", err)
	}
	return alunos, nil
}

func scanAluno(row pgx.Row) (*aluno.Aluno, error) {
	var a aluno.Aluno
	err := row.Scan(&a.ID, &a.UserID, &a.Nome, &a.Email, &a.Curso, &a.Idade, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

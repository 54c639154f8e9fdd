package aluno

import "time"

// Aluno is a student record. ID is assigned by the persistence layer on
// creation; UserID is the owning principal and is never user-editable.
type Aluno struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Curso     string    `json:"curso"`
	Idade     int       `json:"idade"`
	UserID    int       `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Payload carries the user-editable fields of a record, as submitted by the
// editor form. It must pass Validate before any write.
type Payload struct {
	Nome  string `json:"nome" validate:"required,min=2,max=100"`
	Email string `json:"email" validate:"required,email,max=255"`
	Curso string `json:"curso" validate:"required,min=2,max=100"`
	Idade int    `json:"idade" validate:"required,min=1,max=150"`
}

package client

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// TokenStore persists the session token between CLI invocations in a local
// sqlite database inside the config directory.
type TokenStore struct {
	db *sql.DB
}

func NewTokenStore(path string) (*TokenStore, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir banco de dados: %w", err)
	}

	store := &TokenStore{db: db}
	if err := store.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("erro ao inicializar tabelas: %w", err)
	}
	return store, nil
}

func (s *TokenStore) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS session (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			token TEXT NOT NULL,
			saved_at DATETIME NOT NULL
		);
	`)
	return err
}

// Save stores the token, replacing any previous session.
func (s *TokenStore) Save(token string) error {
	_, err := s.db.Exec(`
		INSERT INTO session (id, token, saved_at) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET token = excluded.token, saved_at = excluded.saved_at
	`, token, time.Now())
	if err != nil {
		return fmt.Errorf("erro ao salvar token: %w", err)
	}
	return nil
}

// Load returns the stored token, or "" when no session exists.
func (s *TokenStore) Load() (string, error) {
	var token string
	err := s.db.QueryRow(`SELECT token FROM session WHERE id = 1`).Scan(&token)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("erro ao carregar token: %w", err)
	}
	return token, nil
}

func (s *TokenStore) Clear() error {
	_, err := s.db.Exec(`DELETE FROM session WHERE id = 1`)
	if err != nil {
		return fmt.Errorf("erro ao remover token: %w", err)
	}
	return nil
}

func (s *TokenStore) Close() error {
	return s.db.Close()
}

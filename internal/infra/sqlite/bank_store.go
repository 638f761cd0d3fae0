// Package sqlite keeps statement banks in a local SQLite file so content can
// be curated without a Postgres server.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"human-or-ai/internal/domain"
	_ "github.com/mattn/go-sqlite3"
)

// BankStore reads and writes statement banks in SQLite.
type BankStore struct {
	conn *sql.DB
}

// Open connects to the database at path and creates the tables if needed.
func Open(path string) (*BankStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}
	return &BankStore{conn: db}, nil
}

func (s *BankStore) Close() error {
	return s.conn.Close()
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS banks (
			id   TEXT PRIMARY KEY,
			kind TEXT NOT NULL DEFAULT 'text'
		)
	`)
	if err != nil {
		return err
	}
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS statements (
			bank_id    TEXT    NOT NULL,
			position   INTEGER NOT NULL,
			text       TEXT    NOT NULL,
			author     TEXT    NOT NULL,
			difficulty TEXT    NOT NULL DEFAULT '',
			PRIMARY KEY (bank_id, position)
		)
	`)
	return err
}

// LoadBank implements memory.BankLoader.
func (s *BankStore) LoadBank(ctx context.Context, bankID string) (domain.Bank, error) {
	var kind string
	err := s.conn.QueryRowContext(ctx, "SELECT kind FROM banks WHERE id = ?", bankID).Scan(&kind)
	if err == sql.ErrNoRows {
		return domain.Bank{}, domain.ErrBankNotFound
	}
	if err != nil {
		return domain.Bank{}, fmt.Errorf("load bank: %w", err)
	}

	rows, err := s.conn.QueryContext(ctx,
		"SELECT text, author, difficulty FROM statements WHERE bank_id = ? ORDER BY position", bankID)
	if err != nil {
		return domain.Bank{}, fmt.Errorf("load statements: %w", err)
	}
	defer rows.Close()

	bank := domain.Bank{ID: bankID, Kind: domain.BankKind(kind)}
	for rows.Next() {
		var st domain.Statement
		var author, difficulty string
		if err := rows.Scan(&st.Text, &author, &difficulty); err != nil {
			return domain.Bank{}, fmt.Errorf("scan statement: %w", err)
		}
		st.Author = domain.Label(author)
		st.Difficulty = domain.Difficulty(difficulty)
		bank.Statements = append(bank.Statements, st)
	}
	return bank, rows.Err()
}

// SaveBank replaces the stored content of bank.
func (s *BankStore) SaveBank(ctx context.Context, bank domain.Bank) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO banks (id, kind) VALUES (?, ?) ON CONFLICT(id) DO UPDATE SET kind = excluded.kind",
		bank.ID, string(bank.Kind)); err != nil {
		return fmt.Errorf("upsert bank: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM statements WHERE bank_id = ?", bank.ID); err != nil {
		return fmt.Errorf("clear statements: %w", err)
	}
	for i, st := range bank.Statements {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO statements (bank_id, position, text, author, difficulty) VALUES (?, ?, ?, ?, ?)",
			bank.ID, i, st.Text, string(st.Author), string(st.Difficulty)); err != nil {
			return fmt.Errorf("insert statement: %w", err)
		}
	}
	return tx.Commit()
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"human-or-ai/internal/domain"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// BankLoader loads statement banks from Postgres.
type BankLoader struct {
	pool *pgxpool.Pool
}

func NewBankLoader(pool *pgxpool.Pool) *BankLoader {
	return &BankLoader{pool: pool}
}

func (l *BankLoader) LoadBank(ctx context.Context, bankID string) (domain.Bank, error) {
	bank := domain.Bank{ID: bankID}
	var kind string
	err := l.pool.QueryRow(ctx, `SELECT kind FROM banks WHERE id=$1`, bankID).Scan(&kind)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Bank{}, domain.ErrBankNotFound
	}
	if err != nil {
		return domain.Bank{}, fmt.Errorf("load bank: %w", err)
	}
	bank.Kind = domain.BankKind(kind)

	rows, err := l.pool.Query(ctx,
		`SELECT text, author, difficulty FROM statements WHERE bank_id=$1 ORDER BY position`, bankID)
	if err != nil {
		return domain.Bank{}, fmt.Errorf("load statements: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var text, author, difficulty string
		if err := rows.Scan(&text, &author, &difficulty); err != nil {
			return domain.Bank{}, fmt.Errorf("scan statement: %w", err)
		}
		bank.Statements = append(bank.Statements, domain.Statement{
			Text:       text,
			Author:     domain.Label(author),
			Difficulty: domain.Difficulty(difficulty),
		})
	}
	if err := rows.Err(); err != nil {
		return domain.Bank{}, fmt.Errorf("load statements: %w", err)
	}
	return bank, nil
}

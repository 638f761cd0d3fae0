package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"human-or-ai/internal/domain"
	"github.com/uptrace/bun"
)

type bankRow struct {
	bun.BaseModel `bun:"table:banks"`

	ID   string `bun:"id,pk"`
	Kind string `bun:"kind"`
}

type statementRow struct {
	bun.BaseModel `bun:"table:statements"`

	BankID     string `bun:"bank_id,pk"`
	Position   int    `bun:"position,pk"`
	Text       string `bun:"text"`
	Author     string `bun:"author"`
	Difficulty string `bun:"difficulty"`
}

// SeedBank replaces the stored content of bank in a single transaction.
func SeedBank(ctx context.Context, db *bun.DB, bank domain.Bank) error {
	return db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		row := &bankRow{ID: bank.ID, Kind: string(bank.Kind)}
		if _, err := tx.NewInsert().
			Model(row).
			On("CONFLICT (id) DO UPDATE").
			Set("kind = EXCLUDED.kind").
			Exec(ctx); err != nil {
			return fmt.Errorf("upsert bank: %w", err)
		}

		if _, err := tx.NewDelete().
			Model((*statementRow)(nil)).
			Where("bank_id = ?", bank.ID).
			Exec(ctx); err != nil {
			return fmt.Errorf("clear statements: %w", err)
		}

		if len(bank.Statements) == 0 {
			return nil
		}
		rows := make([]statementRow, len(bank.Statements))
		for i, st := range bank.Statements {
			rows[i] = statementRow{
				BankID:     bank.ID,
				Position:   i,
				Text:       st.Text,
				Author:     string(st.Author),
				Difficulty: string(st.Difficulty),
			}
		}
		if _, err := tx.NewInsert().Model(&rows).Exec(ctx); err != nil {
			return fmt.Errorf("insert statements: %w", err)
		}
		return nil
	})
}

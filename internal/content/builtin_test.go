package content

import (
	"testing"

	"human-or-ai/internal/domain"
)

func TestDefaultBankCoversEveryDifficulty(t *testing.T) {
	bank := DefaultBank()
	if bank.ID != DefaultBankID || bank.Kind != domain.BankText {
		t.Fatalf("unexpected bank header %s/%s", bank.ID, bank.Kind)
	}
	perDifficulty := map[domain.Difficulty]int{}
	seen := map[string]bool{}
	for _, st := range bank.Statements {
		if !st.Author.Valid() {
			t.Fatalf("invalid author on %q", st.Text)
		}
		if seen[st.Text] {
			t.Fatalf("duplicate statement %q", st.Text)
		}
		seen[st.Text] = true
		perDifficulty[st.Difficulty]++
	}
	for _, d := range []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard} {
		// The largest selectable count must be satisfiable by Mixed, and 5 by each level.
		if perDifficulty[d] < 5 {
			t.Fatalf("difficulty %s has only %d statements", d, perDifficulty[d])
		}
	}
	if len(bank.Statements) < 20 {
		t.Fatalf("expected at least 20 statements, got %d", len(bank.Statements))
	}
}

func TestDefaultBankReturnsCopy(t *testing.T) {
	a := DefaultBank()
	a.Statements[0].Text = "changed"
	if DefaultBank().Statements[0].Text == "changed" {
		t.Fatalf("DefaultBank must not share its backing array")
	}
}

package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"human-or-ai/internal/domain"
)

func TestBankRepositoryCaches(t *testing.T) {
	loader := &countingLoader{
		BankLoader: NewStaticBankLoader(sampleBank()),
	}
	repo := NewBankRepository(loader, time.Minute)

	if _, err := repo.GetBank(context.Background(), "bank-1"); err != nil {
		t.Fatalf("get bank: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader once, got %d", loader.calls)
	}

	if _, err := repo.GetBank(context.Background(), "bank-1"); err != nil {
		t.Fatalf("get bank 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls %d", loader.calls)
	}
}

func TestBankRepositoryExpires(t *testing.T) {
	loader := &countingLoader{
		BankLoader: NewStaticBankLoader(sampleBank()),
	}
	repo := NewBankRepository(loader, time.Minute)
	now := time.Unix(1000, 0)
	repo.clock = func() time.Time { return now }

	_, _ = repo.GetBank(context.Background(), "bank-1")
	now = now.Add(2 * time.Minute)
	_, _ = repo.GetBank(context.Background(), "bank-1")
	if loader.calls != 2 {
		t.Fatalf("expected reload after ttl, loader calls %d", loader.calls)
	}
}

func TestStaticBankLoaderMissing(t *testing.T) {
	_, err := NewStaticBankLoader().LoadBank(context.Background(), "nope")
	if !errors.Is(err, domain.ErrBankNotFound) {
		t.Fatalf("expected ErrBankNotFound, got %v", err)
	}
}

func TestChainLoaderFallsThrough(t *testing.T) {
	chain := ChainLoader{NewStaticBankLoader(), NewStaticBankLoader(sampleBank())}
	bank, err := chain.LoadBank(context.Background(), "bank-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(bank.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(bank.Statements))
	}
	if _, err := chain.LoadBank(context.Background(), "other"); !errors.Is(err, domain.ErrBankNotFound) {
		t.Fatalf("expected ErrBankNotFound, got %v", err)
	}
}

func TestBankRepositoryChainErrorIsNotCached(t *testing.T) {
	broken := &flakyLoader{err: errors.New("connection refused")}
	loader := &countingLoader{
		BankLoader: ChainLoader{broken, NewStaticBankLoader(sampleBank())},
	}
	repo := NewBankRepository(loader, time.Minute)

	_, err := repo.GetBank(context.Background(), "bank-1")
	if err == nil || errors.Is(err, domain.ErrBankNotFound) {
		t.Fatalf("expected the store error to stop the chain, got %v", err)
	}

	broken.err = nil
	bank, err := repo.GetBank(context.Background(), "bank-1")
	if err != nil {
		t.Fatalf("get bank after recovery: %v", err)
	}
	if len(bank.Statements) != 2 {
		t.Fatalf("expected fallback bank, got %d statements", len(bank.Statements))
	}
	if loader.calls != 2 {
		t.Fatalf("failed load must not be cached, loader calls %d", loader.calls)
	}
}

func TestBankRepositoryReturnsCopies(t *testing.T) {
	repo := NewBankRepository(NewStaticBankLoader(sampleBank()), time.Minute)

	first, err := repo.GetBank(context.Background(), "bank-1")
	if err != nil {
		t.Fatalf("get bank: %v", err)
	}
	first.Statements[0].Text = "edited"
	first.Statements = first.Statements[:1]

	second, err := repo.GetBank(context.Background(), "bank-1")
	if err != nil {
		t.Fatalf("get bank 2: %v", err)
	}
	if len(second.Statements) != 2 || second.Statements[0].Text == "edited" {
		t.Fatalf("cached bank was modified through a returned copy: %+v", second.Statements)
	}
}

// flakyLoader fails with err until it is cleared, then reports not found so
// the chain moves on.
type flakyLoader struct {
	err error
}

func (l *flakyLoader) LoadBank(_ context.Context, _ string) (domain.Bank, error) {
	if l.err != nil {
		return domain.Bank{}, l.err
	}
	return domain.Bank{}, domain.ErrBankNotFound
}

type countingLoader struct {
	BankLoader
	calls int
}

func (l *countingLoader) LoadBank(ctx context.Context, bankID string) (domain.Bank, error) {
	l.calls++
	return l.BankLoader.LoadBank(ctx, bankID)
}

func sampleBank() domain.Bank {
	return domain.Bank{
		ID:   "bank-1",
		Kind: domain.BankText,
		Statements: []domain.Statement{
			{Text: "I burnt the toast again.", Author: domain.Human, Difficulty: domain.Easy},
			{Text: "As a language model, I enjoy toast.", Author: domain.AI, Difficulty: domain.Easy},
		},
	}
}

package redis

import (
	"context"
	"testing"
	"time"

	"human-or-ai/internal/domain"
	"human-or-ai/internal/infra/memory"
	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestBankRepositoryCachesInRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := newClient(mr)

	loader := &countingLoader{
		BankLoader: memory.NewStaticBankLoader(sampleBank()),
	}
	repo := NewBankRepository(client, loader, time.Minute)

	_, err = repo.GetBank(context.Background(), "bank-1")
	if err != nil {
		t.Fatalf("get bank: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader called once, got %d", loader.calls)
	}
	if !mr.Exists("bank:bank-1:statements") {
		t.Fatalf("expected statements hash to be cached")
	}

	// Second call should hit cache, loader not incremented.
	bank, err := repo.GetBank(context.Background(), "bank-1")
	if err != nil {
		t.Fatalf("get bank 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls=%d", loader.calls)
	}
	want := sampleBank()
	if bank.Kind != want.Kind || len(bank.Statements) != len(want.Statements) {
		t.Fatalf("cached bank mismatch: %+v", bank)
	}
	for i := range want.Statements {
		if bank.Statements[i] != want.Statements[i] {
			t.Fatalf("statement %d: got %+v want %+v", i, bank.Statements[i], want.Statements[i])
		}
	}
}

func TestBankRepositoryReloadsAfterExpiry(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	loader := &countingLoader{
		BankLoader: memory.NewStaticBankLoader(sampleBank()),
	}
	repo := NewBankRepository(newClient(mr), loader, time.Minute)

	_, _ = repo.GetBank(context.Background(), "bank-1")
	mr.FastForward(2 * time.Minute)
	_, _ = repo.GetBank(context.Background(), "bank-1")
	if loader.calls != 2 {
		t.Fatalf("expected reload after ttl, loader calls=%d", loader.calls)
	}
}

type countingLoader struct {
	memory.BankLoader
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
			{Text: "My grandmother's soup cured everything except boredom.", Author: domain.Human, Difficulty: domain.Medium},
			{Text: "Sunsets remind us that endings can be beautiful too.", Author: domain.AI, Difficulty: domain.Hard},
			{Text: "I fixed the bug by deleting the test.", Author: domain.Human, Difficulty: domain.Easy},
		},
	}
}

func newClient(mr *miniredis.Miniredis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
}

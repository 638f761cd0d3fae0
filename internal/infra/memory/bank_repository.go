package memory

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"human-or-ai/internal/domain"
	"golang.org/x/sync/singleflight"
)

// BankLoader fetches content banks from a backing store (Postgres, SQLite, image folders).
type BankLoader interface {
	LoadBank(ctx context.Context, bankID string) (domain.Bank, error)
}

// BankRepository caches banks with TTL to avoid repeated loads.
type BankRepository struct {
	loader BankLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand
	rndMu  sync.Mutex

	mu    sync.RWMutex
	cache map[string]cachedBank
}

type cachedBank struct {
	bank      domain.Bank
	expiresAt time.Time
}

func NewBankRepository(loader BankLoader, ttl time.Duration) *BankRepository {
	return &BankRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[string]cachedBank),
	}
}

// GetBank returns a copy of the cached bank, loading it on a miss or after
// expiry. Load errors are returned as is and never cached.
func (r *BankRepository) GetBank(ctx context.Context, bankID string) (domain.Bank, error) {
	if bank, ok := r.lookup(bankID, r.clock()); ok {
		return cloneBank(bank), nil
	}

	result, err, _ := r.sf.Do(bankID, func() (interface{}, error) {
		now := r.clock()
		if bank, ok := r.lookup(bankID, now); ok {
			return bank, nil
		}

		bank, err := r.loader.LoadBank(ctx, bankID)
		if err != nil {
			return domain.Bank{}, err
		}
		bank = cloneBank(bank)

		r.mu.Lock()
		r.cache[bankID] = cachedBank{
			bank:      bank,
			expiresAt: now.Add(r.ttlWithJitter()),
		}
		r.mu.Unlock()
		return bank, nil
	})
	if err != nil {
		return domain.Bank{}, err
	}
	return cloneBank(result.(domain.Bank)), nil
}

func (r *BankRepository) lookup(bankID string, now time.Time) (domain.Bank, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.cache[bankID]
	if !ok || !entry.expiresAt.After(now) {
		return domain.Bank{}, false
	}
	return entry.bank, true
}

// cloneBank copies the statement slice so callers cannot edit cached content.
func cloneBank(b domain.Bank) domain.Bank {
	b.Statements = append([]domain.Statement(nil), b.Statements...)
	return b
}

// StaticBankLoader is backed by an in-memory map (built-in bank, tests).
type StaticBankLoader struct {
	banks map[string]domain.Bank
}

func NewStaticBankLoader(banks ...domain.Bank) *StaticBankLoader {
	m := make(map[string]domain.Bank, len(banks))
	for _, b := range banks {
		m[b.ID] = b
	}
	return &StaticBankLoader{banks: m}
}

func (l *StaticBankLoader) LoadBank(_ context.Context, bankID string) (domain.Bank, error) {
	if bank, ok := l.banks[bankID]; ok {
		return bank, nil
	}
	return domain.Bank{}, domain.ErrBankNotFound
}

// ChainLoader tries each loader in order and returns the first bank found.
type ChainLoader []BankLoader

func (c ChainLoader) LoadBank(ctx context.Context, bankID string) (domain.Bank, error) {
	for _, l := range c {
		bank, err := l.LoadBank(ctx, bankID)
		if err == nil {
			return bank, nil
		}
		if !errors.Is(err, domain.ErrBankNotFound) {
			return domain.Bank{}, err
		}
	}
	return domain.Bank{}, domain.ErrBankNotFound
}

func (r *BankRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	r.rndMu.Lock()
	defer r.rndMu.Unlock()
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

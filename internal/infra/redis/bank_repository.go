package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"sort"
	"strconv"
	"sync"
	"time"

	"human-or-ai/internal/domain"
	"human-or-ai/internal/infra/memory"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// BankRepository caches banks in Redis and falls back to a loader on cache miss.
// Statements are stored as: HSET bank:{bankID}:statements {position} {statement JSON}
// The kind is stored as:    SET  bank:{bankID}:kind {text|image}
type BankRepository struct {
	client *redis.Client
	loader memory.BankLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
	rndMu  sync.Mutex
}

func NewBankRepository(client *redis.Client, loader memory.BankLoader, ttl time.Duration) *BankRepository {
	return &BankRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *BankRepository) GetBank(ctx context.Context, bankID string) (domain.Bank, error) {
	if bank, ok := r.readCache(ctx, bankID); ok {
		return bank, nil
	}

	result, err, _ := r.sf.Do(bankID, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if bank, ok := r.readCache(ctx, bankID); ok {
			return bank, nil
		}

		bank, err := r.loader.LoadBank(ctx, bankID)
		if err != nil {
			return domain.Bank{}, err
		}
		r.writeCache(ctx, bank)
		return bank, nil
	})
	if err != nil {
		return domain.Bank{}, err
	}
	return result.(domain.Bank), nil
}

func (r *BankRepository) readCache(ctx context.Context, bankID string) (domain.Bank, bool) {
	fields, err := r.client.HGetAll(ctx, r.statementsKey(bankID)).Result()
	if err != nil || len(fields) == 0 {
		return domain.Bank{}, false
	}
	kind, err := r.client.Get(ctx, r.kindKey(bankID)).Result()
	if err != nil {
		return domain.Bank{}, false
	}
	bank, err := buildBankFromCache(bankID, domain.BankKind(kind), fields)
	if err != nil {
		return domain.Bank{}, false
	}
	return bank, true
}

// writeCache is best-effort: a failed write only costs a reload next time.
func (r *BankRepository) writeCache(ctx context.Context, bank domain.Bank) {
	ttl := r.ttlWithJitter()
	stmtKey := r.statementsKey(bank.ID)
	kindKey := r.kindKey(bank.ID)

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, stmtKey)
	for i, st := range bank.Statements {
		raw, err := json.Marshal(st)
		if err != nil {
			return
		}
		pipe.HSet(ctx, stmtKey, strconv.Itoa(i), raw)
	}
	pipe.Set(ctx, kindKey, string(bank.Kind), 0)
	if ttl > 0 {
		pipe.Expire(ctx, stmtKey, ttl)
		pipe.Expire(ctx, kindKey, ttl)
	}
	_, _ = pipe.Exec(ctx)
}

func (r *BankRepository) statementsKey(bankID string) string {
	return "bank:" + bankID + ":statements"
}

func (r *BankRepository) kindKey(bankID string) string {
	return "bank:" + bankID + ":kind"
}

func buildBankFromCache(bankID string, kind domain.BankKind, fields map[string]string) (domain.Bank, error) {
	type positioned struct {
		pos int
		st  domain.Statement
	}
	items := make([]positioned, 0, len(fields))
	for field, raw := range fields {
		pos, err := strconv.Atoi(field)
		if err != nil {
			return domain.Bank{}, err
		}
		var st domain.Statement
		if err := json.Unmarshal([]byte(raw), &st); err != nil {
			return domain.Bank{}, err
		}
		items = append(items, positioned{pos: pos, st: st})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].pos < items[j].pos })

	statements := make([]domain.Statement, len(items))
	for i, it := range items {
		statements[i] = it.st
	}
	return domain.Bank{ID: bankID, Kind: kind, Statements: statements}, nil
}

func (r *BankRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	r.rndMu.Lock()
	defer r.rndMu.Unlock()
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

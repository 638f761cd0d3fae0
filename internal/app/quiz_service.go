package app

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"human-or-ai/internal/clock"
	"human-or-ai/internal/domain"
	"github.com/google/uuid"
)

// DefaultAdvanceDelay keeps per-round feedback visible before the next round.
const DefaultAdvanceDelay = 800 * time.Millisecond

// BankRepository loads content banks (from cache/backing store).
type BankRepository interface {
	GetBank(ctx context.Context, bankID string) (domain.Bank, error)
}

// QuizService owns the state that outlives a single game: the content
// repository and the process leaderboard.
type QuizService struct {
	banks        BankRepository
	leaderboard  *Leaderboard
	scheduler    clock.Scheduler
	advanceDelay time.Duration
	newRand      func() *rand.Rand
	newID        func() string
}

// Option customizes a QuizService.
type Option func(*QuizService)

// WithScheduler replaces the real timer used for the per-round pause.
func WithScheduler(s clock.Scheduler) Option {
	return func(q *QuizService) { q.scheduler = s }
}

// WithAdvanceDelay sets the per-round pause; zero advances immediately.
func WithAdvanceDelay(d time.Duration) Option {
	return func(q *QuizService) { q.advanceDelay = d }
}

// WithRandSource makes sampling deterministic.
func WithRandSource(newRand func() *rand.Rand) Option {
	return func(q *QuizService) { q.newRand = newRand }
}

// WithIDGenerator overrides session ID generation.
func WithIDGenerator(newID func() string) Option {
	return func(q *QuizService) { q.newID = newID }
}

func NewQuizService(banks BankRepository, leaderboard *Leaderboard, opts ...Option) *QuizService {
	q := &QuizService{
		banks:        banks,
		leaderboard:  leaderboard,
		scheduler:    clock.Real{},
		advanceDelay: DefaultAdvanceDelay,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Leaderboard exposes the shared leaderboard for subscriptions.
func (q *QuizService) Leaderboard() *Leaderboard {
	return q.leaderboard
}

// NewGame creates the host-side holder of one player's current session.
func (q *QuizService) NewGame(player string) *Game {
	return &Game{
		svc:       q,
		player:    NormalizePlayer(player),
		observers: make(map[chan View]struct{}),
	}
}

// GameConfig is what a host collects before starting: the bank and settings.
type GameConfig struct {
	BankID   string
	Settings Settings
}

// Game holds the single current Session of one player and replaces it
// wholesale after every action.
type Game struct {
	svc *QuizService

	mu        sync.Mutex
	player    string
	session   Session
	last      *GameConfig
	pending   clock.Timer
	observers map[chan View]struct{}
}

// Start loads the bank and begins a new session, discarding any unsubmitted one.
func (g *Game) Start(ctx context.Context, cfg GameConfig) (View, error) {
	bank, err := g.svc.banks.GetBank(ctx, cfg.BankID)
	if err != nil {
		return g.View(), err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	cfg.Settings.Player = g.player
	if err := g.applyLocked(Start{
		ID:       g.svc.newID(),
		Bank:     bank,
		Settings: cfg.Settings,
		Rand:     g.svc.newRand(),
	}); err != nil {
		return g.viewLocked(), err
	}
	g.last = &cfg
	return g.viewLocked(), nil
}

// Restart starts again with the last configuration.
func (g *Game) Restart(ctx context.Context) (View, error) {
	g.mu.Lock()
	last := g.last
	g.mu.Unlock()
	if last == nil {
		return g.View(), domain.ErrNoSession
	}
	return g.Start(ctx, *last)
}

// SetPlayer changes the name used for this and later sessions.
func (g *Game) SetPlayer(name string) View {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.player = NormalizePlayer(name)
	if g.session.Started() {
		_ = g.applyLocked(Rename{Player: g.player})
	} else {
		g.notifyLocked()
	}
	return g.viewLocked()
}

// RecordAnswer stores a guess for the round at index.
func (g *Game) RecordAnswer(index int, guess domain.Label) (View, error) {
	return g.dispatch(RecordAnswer{Index: index, Guess: guess})
}

// AnswerCurrent answers the visible round in per-round mode.
func (g *Game) AnswerCurrent(guess domain.Label) (View, error) {
	return g.dispatch(AnswerCurrent{Guess: guess})
}

// Submit finalizes a batch session. Repeated submits are silent no-ops.
func (g *Game) Submit() (View, error) {
	return g.dispatch(Submit{})
}

// Session returns the current session value.
func (g *Game) Session() Session {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session
}

// View renders the current session.
func (g *Game) View() View {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.viewLocked()
}

// Subscribe returns a channel receiving a View after every transition,
// including scheduled advances. The caller must invoke cancel.
func (g *Game) Subscribe() (<-chan View, func()) {
	ch := make(chan View, 8)
	g.mu.Lock()
	g.observers[ch] = struct{}{}
	g.mu.Unlock()

	cancel := func() {
		g.mu.Lock()
		if _, ok := g.observers[ch]; ok {
			delete(g.observers, ch)
			close(ch)
		}
		g.mu.Unlock()
	}
	return ch, cancel
}

// Close stops any pending advance.
func (g *Game) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stopPendingLocked()
}

func (g *Game) dispatch(a Action) (View, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	err := g.applyLocked(a)
	return g.viewLocked(), err
}

func (g *Game) applyLocked(a Action) error {
	next, err := Reduce(g.session, a)
	if err != nil {
		return err
	}
	if _, ok := a.(Start); ok {
		g.stopPendingLocked()
	}
	g.session = next

	if archived, entry, ok := Archive(g.session, g.svc.scheduler.Now()); ok {
		g.session = archived
		g.svc.leaderboard.Append(entry)
		log.Printf("session %s archived: %s scored %d/%d", g.session.ID, entry.Name, entry.Score, entry.Total)
	}

	g.notifyLocked()

	switch a.(type) {
	case AnswerCurrent, RecordAnswer:
		g.scheduleAdvanceLocked()
	}
	return nil
}

func (g *Game) scheduleAdvanceLocked() {
	if g.session.Mode != ModePerRound || !g.session.Revealing || g.pending != nil {
		return
	}
	adv := Advance{SessionID: g.session.ID}
	if g.svc.advanceDelay <= 0 {
		_ = g.applyLocked(adv)
		return
	}
	var t clock.Timer
	t = g.svc.scheduler.AfterFunc(g.svc.advanceDelay, func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		if g.pending == t {
			g.pending = nil
		}
		_ = g.applyLocked(adv)
	})
	g.pending = t
}

func (g *Game) stopPendingLocked() {
	if g.pending != nil {
		g.pending.Stop()
		g.pending = nil
	}
}

func (g *Game) notifyLocked() {
	if len(g.observers) == 0 {
		return
	}
	v := g.viewLocked()
	for ch := range g.observers {
		select {
		case ch <- v:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- v
		}
	}
}

func (g *Game) viewLocked() View {
	return BuildView(g.session, g.player, g.svc.leaderboard.Rank())
}

// Selectors are raw host selector values; blank ones keep the current setting.
type Selectors struct {
	Mode       string `json:"mode"`
	Difficulty string `json:"difficulty"`
	Count      string `json:"count"`
	Bank       string `json:"bank"`
}

// With validates sel and applies it on top of c.
func (c GameConfig) With(sel Selectors) (GameConfig, error) {
	out := c
	if sel.Mode != "" {
		mode, err := ParseMode(sel.Mode)
		if err != nil {
			return c, err
		}
		out.Settings.Mode = mode
	}
	if sel.Difficulty != "" {
		d, err := domain.ParseDifficulty(sel.Difficulty)
		if err != nil {
			return c, err
		}
		out.Settings.Difficulty = d
	}
	if sel.Count != "" {
		n, err := ParseCount(sel.Count)
		if err != nil {
			return c, err
		}
		out.Settings.Count = n
	}
	if sel.Bank != "" {
		out.BankID = sel.Bank
	}
	return out, nil
}

package app

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"human-or-ai/internal/domain"
)

// AnonymousPlayer is recorded when no usable name was entered.
const AnonymousPlayer = "Anonymous"

// Mode selects how rounds are presented and scored.
type Mode string

const (
	// ModeBatch shows every round at once and scores on an explicit submit.
	ModeBatch Mode = "batch"
	// ModePerRound shows one round at a time and scores each answer immediately.
	ModePerRound Mode = "round"
)

// ParseMode maps a config or query value onto a Mode. Blank means batch.
func ParseMode(raw string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "batch":
		return ModeBatch, nil
	case "round", "per-round", "perround":
		return ModePerRound, nil
	}
	return "", domain.ErrInvalidMode
}

// Selection decides how the pool is drawn from the candidates.
type Selection string

const (
	// SelectionDefault resolves to sample in batch mode and all in per-round mode.
	SelectionDefault Selection = ""
	// SelectionSample picks Count distinct candidates in random order.
	SelectionSample Selection = "sample"
	// SelectionAll uses every candidate, shuffled.
	SelectionAll Selection = "all"
)

// Settings are the player-facing configuration of one play-through.
type Settings struct {
	Player     string
	Mode       Mode
	Difficulty domain.Difficulty
	Count      int
	Selection  Selection
}

// Round pairs a statement with the player's guess. An empty Guess means unanswered.
type Round struct {
	Statement domain.Statement
	Guess     domain.Label
}

func (r Round) Answered() bool { return r.Guess != "" }

func (r Round) Correct() bool { return r.Guess != "" && r.Guess == r.Statement.Author }

// Session is one play-through. It is a value: transitions return a new Session
// through Reduce and never mutate the receiver.
type Session struct {
	ID        string
	Player    string
	Mode      Mode
	Rounds    []Round
	Cursor    int
	Submitted bool
	// Revealing is set in per-round mode between an answer and the scheduled advance.
	Revealing bool
	Archived  bool
}

// Started reports whether the session was created by a Start action.
func (s Session) Started() bool { return s.ID != "" }

func (s Session) Total() int { return len(s.Rounds) }

// Score counts rounds whose guess matches the author. Unanswered rounds count as wrong.
func (s Session) Score() int {
	score := 0
	for _, r := range s.Rounds {
		if r.Correct() {
			score++
		}
	}
	return score
}

// Answered counts rounds holding a guess.
func (s Session) Answered() int {
	n := 0
	for _, r := range s.Rounds {
		if r.Answered() {
			n++
		}
	}
	return n
}

// Complete reports whether the session reached its terminal state.
func (s Session) Complete() bool {
	if !s.Started() {
		return false
	}
	if s.Mode == ModePerRound {
		return s.Cursor >= len(s.Rounds)
	}
	return s.Submitted
}

// Archive marks a completed session as recorded and returns the entry to append.
// It reports false when the session is incomplete or was already archived.
func Archive(s Session, now time.Time) (Session, domain.LeaderboardEntry, bool) {
	if !s.Complete() || s.Archived {
		return s, domain.LeaderboardEntry{}, false
	}
	s.Archived = true
	return s, domain.LeaderboardEntry{
		Name:      s.Player,
		Score:     s.Score(),
		Total:     s.Total(),
		Timestamp: now,
	}, true
}

// NormalizePlayer trims the name and falls back to AnonymousPlayer.
func NormalizePlayer(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return AnonymousPlayer
	}
	return name
}

// StartSession builds a fresh session from the bank according to settings.
func StartSession(id string, bank domain.Bank, settings Settings, rnd *rand.Rand) (Session, error) {
	mode := settings.Mode
	if mode == "" {
		mode = ModeBatch
	}
	if mode != ModeBatch && mode != ModePerRound {
		return Session{}, domain.ErrInvalidMode
	}
	selection := settings.Selection
	if selection == SelectionDefault {
		selection = SelectionSample
		if mode == ModePerRound {
			selection = SelectionAll
		}
	}

	candidates := FilterByDifficulty(bank.Statements, settings.Difficulty)
	if len(candidates) == 0 {
		return Session{}, domain.ErrInsufficientContent
	}

	var picked []domain.Statement
	switch selection {
	case SelectionAll:
		picked = Shuffle(rnd, candidates)
	case SelectionSample:
		if settings.Count <= 0 {
			return Session{}, domain.ErrInvalidCount
		}
		picked = Sample(rnd, candidates, settings.Count)
	default:
		return Session{}, domain.ErrInvalidMode
	}

	rounds := make([]Round, len(picked))
	for i, st := range picked {
		rounds[i] = Round{Statement: st}
	}
	return Session{
		ID:     id,
		Player: NormalizePlayer(settings.Player),
		Mode:   mode,
		Rounds: rounds,
	}, nil
}

// FilterByDifficulty keeps statements of the requested difficulty. Content
// without difficulty metadata, and the Mixed filter, pass through unfiltered.
func FilterByDifficulty(statements []domain.Statement, difficulty domain.Difficulty) []domain.Statement {
	if difficulty == "" || difficulty == domain.Mixed || !hasDifficulty(statements) {
		return statements
	}
	out := make([]domain.Statement, 0, len(statements))
	for _, st := range statements {
		if st.Difficulty == difficulty {
			out = append(out, st)
		}
	}
	return out
}

func hasDifficulty(statements []domain.Statement) bool {
	for _, st := range statements {
		if st.Difficulty != "" {
			return true
		}
	}
	return false
}

// Sample draws min(n, len(items)) distinct items in uniformly random order.
func Sample(rnd *rand.Rand, items []domain.Statement, n int) []domain.Statement {
	if n > len(items) {
		n = len(items)
	}
	if n < 0 {
		n = 0
	}
	perm := rnd.Perm(len(items))
	out := make([]domain.Statement, n)
	for i := 0; i < n; i++ {
		out[i] = items[perm[i]]
	}
	return out
}

// Shuffle returns every item in uniformly random order.
func Shuffle(rnd *rand.Rand, items []domain.Statement) []domain.Statement {
	return Sample(rnd, items, len(items))
}

// AllowedCounts are the question counts offered by the host selectors.
var AllowedCounts = []int{5, 10, 15, 20}

// ParseCount validates a question-count selector value.
func ParseCount(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, domain.ErrInvalidCount
	}
	for _, allowed := range AllowedCounts {
		if n == allowed {
			return n, nil
		}
	}
	return 0, domain.ErrInvalidCount
}

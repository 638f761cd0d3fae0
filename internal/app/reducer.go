package app

import (
	"math/rand"

	"human-or-ai/internal/domain"
)

// Action is a discrete command applied to a Session by Reduce.
type Action interface {
	isAction()
}

// Start replaces the current session with a fresh one.
type Start struct {
	ID       string
	Bank     domain.Bank
	Settings Settings
	Rand     *rand.Rand
}

// RecordAnswer stores a guess for one round.
type RecordAnswer struct {
	Index int
	Guess domain.Label
}

// Submit finalizes a batch session.
type Submit struct{}

// AnswerCurrent answers the cursor round in per-round mode.
type AnswerCurrent struct {
	Guess domain.Label
}

// Advance moves past a revealed round. Advances for another session are ignored.
type Advance struct {
	SessionID string
}

// Rename changes the player recorded for the session.
type Rename struct {
	Player string
}

func (Start) isAction()         {}
func (RecordAnswer) isAction()  {}
func (Submit) isAction()        {}
func (AnswerCurrent) isAction() {}
func (Advance) isAction()       {}
func (Rename) isAction()        {}

// Reduce applies a to s. On error the original session is returned unchanged.
func Reduce(s Session, a Action) (Session, error) {
	switch a := a.(type) {
	case Start:
		return StartSession(a.ID, a.Bank, a.Settings, a.Rand)
	case Rename:
		s.Player = NormalizePlayer(a.Player)
		return s, nil
	}

	if !s.Started() {
		return s, domain.ErrNoSession
	}

	switch a := a.(type) {
	case RecordAnswer:
		return recordAnswer(s, a)
	case AnswerCurrent:
		return answerCurrent(s, a.Guess)
	case Submit:
		return submit(s)
	case Advance:
		return advance(s, a), nil
	}
	return s, domain.ErrUnsupportedAction
}

func recordAnswer(s Session, a RecordAnswer) (Session, error) {
	if !a.Guess.Valid() {
		return s, domain.ErrInvalidGuess
	}
	if a.Index < 0 || a.Index >= len(s.Rounds) {
		return s, domain.ErrInvalidRoundIndex
	}
	if s.Mode == ModePerRound {
		switch {
		case s.Complete():
			return s, domain.ErrSessionComplete
		case a.Index < s.Cursor:
			return s, domain.ErrRoundClosed
		case a.Index > s.Cursor:
			return s, domain.ErrInvalidRoundIndex
		}
		return answerCurrent(s, a.Guess)
	}

	// Batch answers stay editable after submission until a new game starts.
	s.Rounds = cloneRounds(s.Rounds)
	s.Rounds[a.Index].Guess = a.Guess
	return s, nil
}

func answerCurrent(s Session, guess domain.Label) (Session, error) {
	if s.Mode != ModePerRound {
		return s, domain.ErrUnsupportedAction
	}
	if !guess.Valid() {
		return s, domain.ErrInvalidGuess
	}
	if s.Complete() {
		return s, domain.ErrSessionComplete
	}
	if s.Revealing {
		return s, domain.ErrAdvancePending
	}
	s.Rounds = cloneRounds(s.Rounds)
	s.Rounds[s.Cursor].Guess = guess
	s.Revealing = true
	return s, nil
}

func advance(s Session, a Advance) Session {
	if a.SessionID != s.ID || !s.Revealing {
		return s
	}
	s.Revealing = false
	s.Cursor++
	return s
}

func submit(s Session) (Session, error) {
	if s.Mode != ModeBatch {
		return s, domain.ErrUnsupportedAction
	}
	s.Submitted = true
	return s, nil
}

func cloneRounds(rounds []Round) []Round {
	out := make([]Round, len(rounds))
	copy(out, rounds)
	return out
}

package domain

import "errors"

var (
	// ErrInsufficientContent is returned when the filtered candidate pool is empty.
	ErrInsufficientContent = errors.New("no content matches the selected settings")
	// ErrInvalidRoundIndex indicates a round index outside the session pool.
	ErrInvalidRoundIndex = errors.New("round index out of range")
	// ErrInvalidGuess indicates a guess that is neither Human nor AI.
	ErrInvalidGuess = errors.New("guess must be Human or AI")
	// ErrInvalidCount indicates a non-positive or unsupported question count.
	ErrInvalidCount = errors.New("invalid question count")
	// ErrInvalidDifficulty indicates an unknown difficulty filter.
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	// ErrInvalidMode indicates an unknown interaction mode.
	ErrInvalidMode = errors.New("invalid interaction mode")
	// ErrNoSession is returned when an action arrives before any session was started.
	ErrNoSession = errors.New("no quiz session started")
	// ErrSessionComplete is returned when answering after every round was played.
	ErrSessionComplete = errors.New("quiz session already complete")
	// ErrRoundClosed is returned when a per-round answer is revisited.
	ErrRoundClosed = errors.New("round already answered")
	// ErrAdvancePending is returned while the feedback pause is still running.
	ErrAdvancePending = errors.New("waiting for next round")
	// ErrUnsupportedAction indicates an action that does not fit the session mode.
	ErrUnsupportedAction = errors.New("action not supported in this mode")
	// ErrBankNotFound indicates the content bank could not be loaded.
	ErrBankNotFound = errors.New("content bank not found")
)

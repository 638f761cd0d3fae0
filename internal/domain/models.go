package domain

import (
	"strings"
	"time"
)

// Label is the ground-truth author category of a statement.
type Label string

const (
	Human Label = "Human"
	AI    Label = "AI"
)

// Valid reports whether l is one of the two guessable labels.
func (l Label) Valid() bool {
	return l == Human || l == AI
}

// ParseLabel accepts "human"/"ai" in any case, plus the "h"/"a" shorthands.
func ParseLabel(raw string) (Label, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "human", "h":
		return Human, nil
	case "ai", "a":
		return AI, nil
	}
	return "", ErrInvalidGuess
}

// Difficulty grades text statements. The zero value means the content
// carries no difficulty metadata (image banks).
type Difficulty string

const (
	Mixed  Difficulty = "Mixed" // filter value only: no filtering
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// ParseDifficulty maps a selector value onto a difficulty filter. Blank means Mixed.
func ParseDifficulty(raw string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "mixed":
		return Mixed, nil
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return "", ErrInvalidDifficulty
}

// Statement is one immutable piece of content with a known author.
type Statement struct {
	Text       string     `json:"text"`
	Author     Label      `json:"author"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
}

// BankKind distinguishes text statement banks from image collections.
type BankKind string

const (
	BankText  BankKind = "text"
	BankImage BankKind = "image"
)

// Bank is a named collection of statements.
type Bank struct {
	ID         string      `json:"id"`
	Kind       BankKind    `json:"kind"`
	Statements []Statement `json:"statements"`
}

// LeaderboardEntry is the archived result of one completed session.
type LeaderboardEntry struct {
	Name      string    `json:"name"`
	Score     int       `json:"score"`
	Total     int       `json:"total"`
	Timestamp time.Time `json:"timestamp"`
}

// RankedEntry is a leaderboard row ready for display.
type RankedEntry struct {
	Rank int `json:"rank"`
	LeaderboardEntry
}

// Leaderboard captures the ranked scoreboard at a point in time.
type Leaderboard struct {
	Entries   []RankedEntry `json:"entries"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

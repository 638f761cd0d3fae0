package app

import (
	"fmt"

	"human-or-ai/internal/domain"
)

// Feedback is the correctness styling of a round once it has been scored.
type Feedback string

const (
	FeedbackNone    Feedback = ""
	FeedbackCorrect Feedback = "correct"
	FeedbackWrong   Feedback = "wrong"
)

// RoundView is one round as a host UI renders it.
type RoundView struct {
	Index    int          `json:"index"`
	Text     string       `json:"text"`
	Guess    domain.Label `json:"guess,omitempty"`
	Feedback Feedback     `json:"feedback,omitempty"`
	// Answer is only filled once feedback is shown.
	Answer domain.Label `json:"answer,omitempty"`
}

// View is the render model handed to host UIs after every transition.
type View struct {
	SessionID       string               `json:"sessionId,omitempty"`
	Player          string               `json:"player"`
	Mode            Mode                 `json:"mode,omitempty"`
	Rounds          []RoundView          `json:"rounds"`
	Cursor          int                  `json:"cursor"`
	Total           int                  `json:"total"`
	Answered        int                  `json:"answered"`
	Submitted       bool                 `json:"submitted"`
	Complete        bool                 `json:"complete"`
	AwaitingAdvance bool                 `json:"awaitingAdvance"`
	Score           int                  `json:"score"`
	ScoreText       string               `json:"scoreText,omitempty"`
	Tier            domain.OutcomeTier   `json:"tier,omitempty"`
	TierMessage     string               `json:"tierMessage,omitempty"`
	Leaderboard     []domain.RankedEntry `json:"leaderboard"`
}

// BuildView derives what a host should display for s.
func BuildView(s Session, player string, board domain.Leaderboard) View {
	v := View{
		SessionID:       s.ID,
		Player:          player,
		Mode:            s.Mode,
		Rounds:          []RoundView{},
		Cursor:          s.Cursor,
		Total:           s.Total(),
		Answered:        s.Answered(),
		Submitted:       s.Submitted,
		Complete:        s.Complete(),
		AwaitingAdvance: s.Revealing,
		Leaderboard:     board.Entries,
	}
	if s.Started() {
		v.Player = s.Player
	}

	switch s.Mode {
	case ModeBatch:
		for i, r := range s.Rounds {
			v.Rounds = append(v.Rounds, roundView(i, r, s.Submitted))
		}
	case ModePerRound:
		if s.Cursor < len(s.Rounds) {
			v.Rounds = append(v.Rounds, roundView(s.Cursor, s.Rounds[s.Cursor], s.Revealing))
		}
		v.Score = s.Score()
	}

	if v.Complete {
		v.Score = s.Score()
		v.ScoreText = fmt.Sprintf("%d / %d", v.Score, v.Total)
		v.Tier = domain.ComputeOutcomeTier(v.Score, v.Total)
		v.TierMessage = v.Tier.Message()
	}
	return v
}

func roundView(i int, r Round, reveal bool) RoundView {
	rv := RoundView{Index: i, Text: r.Statement.Text, Guess: r.Guess}
	if reveal {
		rv.Answer = r.Statement.Author
		rv.Feedback = FeedbackWrong
		if r.Correct() {
			rv.Feedback = FeedbackCorrect
		}
	}
	return rv
}

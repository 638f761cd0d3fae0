// Package terminal is a line-oriented host UI for playing in a shell.
package terminal

import (
	"fmt"
	"strings"

	"human-or-ai/internal/app"
	"human-or-ai/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a855f7"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#38bdf8"))
	correctStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#4ade80"))
	wrongStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#ef4444"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// Render draws a full view: rounds, results when complete, and the leaderboard.
func Render(v app.View) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Human or AI?"))
	b.WriteString("  ")
	b.WriteString(infoStyle.Render("Player: " + v.Player))
	b.WriteString("\n")

	if v.SessionID == "" {
		b.WriteString(dimStyle.Render("No game running. Type 'start' to play."))
		b.WriteString("\n")
	}

	switch v.Mode {
	case app.ModeBatch:
		renderBatch(&b, v)
	case app.ModePerRound:
		renderPerRound(&b, v)
	}

	if v.Complete {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Final Score: " + v.ScoreText))
		b.WriteString("\n")
		b.WriteString(v.TierMessage)
		b.WriteString("\n")
	}

	if len(v.Leaderboard) > 0 {
		b.WriteString("\n")
		b.WriteString(RenderLeaderboard(v.Leaderboard))
	}
	return b.String()
}

func renderBatch(b *strings.Builder, v app.View) {
	fmt.Fprintf(b, "%s\n", infoStyle.Render(fmt.Sprintf("%d of %d answered", v.Answered, v.Total)))
	for _, r := range v.Rounds {
		guess := "-"
		if r.Guess != "" {
			guess = string(r.Guess)
		}
		fmt.Fprintf(b, "%2d. %s\n    your guess: %s %s\n", r.Index+1, r.Text, guess, feedback(r))
	}
	if !v.Submitted {
		b.WriteString(dimStyle.Render("Answer with '<number> human|ai', then 'submit'."))
		b.WriteString("\n")
	}
}

func renderPerRound(b *strings.Builder, v app.View) {
	if v.Complete {
		return
	}
	for _, r := range v.Rounds {
		fmt.Fprintf(b, "%s\n%s\n", infoStyle.Render(fmt.Sprintf("Round %d of %d", r.Index+1, v.Total)), r.Text)
		if r.Feedback != app.FeedbackNone {
			b.WriteString(feedback(r))
			b.WriteString("\n")
		}
	}
	if !v.AwaitingAdvance {
		b.WriteString(dimStyle.Render("Your guess: 'human' or 'ai'."))
		b.WriteString("\n")
	}
}

func feedback(r app.RoundView) string {
	switch r.Feedback {
	case app.FeedbackCorrect:
		return correctStyle.Render(" Correct! ")
	case app.FeedbackWrong:
		return wrongStyle.Render(fmt.Sprintf(" Wrong! It was: %s ", r.Answer))
	}
	return ""
}

// RenderLeaderboard lists ranked rows as "rank. name - score / total".
func RenderLeaderboard(rows []domain.RankedEntry) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Leaderboard"))
	b.WriteString("\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "%d. %s - %d / %d\n", row.Rank, row.Name, row.Score, row.Total)
	}
	return b.String()
}

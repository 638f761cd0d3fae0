package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"human-or-ai/internal/app"
	"human-or-ai/internal/domain"
)

// Host reads commands line by line and prints the game after each one.
type Host struct {
	game *app.Game
	cfg  app.GameConfig
	in   io.Reader
	out  io.Writer
}

func NewHost(game *app.Game, cfg app.GameConfig, in io.Reader, out io.Writer) *Host {
	return &Host{game: game, cfg: cfg, in: in, out: out}
}

const helpText = `commands:
  start                    start a new game with the current settings
  restart                  same as start
  name <player>            set your name (blank = Anonymous)
  <number> human|ai        answer a statement (batch mode)
  human | ai | h | a       answer the visible round (per-round mode)
  submit                   score your answers (batch mode)
  board                    show the leaderboard
  quit                     leave
`

// Run starts a game and processes commands until quit, EOF or ctx ends.
func (h *Host) Run(ctx context.Context) error {
	views, cancel := h.game.Subscribe()
	defer cancel()
	defer h.game.Close()

	if v, err := h.game.Start(ctx, h.cfg); err != nil {
		h.printError(err)
		h.print(Render(v))
	}
	h.flush(views)

	scanner := bufio.NewScanner(h.in)
	for {
		fmt.Fprint(h.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		quit, err := h.exec(ctx, strings.Fields(scanner.Text()))
		if err != nil {
			h.printError(err)
		}
		if quit {
			return nil
		}
		if err := h.awaitAdvance(ctx, views); err != nil {
			return err
		}
		h.flush(views)
	}
}

func (h *Host) exec(ctx context.Context, fields []string) (bool, error) {
	if len(fields) == 0 {
		return false, nil
	}
	switch cmd := strings.ToLower(fields[0]); cmd {
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		h.print(helpText)
		return false, nil
	case "start", "restart":
		_, err := h.game.Start(ctx, h.cfg)
		return false, err
	case "name":
		h.game.SetPlayer(strings.Join(fields[1:], " "))
		return false, nil
	case "submit":
		_, err := h.game.Submit()
		return false, err
	case "board":
		h.print(RenderLeaderboard(h.game.View().Leaderboard))
		return false, nil
	}

	if n, err := strconv.Atoi(fields[0]); err == nil {
		if len(fields) < 2 {
			return false, domain.ErrInvalidGuess
		}
		guess, err := domain.ParseLabel(fields[1])
		if err != nil {
			return false, err
		}
		_, err = h.game.RecordAnswer(n-1, guess)
		return false, err
	}

	guess, err := domain.ParseLabel(fields[0])
	if err != nil {
		return false, fmt.Errorf("unknown command %q (try 'help')", fields[0])
	}
	_, err = h.game.AnswerCurrent(guess)
	return false, err
}

// awaitAdvance shows per-round feedback, then waits for the scheduled advance.
func (h *Host) awaitAdvance(ctx context.Context, views <-chan app.View) error {
	if !h.game.View().AwaitingAdvance {
		return nil
	}
	shown := false
	for {
		select {
		case v, ok := <-views:
			if !ok {
				return nil
			}
			if !v.AwaitingAdvance {
				h.print(Render(v))
				return nil
			}
			if !shown {
				h.print(Render(v))
				shown = true
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// flush prints the newest pending view, if any.
func (h *Host) flush(views <-chan app.View) {
	var last *app.View
	for {
		select {
		case v := <-views:
			last = &v
		default:
			if last != nil {
				h.print(Render(*last))
			}
			return
		}
	}
}

func (h *Host) print(s string) {
	fmt.Fprint(h.out, s)
}

func (h *Host) printError(err error) {
	fmt.Fprintln(h.out, wrongStyle.Render(" "+err.Error()+" "))
}

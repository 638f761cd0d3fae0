package cli

import (
	"context"
	"os"

	"human-or-ai/internal/app"
	"human-or-ai/internal/config"
	"human-or-ai/internal/transport/terminal"
	"github.com/spf13/cobra"
)

// NewPlayCmd plays a game in the current terminal.
func NewPlayCmd(configPath *string) *cobra.Command {
	var name, mode, difficulty, count, bank string
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			deps, err := buildRuntime(ctx, cfg)
			if err != nil {
				return err
			}
			defer deps.Close()

			gc, err := deps.defaults.With(app.Selectors{Mode: mode, Difficulty: difficulty, Count: count, Bank: bank})
			if err != nil {
				return err
			}
			game := deps.service.NewGame(name)
			return terminal.NewHost(game, gc, os.Stdin, cmd.OutOrStdout()).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "player name")
	cmd.Flags().StringVar(&mode, "mode", "", "batch or round")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Mixed, Easy, Medium or Hard")
	cmd.Flags().StringVar(&count, "count", "", "questions per game: 5, 10, 15 or 20")
	cmd.Flags().StringVar(&bank, "bank", "", "content bank id")
	return cmd
}

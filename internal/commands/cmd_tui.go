package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/devboard/internal/core/logging"
	"github.com/hay-kot/devboard/internal/tui"
)

type TuiCmd struct {
	flags *Flags
	app   *App
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, app *App) *TuiCmd {
	return &TuiCmd{
		flags: flags,
		app:   app,
	}
}

// Register adds the tui command to the application
func (cmd *TuiCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "tui",
		Usage:     "Open the interactive dashboard",
		UsageText: "devboard tui",
		Description: `Shows live alerts above a post input and the most recent posts.

Keys: enter posts, ctrl+d dismisses the newest alert, ctrl+x dismisses all
alerts, esc or ctrl+c quits. This is the default command.`,
		Action: cmd.run,
	})

	return app
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	return tui.Run(ctx, tui.Options{
		Store:  cmd.app.Alerts,
		Form:   cmd.app.Posts,
		Styles: cmd.app.Styles,
		Logger: logging.SessionComponent("tui", cmd.app.SessionID),
	})
}

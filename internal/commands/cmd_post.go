package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

type PostCmd struct {
	flags *Flags
	app   *App

	// flags
	jsonOutput bool
}

// NewPostCmd creates a new post command
func NewPostCmd(flags *Flags, app *App) *PostCmd {
	return &PostCmd{flags: flags, app: app}
}

// Register adds the post command to the application
func (cmd *PostCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "post",
		Usage:     "Submit a post",
		UsageText: "devboard post [--json] [text...]",
		Description: `Submits one post and prints the resulting alerts.

Without text arguments the text is prompted for when stdin is a terminal, and
read from stdin otherwise.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output alerts as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *PostCmd) run(ctx context.Context, c *cli.Command) error {
	text := strings.Join(c.Args().Slice(), " ")
	if text == "" {
		var err error
		text, err = cmd.readText(os.Stdin)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
	}

	_, submitErr := cmd.app.Posts.Submit(ctx, text)

	if err := writeAlerts(c.Root().Writer, cmd.app.Alerts.Snapshot(), cmd.app.Alerts.Now(), cmd.jsonOutput); err != nil {
		return err
	}

	if submitErr != nil {
		return fmt.Errorf("submit post: %w", submitErr)
	}
	return nil
}

func (cmd *PostCmd) readText(stdin *os.File) (string, error) {
	if !term.IsTerminal(int(stdin.Fd())) {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	var text string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Post").
				Description("What's on your mind?").
				Value(&text),
		),
	).Run()
	if err != nil {
		return "", fmt.Errorf("form: %w", err)
	}
	return text, nil
}

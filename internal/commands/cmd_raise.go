package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/devboard/internal/core/alert"
)

type RaiseCmd struct {
	flags *Flags
	app   *App

	// flags
	severity   string
	timeout    time.Duration
	wait       bool
	jsonOutput bool
}

// NewRaiseCmd creates a new raise command
func NewRaiseCmd(flags *Flags, app *App) *RaiseCmd {
	return &RaiseCmd{flags: flags, app: app}
}

// Register adds the raise command to the application
func (cmd *RaiseCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "raise",
		Usage:     "Raise an alert",
		UsageText: "devboard raise [--severity info] [--timeout 3s] [--wait] [--json] <message>",
		Description: `Raises one alert and prints the current alerts.

With --wait the command stays until the alert expires, printing every change
to the alert list as it happens.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "severity",
				Aliases:     []string{"s"},
				Usage:       "presentation label (success, danger, warning, info, primary, dark, light, or any other)",
				Value:       string(alert.SeverityInfo),
				Destination: &cmd.severity,
			},
			&cli.DurationFlag{
				Name:        "timeout",
				Aliases:     []string{"t"},
				Usage:       "how long the alert stays visible (defaults to alerts.default_timeout from config)",
				Destination: &cmd.timeout,
			},
			&cli.BoolFlag{
				Name:        "wait",
				Aliases:     []string{"w"},
				Usage:       "block until the alert expires, printing each change",
				Destination: &cmd.wait,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RaiseCmd) run(ctx context.Context, c *cli.Command) error {
	message := strings.Join(c.Args().Slice(), " ")
	if message == "" {
		return fmt.Errorf("message is required")
	}

	store := cmd.app.Alerts
	out := c.Root().Writer

	// Subscribe before raising so an immediate expiry is not missed.
	events := make(chan alert.Event, 16)
	unsubscribe := store.Subscribe(func(e alert.Event) {
		select {
		case events <- e:
		default:
		}
	})
	defer unsubscribe()

	severity := alert.Severity(cmd.severity)
	var id string
	if c.IsSet("timeout") {
		id = store.RaiseFor(message, severity, cmd.timeout)
	} else {
		id = store.Raise(message, severity)
	}

	if !cmd.wait {
		return writeAlerts(out, store.Snapshot(), store.Now(), cmd.jsonOutput)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case e := <-events:
			if err := writeEvent(out, cmd.app.Styles, e, cmd.jsonOutput); err != nil {
				return err
			}
			if e.Alert.ID == id && e.Kind != alert.EventRaised {
				return nil
			}
		}
	}
}

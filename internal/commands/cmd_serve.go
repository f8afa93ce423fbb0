package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/devboard/internal/core/logging"
	"github.com/hay-kot/devboard/internal/server"
)

type ServeCmd struct {
	flags *Flags
	app   *App

	// flags
	addr string
}

// NewServeCmd creates a new serve command
func NewServeCmd(flags *Flags, app *App) *ServeCmd {
	return &ServeCmd{flags: flags, app: app}
}

// Register adds the serve command to the application
func (cmd *ServeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "serve",
		Usage:     "Serve the alert and post API over HTTP",
		UsageText: "devboard serve [--addr host:port]",
		Description: `Runs the HTTP API until interrupted.

Routes:
  GET    /health
  GET    /api/alerts
  POST   /api/alerts       {"message", "severity", "timeout_ms"}
  DELETE /api/alerts/:id
  GET    /api/posts
  POST   /api/posts        {"text"}`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address (defaults to server.addr from config)",
				Sources:     cli.EnvVars("DEVBOARD_ADDR"),
				Destination: &cmd.addr,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ServeCmd) run(ctx context.Context, _ *cli.Command) error {
	cfg := cmd.flags.Config

	addr := cmd.addr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(addr, cmd.app.Alerts, cmd.app.Posts, logging.SessionComponent("server", cmd.app.SessionID))
	return srv.Run(ctx, cfg.Server.ShutdownTimeout)
}

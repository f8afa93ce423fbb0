package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/devboard/internal/commands"
	"github.com/hay-kot/devboard/internal/core/alert"
	"github.com/hay-kot/devboard/internal/core/config"
	"github.com/hay-kot/devboard/internal/core/logging"
	"github.com/hay-kot/devboard/internal/core/post"
	"github.com/hay-kot/devboard/internal/core/styles"
	"github.com/hay-kot/devboard/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		app       = &commands.App{}
	)

	flags := &commands.Flags{}

	root := &cli.Command{
		Name:      "devboard",
		Usage:     "Post updates and watch transient alerts",
		UsageText: "devboard [global options] command [command options]",
		Description: `devboard keeps a short-lived list of alerts raised by posting and by
other tools, and shows them as toasts that disappear on their own.

Run 'devboard' with no arguments to open the interactive dashboard.
Run 'devboard serve' to expose alerts and posts over HTTP.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("DEVBOARD_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (the dashboard defaults to the user state dir, other commands to stderr)",
				Sources:     cli.EnvVars("DEVBOARD_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("DEVBOARD_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// The dashboard owns the terminal, so it always logs to a file.
			logFile := flags.LogFile
			if logFile == "" && runsTUI(c) {
				logFile = commands.DefaultLogFile()
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile, logging.ContextHook{})
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			sessionID := uuid.NewString()
			ctx = logging.WithSessionID(ctx, sessionID)

			// Validation ensures the theme name is known
			palette, _ := styles.GetPalette(cfg.Theme)
			overrides := make(map[string]styles.Override, len(cfg.Styles))
			for label, sc := range cfg.Styles {
				overrides[label] = styles.Override{Foreground: sc.Foreground, Background: sc.Background}
			}

			store := alert.NewStore(
				logging.SessionComponent("alert", sessionID),
				alert.WithDefaultTimeout(cfg.AlertTimeout()),
			)

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*app = commands.App{
				SessionID: sessionID,
				Alerts:    store,
				Posts:     post.NewForm(post.NewMemoryRepository(), store, cfg.Posts.MaxLength, logging.SessionComponent("post", sessionID)),
				Styles:    styles.NewSeverities(palette, overrides),
			}

			log.Debug().Ctx(ctx).Str("config", flags.ConfigPath).Msg("session started")
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			// Stop pending expiry timers
			if app.Alerts != nil {
				app.Alerts.Clear()
			}

			// Close log file
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags, app)

	root = tuiCmd.Register(root)
	root = commands.NewServeCmd(flags, app).Register(root)
	root = commands.NewPostCmd(flags, app).Register(root)
	root = commands.NewRaiseCmd(flags, app).Register(root)

	// Set TUI as default action when no subcommand is provided
	root.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'devboard --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := root.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}

// runsTUI reports whether the invocation resolves to the dashboard.
func runsTUI(c *cli.Command) bool {
	return c.Args().Len() == 0 || c.Args().First() == "tui"
}

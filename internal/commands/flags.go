package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/hay-kot/devboard/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "devboard", "config.yaml")
}

// DefaultLogFile returns the log file used by the dashboard, which cannot
// write logs to the terminal it draws on.
// On macOS: ~/Library/Logs/devboard/devboard.log
// On Linux: $XDG_STATE_HOME/devboard/devboard.log (defaults to ~/.local/state/devboard/devboard.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "devboard", "devboard.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "devboard", "devboard.log")
	}

	return filepath.Join(home, ".local", "state", "devboard", "devboard.log")
}

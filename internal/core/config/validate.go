package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/devboard/internal/core/styles"
)

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("theme", c.Theme, validTheme),
		c.validateAlerts(),
		criterio.Run("server.addr", c.Server.Addr, required),
		c.validateLimits(),
		c.validateStyles(),
	)
}

func (c *Config) validateAlerts() error {
	if c.Alerts.DefaultTimeout == nil {
		return nil
	}
	if *c.Alerts.DefaultTimeout < 0 {
		return criterio.NewFieldErrors("alerts.default_timeout", fmt.Errorf("must not be negative"))
	}
	return nil
}

func (c *Config) validateLimits() error {
	var errs criterio.FieldErrorsBuilder
	if c.Server.ShutdownTimeout < 0 {
		errs = errs.Append("server.shutdown_timeout", fmt.Errorf("must not be negative"))
	}
	if c.Posts.MaxLength < 1 {
		errs = errs.Append("posts.max_length", fmt.Errorf("must be at least 1"))
	}
	return errs.ToError()
}

func (c *Config) validateStyles() error {
	var errs criterio.FieldErrorsBuilder
	for severity, style := range c.Styles {
		field := fmt.Sprintf("styles[%q]", severity)
		if err := validColor(style.Foreground); err != nil {
			errs = errs.Append(field+".foreground", err)
		}
		if err := validColor(style.Background); err != nil {
			errs = errs.Append(field+".background", err)
		}
	}
	return errs.ToError()
}

func validTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q: want one of %s", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

func required(s string) error {
	if s == "" {
		return fmt.Errorf("is required")
	}
	return nil
}

// validColor accepts an empty string (no override), a hex color, or an ANSI
// color number in 0-255.
func validColor(s string) error {
	if s == "" || hexColorRe.MatchString(s) {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n <= 255 {
		return nil
	}
	return fmt.Errorf("invalid color %q: want #RGB, #RRGGBB, or 0-255", s)
}

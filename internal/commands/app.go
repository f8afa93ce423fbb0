package commands

import (
	"github.com/hay-kot/devboard/internal/core/alert"
	"github.com/hay-kot/devboard/internal/core/post"
	"github.com/hay-kot/devboard/internal/core/styles"
)

// App holds the session-scoped services shared by every command. It is
// populated in the root Before hook; commands hold a pointer to it from
// registration time.
type App struct {
	SessionID string
	Alerts    *alert.Store
	Posts     *post.Form
	Styles    *styles.Severities
}

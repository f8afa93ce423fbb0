// Package tui implements the Bubble Tea dashboard for devboard.
package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/hay-kot/devboard/internal/core/alert"
	"github.com/hay-kot/devboard/internal/core/post"
	"github.com/hay-kot/devboard/internal/core/styles"
)

const (
	maxVisiblePosts = 5
	tickInterval    = time.Second
)

// Options configures the dashboard.
type Options struct {
	Store  *alert.Store
	Form   *post.Form
	Styles *styles.Severities
	Logger zerolog.Logger
}

// Model is the main Bubble Tea model for the dashboard.
type Model struct {
	ctx    context.Context
	log    zerolog.Logger
	store  *alert.Store
	form   *post.Form
	signal *AlertSignal
	toasts *ToastView
	theme  viewStyles

	input textinput.Model
	keys  keyMap
	help  help.Model
	posts []post.Post

	width    int
	height   int
	quitting bool
}

// tickMsg refreshes the countdowns shown next to each alert.
type tickMsg time.Time

// postSubmittedMsg is sent when a submission through the post form finishes.
type postSubmittedMsg struct {
	result post.Result
	err    error
}

// postsLoadedMsg is sent when the recent posts have been read.
type postsLoadedMsg struct {
	posts []post.Post
	err   error
}

// New creates the dashboard model. The returned model holds a store
// subscription; call Close once the program exits.
func New(ctx context.Context, opts Options) Model {
	input := textinput.New()
	input.Placeholder = "What's on your mind?"
	input.Prompt = "> "
	input.Focus()

	h := help.New()
	h.ShortSeparator = " • "

	return Model{
		ctx:    ctx,
		log:    opts.Logger,
		store:  opts.Store,
		form:   opts.Form,
		signal: NewAlertSignal(opts.Store),
		toasts: NewToastView(opts.Store, opts.Styles),
		theme:  newViewStyles(opts.Styles.Palette()),
		input:  input,
		keys:   defaultKeyMap(),
		help:   h,
		width:  80,
	}
}

// Close releases the store subscription.
func (m Model) Close() {
	m.signal.Close()
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.signal.WaitForSignal(),
		tick(),
		m.loadPosts(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-4, 10)
		m.toasts.SetWidth(min(toastWidth, msg.Width-2))
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case alertsChangedMsg:
		// The view re-reads the snapshot on render; just keep listening.
		return m, m.signal.WaitForSignal()

	case tickMsg:
		return m, tick()

	case postSubmittedMsg:
		if msg.err != nil {
			if !errors.Is(msg.err, post.ErrEmptyPost) && !errors.Is(msg.err, post.ErrPostTooLong) {
				m.log.Error().Err(msg.err).Msg("post submission failed")
			}
			return m, nil
		}
		m.input.Reset()
		return m, m.loadPosts()

	case postsLoadedMsg:
		if msg.err != nil {
			m.log.Error().Err(msg.err).Msg("failed to load posts")
			return m, nil
		}
		m.posts = msg.posts
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		return m, m.submit(m.input.Value())

	case key.Matches(msg, m.keys.Dismiss):
		alerts := m.store.Snapshot()
		if len(alerts) > 0 {
			m.store.Remove(alerts[len(alerts)-1].ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.DismissAll):
		m.store.Clear()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit(text string) tea.Cmd {
	ctx := m.ctx
	form := m.form
	return func() tea.Msg {
		result, err := form.Submit(ctx, text)
		return postSubmittedMsg{result: result, err: err}
	}
}

func (m Model) loadPosts() tea.Cmd {
	ctx := m.ctx
	form := m.form
	return func() tea.Msg {
		posts, err := form.Posts(ctx)
		return postsLoadedMsg{posts: posts, err: err}
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.theme.title.Render("devboard"))
	b.WriteString("\n\n")

	if toasts := m.toasts.View(); toasts != "" {
		b.WriteString(toasts)
	} else {
		b.WriteString(m.theme.muted.Render("No alerts"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	b.WriteString(m.theme.heading.Render("Recent posts"))
	b.WriteString("\n")
	b.WriteString(m.renderPosts())
	b.WriteString("\n\n")

	b.WriteString(m.help.View(m.keys))

	return lipgloss.NewStyle().Padding(0, 1).Render(b.String())
}

func (m Model) renderPosts() string {
	if len(m.posts) == 0 {
		return m.theme.muted.Render("Nothing posted yet")
	}

	lines := make([]string, 0, maxVisiblePosts)
	for i, p := range m.posts {
		if i == maxVisiblePosts {
			break
		}
		lines = append(lines, iconDot+" "+p.Text+"  "+m.theme.muted.Render(p.CreatedAt.Format(time.Kitchen)))
	}
	return strings.Join(lines, "\n")
}

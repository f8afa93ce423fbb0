package post

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/hay-kot/devboard/internal/core/alert"
)

// Messages raised by Form.Submit.
const (
	MsgEmpty   = "Please enter something to post."
	MsgTooLong = "Post is too long (max %d characters)."
	MsgCreated = "Post Created"
	MsgFailed  = "Unable to create post"
)

var (
	ErrEmptyPost   = errors.New("post text is required")
	ErrPostTooLong = errors.New("post text is too long")
)

// Alerter is the part of the alert store the form reports through.
type Alerter interface {
	Successf(format string, args ...any) string
	Dangerf(format string, args ...any) string
}

var _ Alerter = (*alert.Store)(nil)

// Result describes the outcome of a submission.
type Result struct {
	Post    Post
	AlertID string
}

type submission struct {
	Text string `validate:"required"`
}

// Form validates and submits new posts, raising an alert for every outcome.
type Form struct {
	repo      Repository
	alerts    Alerter
	validate  *validator.Validate
	maxLength int
	log       zerolog.Logger
}

// NewForm creates a form. maxLength is the upper bound on post text in runes.
func NewForm(repo Repository, alerts Alerter, maxLength int, logger zerolog.Logger) *Form {
	return &Form{
		repo:      repo,
		alerts:    alerts,
		validate:  validator.New(),
		maxLength: maxLength,
		log:       logger,
	}
}

// Submit validates text and creates the post. Validation failures return
// ErrEmptyPost or ErrPostTooLong; the returned Result always carries the id of
// the alert that was raised.
func (f *Form) Submit(ctx context.Context, text string) (Result, error) {
	text = strings.TrimSpace(text)

	sub := submission{Text: text}
	if err := f.validate.Struct(sub); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return Result{}, fmt.Errorf("validate post: %w", err)
		}
		id := f.alerts.Dangerf(MsgEmpty)
		return Result{AlertID: id}, ErrEmptyPost
	}

	if err := f.validate.Var(text, fmt.Sprintf("max=%d", f.maxLength)); err != nil {
		id := f.alerts.Dangerf(MsgTooLong, f.maxLength)
		return Result{AlertID: id}, ErrPostTooLong
	}

	p, err := f.repo.Create(ctx, text)
	if err != nil {
		f.log.Error().Err(err).Ctx(ctx).Msg("failed to create post")
		id := f.alerts.Dangerf(MsgFailed)
		return Result{AlertID: id}, fmt.Errorf("create post: %w", err)
	}

	f.log.Info().Str("post_id", p.ID).Ctx(ctx).Msg("post created")
	id := f.alerts.Successf(MsgCreated)
	return Result{Post: p, AlertID: id}, nil
}

// Posts lists posts, newest first.
func (f *Form) Posts(ctx context.Context) ([]Post, error) {
	posts, err := f.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

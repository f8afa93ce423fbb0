// Package post implements post submission: validating the text a user typed,
// handing it to the post repository, and reporting the outcome as an alert.
package post

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Post is a published post.
type Post struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Repository stores posts. The production document store lives outside this
// repository; MemoryRepository backs the CLI and tests.
type Repository interface {
	Create(ctx context.Context, text string) (Post, error)
	List(ctx context.Context) ([]Post, error)
}

var _ Repository = (*MemoryRepository)(nil)

// MemoryRepository is an in-process Repository. It is safe for concurrent use.
type MemoryRepository struct {
	mu    sync.RWMutex
	posts []Post
	now   func() time.Time
}

// NewMemoryRepository creates an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{now: time.Now}
}

// Create stores a new post.
func (r *MemoryRepository) Create(_ context.Context, text string) (Post, error) {
	p := Post{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: r.now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts = append(r.posts, p)
	return p, nil
}

// List returns all posts, newest first.
func (r *MemoryRepository) List(_ context.Context) ([]Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := slices.Clone(r.posts)
	slices.Reverse(out)
	if out == nil {
		out = []Post{}
	}
	return out, nil
}

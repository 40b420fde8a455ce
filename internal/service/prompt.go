// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/promptjournal/promptjournal/internal/cache"
	"github.com/promptjournal/promptjournal/internal/model"
	"github.com/promptjournal/promptjournal/internal/repository"
)

// ErrOwnerNotFound indicates the configured default owner does not exist in
// the store. Surfaced to clients as a server fault: the owner is deployment
// configuration, not client input.
var ErrOwnerNotFound = errors.New("owner user not found")

// MaxListLimit is the fixed upper bound on listed prompts.
const MaxListLimit = 50

// PromptService handles prompt business logic.
type PromptService struct {
	repo  *repository.Repository
	cache *cache.Cache

	// defaultOwnerID stands in for the authenticated caller until an auth
	// mechanism exists. See DEFAULT_OWNER_ID in config.
	defaultOwnerID int64
	listTTL        time.Duration
}

// NewPromptService creates a new PromptService. cache may be nil, in which
// case every list read goes to the store.
func NewPromptService(repo *repository.Repository, c *cache.Cache, defaultOwnerID int64, listTTL time.Duration) *PromptService {
	if listTTL <= 0 {
		listTTL = cache.DefaultListTTL
	}
	return &PromptService{
		repo:           repo,
		cache:          c,
		defaultOwnerID: defaultOwnerID,
		listTTL:        listTTL,
	}
}

// CreatePromptInput defines validated input for creating a prompt.
type CreatePromptInput struct {
	Title   string
	Content string
	Tags    []string
}

// CreatePrompt persists a new prompt owned by the default owner. Omitted
// tags become an empty slice. The store assigns identity and timestamp.
func (s *PromptService) CreatePrompt(ctx context.Context, input CreatePromptInput) (*model.Prompt, error) {
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	prompt := &model.Prompt{
		Title:   input.Title,
		Content: input.Content,
		Tags:    tags,
		UserID:  s.defaultOwnerID,
	}

	if err := s.repo.CreatePrompt(ctx, prompt); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, fmt.Errorf("failed to create prompt: %w", err)
	}

	// Invalidate so the next list read includes this prompt. Eventual
	// consistency is acceptable if the eviction fails.
	if s.cache != nil {
		_ = s.cache.InvalidateRecentPrompts(ctx)
	}

	return prompt, nil
}

// ListPrompts returns up to limit prompts, most recent first, with the
// owning user's public fields joined. The limit is clamped to MaxListLimit.
// Cache errors degrade to a store read, never to a request failure.
func (s *PromptService) ListPrompts(ctx context.Context, limit int) ([]*model.Prompt, error) {
	if limit <= 0 || limit > MaxListLimit {
		limit = MaxListLimit
	}

	// Only the full default-size list is cached; it is the only shape the
	// API serves.
	useCache := s.cache != nil && limit == MaxListLimit

	if useCache {
		if prompts, err := s.cache.GetRecentPrompts(ctx); err == nil {
			return prompts, nil
		}
	}

	prompts, err := s.repo.ListPrompts(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list prompts: %w", err)
	}

	if useCache {
		_ = s.cache.SetRecentPrompts(ctx, prompts, s.listTTL)
	}

	return prompts, nil
}

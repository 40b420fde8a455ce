package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/promptjournal/promptjournal/internal/model"
)

// CreatePrompt inserts a new prompt. The store assigns the identity and the
// creation timestamp; both are written back onto the passed model. A nil tag
// slice is persisted as an empty array, never as NULL.
func (r *Repository) CreatePrompt(ctx context.Context, prompt *model.Prompt) error {
	query := `
		INSERT INTO prompts (title, content, tags, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	tags := prompt.Tags
	if tags == nil {
		tags = []string{}
	}

	err := r.pool.QueryRow(ctx, query,
		prompt.Title,
		prompt.Content,
		pq.Array(tags),
		prompt.UserID,
	).Scan(&prompt.ID, &prompt.CreatedAt)

	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to create prompt: %w", err)
	}

	prompt.Tags = tags
	return nil
}

// ListPrompts retrieves up to limit prompts, most recent first, each joined
// with the owning user's public fields. The credential column is never
// selected. An empty table yields an empty slice, not an error.
func (r *Repository) ListPrompts(ctx context.Context, limit int) ([]*model.Prompt, error) {
	query := `
		SELECT p.id, p.title, p.content, p.tags, p.user_id, p.created_at, u.email, u.role
		FROM prompts p
		JOIN users u ON u.id = p.user_id
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list prompts: %w", err)
	}
	defer rows.Close()

	prompts := make([]*model.Prompt, 0)
	for rows.Next() {
		var prompt model.Prompt
		var user model.PublicUser
		var tags []string

		err := rows.Scan(
			&prompt.ID,
			&prompt.Title,
			&prompt.Content,
			pq.Array(&tags),
			&prompt.UserID,
			&prompt.CreatedAt,
			&user.Email,
			&user.Role,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prompt: %w", err)
		}

		if tags == nil {
			tags = []string{}
		}
		prompt.Tags = tags
		prompt.User = &user
		prompts = append(prompts, &prompt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating prompts: %w", err)
	}

	return prompts, nil
}

// isForeignKeyViolation checks if the error is a PostgreSQL foreign key
// constraint violation (error code 23503).
func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23503")
}

// isUniqueViolation checks if the error is a PostgreSQL unique constraint
// violation (error code 23505).
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}

// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"time"

	"github.com/promptjournal/promptjournal/internal/model"
	"github.com/promptjournal/promptjournal/internal/schema"
)

// CreatePromptRequest represents the request body for creating a prompt.
type CreatePromptRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags,omitempty"`
}

// UserResponse is the owning user's public projection on prompt responses.
type UserResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// PromptResponse represents a prompt in API responses.
type PromptResponse struct {
	ID        int64         `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	Tags      []string      `json:"tags"`
	UserID    int64         `json:"userId"`
	CreatedAt time.Time     `json:"createdAt"`
	User      *UserResponse `json:"user,omitempty"`
}

// ValidationErrorResponse carries the full accumulated issue list for a
// rejected request body.
type ValidationErrorResponse struct {
	Issues schema.Issues `json:"issues"`
}

// ErrorResponse represents an opaque API error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToPromptResponse converts a Prompt model to PromptResponse DTO.
func ToPromptResponse(prompt *model.Prompt) *PromptResponse {
	tags := prompt.Tags
	if tags == nil {
		tags = []string{}
	}

	resp := &PromptResponse{
		ID:        prompt.ID,
		Title:     prompt.Title,
		Content:   prompt.Content,
		Tags:      tags,
		UserID:    prompt.UserID,
		CreatedAt: prompt.CreatedAt,
	}

	if prompt.User != nil {
		resp.User = &UserResponse{
			Email: prompt.User.Email,
			Role:  string(prompt.User.Role),
		}
	}

	return resp
}

// ToPromptListResponse converts prompts to the list response body.
// The result is always a JSON array, never null.
func ToPromptListResponse(prompts []*model.Prompt) []PromptResponse {
	responses := make([]PromptResponse, len(prompts))
	for i, prompt := range prompts {
		responses[i] = *ToPromptResponse(prompt)
	}
	return responses
}

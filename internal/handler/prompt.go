package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/promptjournal/promptjournal/internal/handler/dto"
	"github.com/promptjournal/promptjournal/internal/schema"
	"github.com/promptjournal/promptjournal/internal/service"
)

// createPromptSchema declares the POST /prompts body shape. Constructed once
// and reused for every request; validation is pure and concurrency-safe.
var createPromptSchema = schema.Object(map[string]*schema.Field{
	"title":   schema.String().Min(1),
	"content": schema.String().Min(1),
	"tags":    schema.Array(schema.String()).Optional(),
})

// PromptHandler handles HTTP requests for prompt operations.
type PromptHandler struct {
	svc       *service.PromptService
	listLimit int
	logger    *slog.Logger
}

// NewPromptHandler creates a new PromptHandler. listLimit caps how many
// prompts List returns; values outside (0, MaxListLimit] fall back to
// service.MaxListLimit.
func NewPromptHandler(svc *service.PromptService, listLimit int, logger *slog.Logger) *PromptHandler {
	if listLimit <= 0 || listLimit > service.MaxListLimit {
		listLimit = service.MaxListLimit
	}
	return &PromptHandler{
		svc:       svc,
		listLimit: listLimit,
		logger:    logger,
	}
}

// Create handles POST /prompts.
// Validation failures return 400 with the complete issue list and never
// reach the store. Store failures return an opaque 500; detail stays in the
// server log.
func (h *PromptHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ValidationErrorResponse{
			Issues: schema.Issues{{Path: "", Message: "failed to read request body"}},
		})
		return
	}

	req, issues := schema.DecodeBytes[dto.CreatePromptRequest](createPromptSchema, body)
	if len(issues) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ValidationErrorResponse{Issues: issues})
		return
	}

	prompt, err := h.svc.CreatePrompt(r.Context(), service.CreatePromptInput{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		h.logger.Error("create_prompt_failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to create prompt"})
		return
	}

	h.logger.Info("prompt_created",
		"prompt_id", prompt.ID,
		"user_id", prompt.UserID,
		"tag_count", len(prompt.Tags),
	)

	writeJSON(w, http.StatusCreated, dto.ToPromptResponse(prompt))
}

// List handles GET /prompts.
// No body validation; the limit is fixed server-side. An empty store yields
// 200 with an empty array.
func (h *PromptHandler) List(w http.ResponseWriter, r *http.Request) {
	prompts, err := h.svc.ListPrompts(r.Context(), h.listLimit)
	if err != nil {
		h.logger.Error("list_prompts_failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to list prompts"})
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPromptListResponse(prompts))
}

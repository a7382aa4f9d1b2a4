package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Conceptual-Machines/gpsr-commands/internal/export"
	"github.com/Conceptual-Machines/gpsr-commands/internal/grammar"
	"github.com/Conceptual-Machines/gpsr-commands/internal/logger"
	"github.com/Conceptual-Machines/gpsr-commands/internal/metrics"
	"github.com/gin-gonic/gin"
)

type CommandHandler struct {
	generator   *grammar.Generator
	store       export.ExampleStore
	maxCommands int
	sentry      *metrics.SentryMetrics
	cloudwatch  *metrics.Client
}

func NewCommandHandler(
	generator *grammar.Generator,
	store export.ExampleStore,
	maxCommands int,
	cloudwatch *metrics.Client,
) *CommandHandler {
	return &CommandHandler{
		generator:   generator,
		store:       store,
		maxCommands: maxCommands,
		sentry:      metrics.NewSentryMetrics(),
		cloudwatch:  cloudwatch,
	}
}

type GenerateCommandsRequest struct {
	Category string `json:"category"` // "", "people" or "objects"
	Count    int    `json:"count"`    // Commands to generate, defaults to 1
}

type CommandResponse struct {
	Sentence string   `json:"sentence"`
	Text     string   `json:"text"`
	Intents  []string `json:"intents"`
	Intent   string   `json:"intent"`
	Category string   `json:"category"`
}

type GenerateCommandsResponse struct {
	Commands []CommandResponse `json:"commands"`
}

func newCommandResponse(ex grammar.Example) CommandResponse {
	return CommandResponse{
		Sentence: ex.Sentence,
		Text:     ex.PlainText(),
		Intents:  ex.Intents,
		Intent:   ex.IntentKey(),
		Category: string(ex.Category),
	}
}

// Generate produces count commands of the requested category and stores
// them. An empty body asks for one command of any category.
func (h *CommandHandler) Generate(c *gin.Context) {
	var req GenerateCommandsRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := grammar.ParseCategory(req.Category)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	count := req.Count
	if count == 0 {
		count = defaultCommandCount
	}
	if count < 0 || count > h.maxCommands {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("count must be between 1 and %d", h.maxCommands),
		})
		return
	}

	ctx := c.Request.Context()
	start := time.Now()
	resp := GenerateCommandsResponse{Commands: make([]CommandResponse, 0, count)}
	intents := make([]string, 0, count)

	for i := 0; i < count; i++ {
		cmdStart := time.Now()
		ex, err := h.generator.StartCommand(category)
		logger.LogGeneration(ctx, string(category), ex.Intents, time.Since(cmdStart), err)
		if err != nil {
			h.record(c, category, intents, start, false)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":      "Failed to generate command",
				"details":    err.Error(),
				"request_id": c.GetString("request_id"),
			})
			return
		}

		if err := h.store.Add(ctx, ex); err != nil {
			logger.Error("Failed to store example", err, logger.WithContext(c))
		}
		resp.Commands = append(resp.Commands, newCommandResponse(ex))
		intents = append(intents, ex.IntentKey())
	}

	h.record(c, category, intents, start, true)
	c.JSON(http.StatusOK, resp)
}

func (h *CommandHandler) record(c *gin.Context, category grammar.Category, intents []string, start time.Time, success bool) {
	duration := time.Since(start)
	h.sentry.RecordGeneration(c.Request.Context(), string(category), intents, duration, success)
	h.cloudwatch.RecordGeneration(string(category), len(intents), duration, success)
}

package handlers

import (
	"net/http"

	"github.com/Conceptual-Machines/gpsr-commands/internal/grammar"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	generator *grammar.Generator
	storage   string
}

// NewHealthHandler reports on the generator and the example store backend
// ("memory" or "postgres")
func NewHealthHandler(generator *grammar.Generator, storage string) *HealthHandler {
	return &HealthHandler{generator: generator, storage: storage}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	gr := h.generator.Grammar()
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"storage":  h.storage,
		"commands": len(gr.Commands),
		"steps":    len(gr.Steps),
	})
}

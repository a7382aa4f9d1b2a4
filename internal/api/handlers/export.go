package handlers

import (
	"net/http"
	"strconv"

	"github.com/Conceptual-Machines/gpsr-commands/internal/export"
	"github.com/Conceptual-Machines/gpsr-commands/internal/logger"
	"github.com/Conceptual-Machines/gpsr-commands/internal/metrics"
	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	store        export.ExampleStore
	defaultLimit int
	sentry       *metrics.SentryMetrics
}

func NewExportHandler(store export.ExampleStore, defaultLimit int) *ExportHandler {
	return &ExportHandler{
		store:        store,
		defaultLimit: defaultLimit,
		sentry:       metrics.NewSentryMetrics(),
	}
}

// Export renders every stored example as an NLU YAML document. The
// optional limit query parameter caps examples per intent; format=json
// returns the same document as JSON.
func (h *ExportHandler) Export(c *gin.Context) {
	limit := h.defaultLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	examples, err := h.store.All(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load examples", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load examples"})
		return
	}

	doc := export.Build(examples, limit)
	h.sentry.RecordExport(c.Request.Context(), len(doc.NLU), len(examples))

	if c.Query("format") == "json" {
		c.JSON(http.StatusOK, doc)
		return
	}

	body, err := doc.Marshal()
	if err != nil {
		logger.Error("Failed to encode NLU document", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode export"})
		return
	}
	c.Data(http.StatusOK, contentTypeYAML, body)
}

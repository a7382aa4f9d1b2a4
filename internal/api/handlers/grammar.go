package handlers

import (
	"net/http"

	"github.com/Conceptual-Machines/gpsr-commands/internal/grammar"
	"github.com/gin-gonic/gin"
)

type GrammarHandler struct {
	generator *grammar.Generator
}

func NewGrammarHandler(generator *grammar.Generator) *GrammarHandler {
	return &GrammarHandler{generator: generator}
}

type GrammarResponse struct {
	grammar.Description
	Entities []string `json:"entities"`
}

// Describe lists the command menus, the follow-up menus and the entity types
func (h *GrammarHandler) Describe(c *gin.Context) {
	c.JSON(http.StatusOK, GrammarResponse{
		Description: h.generator.Grammar().Describe(),
		Entities:    grammarEntityTypes(),
	})
}

func grammarEntityTypes() []string {
	return append([]string(nil), grammar.EntityTypes...)
}

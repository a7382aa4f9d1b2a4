package handlers

import (
	"net/http"

	"github.com/Conceptual-Machines/gpsr-commands/internal/grammar"
	"github.com/Conceptual-Machines/gpsr-commands/internal/logger"
	"github.com/Conceptual-Machines/gpsr-commands/internal/qr"
	"github.com/gin-gonic/gin"
)

type QRRequest struct {
	Sentence string `json:"sentence" binding:"required"`
}

// QRCode renders the plain text of an annotated sentence as a PNG QR code.
// With caption=true the text is printed under the code.
func QRCode(c *gin.Context) {
	var req QRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	text := grammar.Example{Sentence: req.Sentence}.PlainText()
	encode := qr.Encode
	if c.Query("caption") == "true" {
		encode = qr.EncodeCaptioned
	}
	png, err := encode(text)
	if err != nil {
		fields := logger.WithContext(c)
		fields["length"] = len(text)
		logger.Warn("QR encoding failed", fields)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, contentTypePNG, png)
}

package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_DisabledOutsideProduction(t *testing.T) {
	client, err := NewClient(context.Background(), "development")
	require.NoError(t, err)
	assert.False(t, client.Enabled())

	// Disabled clients never reach CloudWatch
	client.RecordAPIRequest("/api/v1/commands", 200, time.Millisecond)
	client.RecordGeneration("people", 3, time.Millisecond, true)
}

func TestNilClientIsDisabled(t *testing.T) {
	var client *Client
	assert.False(t, client.Enabled())
	client.RecordGeneration("", 1, time.Millisecond, true)
}

func TestSentryMetrics_WithoutClient(t *testing.T) {
	m := NewSentryMetrics()
	ctx := context.Background()
	m.RecordAPIRequest(ctx, "/health", 200, time.Millisecond)
	m.RecordGeneration(ctx, "objects", []string{"goToLoc+findObj"}, time.Millisecond, true)
	m.RecordExport(ctx, 2, 10)
}

func TestCategoryTag(t *testing.T) {
	assert.Equal(t, "any", categoryTag(""))
	assert.Equal(t, "people", categoryTag("people"))
}

package web

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRendererParsesAllPages(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	for _, page := range pages {
		_, ok := r.templates[page]
		assert.True(t, ok, "missing template %q", page)
	}
}

func TestRenderUnknownPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var sb strings.Builder
	assert.Error(t, r.Render(&sb, "nope", nil))
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2025, 3, 1, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "Mar 1, 2025 09:05", formatDate(ts))
}

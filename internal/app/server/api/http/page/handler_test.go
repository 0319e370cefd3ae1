package page

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestHandler_indexPage(t *testing.T) {
	handler, err := NewHandler(slog.Default(), huma.Middlewares{})
	require.NoError(t, err)

	out, err := handler.indexPage(context.Background(), nil)

	assert.NoError(t, err)
	assert.Equal(t, "text/html; charset=utf-8", out.ContentType)
	assert.Contains(t, string(out.Body), "/contacts")
}

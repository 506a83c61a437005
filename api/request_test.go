package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/task", strings.NewReader(`{"task":"wrote the docs","weight":2}`))
		var body taskRequest
		require.NoError(t, decodeJSON(httptest.NewRecorder(), req, logger, "task", &body))
		assert.Equal(t, "wrote the docs", body.Task)
		assert.Equal(t, 2, body.Weight)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/task", strings.NewReader(`{"task":`))
		var body taskRequest
		err := decodeJSON(httptest.NewRecorder(), req, logger, "task", &body)
		assert.True(t, errs.IsMalformedPayloadError(err))
	})

	t.Run("oversized body", func(t *testing.T) {
		payload := `{"task":"` + strings.Repeat("x", maxBodyBytes) + `"}`
		req := httptest.NewRequest(http.MethodPost, "/task", strings.NewReader(payload))
		var body taskRequest
		err := decodeJSON(httptest.NewRecorder(), req, logger, "task", &body)
		assert.True(t, errs.IsMaxBodySizeExceededError(err))
	})
}

func TestOversizedBodyIsRejected(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/task", `{"task":"`+strings.Repeat("x", maxBodyBytes)+`"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "body_size", decode[ErrorResponse](t, rec).Field)
}

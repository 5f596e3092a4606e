package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodapp/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_LogsEncodeFailure(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "test", "info")

	rec := httptest.NewRecorder()
	writeJSON(rec, log, http.StatusOK, map[string]any{"bad": make(chan int)})

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record), buf.String())
	assert.Equal(t, "response_encode_failed", record["action"])
	assert.Equal(t, float64(http.StatusOK), record["status"])
	assert.NotEmpty(t, record["error"])
}

func TestWriteStoreError(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "test", "info")

	rec := httptest.NewRecorder()
	writeStoreError(rec, log, "req-1", "order_create_failed", errors.New("server selection timeout"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success": false, "error": "server selection timeout"}`, rec.Body.String())
	assert.Contains(t, buf.String(), `"request_id":"req-1"`)
}

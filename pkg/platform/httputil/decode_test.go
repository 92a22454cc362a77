package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "consign/pkg/domain-errors"
)

type testRequest struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type validatingRequest struct {
	Name       string `json:"name"`
	normalized bool
}

func (r *validatingRequest) Normalize() {
	r.normalized = true
}

func (r *validatingRequest) Validate() error {
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDecodeJSON(t *testing.T) {
	body := bytes.NewBufferString(`{"name":"quarterly","value":3}`)
	r := httptest.NewRequest(http.MethodPost, "/", body)
	w := httptest.NewRecorder()

	req, ok := DecodeJSON[testRequest](w, r, discardLogger(), context.Background(), "req-1")
	require.True(t, ok)
	assert.Equal(t, "quarterly", req.Name)
	assert.Equal(t, 3, req.Value)
}

func TestDecodeJSONMalformed(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"name":`))
	w := httptest.NewRecorder()

	_, ok := DecodeJSON[testRequest](w, r, discardLogger(), context.Background(), "req-1")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDecodeAndPrepare(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"name":"ok"}`))
	w := httptest.NewRecorder()

	req, ok := DecodeAndPrepare[validatingRequest](w, r, discardLogger(), context.Background(), "req-1")
	require.True(t, ok)
	assert.True(t, req.normalized)
}

func TestDecodeAndPrepareValidationFailure(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"name":""}`))
	w := httptest.NewRecorder()

	_, ok := DecodeAndPrepare[validatingRequest](w, r, discardLogger(), context.Background(), "req-1")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(dErrors.CodeValidation), resp["error"])
}

func TestWriteErrorDomainCodes(t *testing.T) {
	tests := []struct {
		code   dErrors.Code
		status int
	}{
		{dErrors.CodeNotFound, http.StatusNotFound},
		{dErrors.CodeFileNotReady, http.StatusPreconditionFailed},
		{dErrors.CodeUnknownEventKind, http.StatusBadRequest},
		{dErrors.CodeConflict, http.StatusConflict},
		{dErrors.CodeInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(tt.code, "boom"))
		assert.Equal(t, tt.status, w.Code, "code %s", tt.code)
	}
}

func TestWriteErrorPlainError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, errors.New("driver exploded"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		status       int
		data         interface{}
		expectedBody string
	}{
		{"object", http.StatusOK, map[string]int{"combined": 70}, `{"combined":70}`},
		{"nil response", http.StatusOK, nil, `null`},
		{"created", http.StatusCreated, []string{"a"}, `["a"]`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			RespondWithJSON(w, req, tc.status, tc.data)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestRespondWithJSON_EncodingFailure(t *testing.T) {
	t.Parallel()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	RespondWithJSON(w, req, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRespondWithErrorAndLog(t *testing.T) {
	t.Parallel()
	req := httptest.NewRequest(http.MethodPost, "/api/ratings/combine", nil)
	req = req.WithContext(WithTraceID(req.Context(), "trace-abcdef12"))
	w := httptest.NewRecorder()

	RespondWithErrorAndLog(w, req, http.StatusBadRequest, "Invalid rating", errors.New("rating 0: 55 is not a multiple of 10"))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid rating", resp.Error)
	assert.Equal(t, "trace-abcdef12", resp.TraceID)
	assert.NotContains(t, w.Body.String(), "multiple of 10", "internal detail must not leak")
}

package shared

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/randpic-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requestWithLogger builds a GET request whose context carries a trace ID
// and a capturing logger.
func requestWithLogger(t *testing.T) (*http.Request, *logger.TestLogBuffer) {
	t.Helper()

	l, buf := logger.GetTestLogger(t)
	ctx := context.WithValue(context.Background(), TraceIDKey, "test-trace-id")
	ctx = logger.WithLogger(ctx, l)

	req := httptest.NewRequest(http.MethodGet, "/api/images/pc", nil)
	return req.WithContext(ctx), buf
}

func TestRespondWithJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	RespondWithJSON(w, req, http.StatusOK, map[string]interface{}{"status": "ok"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRespondWithJSONEncodingError(t *testing.T) {
	req, buf := requestWithLogger(t)
	w := httptest.NewRecorder()

	RespondWithJSON(w, req, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, buf.String(), "failed to encode JSON response")
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name            string
		statusCode      int
		message         string
		err             error
		expectedLevel   string
		unexpectedInLog string
	}{
		{
			name:            "server error is logged at error with redacted details",
			statusCode:      http.StatusInternalServerError,
			message:         "Failed to read image",
			err:             errors.New("open /srv/images/pc/a.jpg: no such file or directory"),
			expectedLevel:   "ERROR",
			unexpectedInLog: "/srv/images/pc/a.jpg",
		},
		{
			name:          "not found is logged at debug",
			statusCode:    http.StatusNotFound,
			message:       "No images found in the specified type.",
			err:           errors.New("no images match filter"),
			expectedLevel: "DEBUG",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, buf := requestWithLogger(t)
			w := httptest.NewRecorder()

			RespondWithErrorAndLog(w, req, tc.statusCode, tc.message, tc.err)

			assert.Equal(t, tc.statusCode, w.Code)
			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, map[string]interface{}{"error": tc.message}, response)

			entries, err := buf.FindEntries("API error response")
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, tc.expectedLevel, entries[0]["level"])
			assert.Equal(t, "test-trace-id", entries[0]["trace_id"])
			assert.Equal(t, tc.message, entries[0]["user_message"])
			assert.Contains(t, entries[0], "error_type")
			if tc.unexpectedInLog != "" {
				assert.NotContains(t, buf.String(), tc.unexpectedInLog)
			}
		})
	}
}

func TestWithLogAttrs(t *testing.T) {
	req, buf := requestWithLogger(t)
	w := httptest.NewRecorder()

	RespondWithErrorAndLog(w, req, http.StatusInternalServerError, "Failed to read image",
		errors.New("gone"), WithLogAttrs(slog.String("image_path", "/srv/images/a.jpg")))

	entries, err := buf.FindEntries("API error response")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "/srv/images/a.jpg", entries[0]["image_path"])
}

package redact_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/randpic-api/internal/redact"
	"github.com/stretchr/testify/assert"
)

func TestRedactString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no sensitive data",
			input:    "No images found in the specified type.",
			expected: "No images found in the specified type.",
		},
		{
			name:     "absolute unix path",
			input:    "open /srv/images/pc/a.jpg: no such file or directory",
			expected: "open [REDACTED_PATH]: no such file or directory",
		},
		{
			name:     "relative unix path",
			input:    "failed to read image: open images/mp/b.jpg: permission denied",
			expected: "failed to read image: open [REDACTED_PATH]: permission denied",
		},
		{
			name:     "dot relative path",
			input:    "stat ./images/pc: not a directory",
			expected: "stat [REDACTED_PATH]: not a directory",
		},
		{
			name:     "windows path",
			input:    `open C:\Users\me\Pictures\a.jpg: access denied`,
			expected: "open [REDACTED_PATH]: access denied",
		},
		{
			name:     "ipv4 listen address",
			input:    "listen tcp 0.0.0.0:8080: bind: address already in use",
			expected: "listen tcp [REDACTED_ADDR]: bind: address already in use",
		},
		{
			name:     "hostname with port",
			input:    "dial tcp cdn.example.com:443: i/o timeout",
			expected: "dial tcp [REDACTED_ADDR]: i/o timeout",
		},
		{
			name:     "stack trace",
			input:    "panic: boom\ngoroutine 1 [running]:\nmain.main()\n\t/app/main.go:42",
			expected: "[STACK_TRACE_REDACTED]",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, redact.String(tc.input))
		})
	}
}

func TestRedactError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Equal(t, "", redact.Error(nil))
	})

	t.Run("wrapped error", func(t *testing.T) {
		inner := errors.New("open /srv/images/mp/c.jpg: no such file or directory")
		wrapped := fmt.Errorf("failed to read image: %w", inner)

		assert.Equal(t,
			"failed to read image: open [REDACTED_PATH]: no such file or directory",
			redact.Error(wrapped))
	})
}

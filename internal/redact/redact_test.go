package redact_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/median-api/internal/redact"
	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
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
			input:    "Unique constraint failed on the fields: (`title`)",
			expected: "Unique constraint failed on the fields: (`title`)",
		},
		{
			name:     "database URL keeps user and host",
			input:    "failed to connect to postgres://median:hunter2@db:5432/median",
			expected: "failed to connect to postgres://median:[REDACTED]@db:5432/median",
		},
		{
			name:     "keyword DSN password",
			input:    "host=db user=median password=hunter2 dbname=median",
			expected: "host=db user=median password=[REDACTED] dbname=median",
		},
		{
			name:     "password prose is untouched",
			input:    "password authentication failed for user \"median\"",
			expected: "password authentication failed for user \"median\"",
		},
		{
			name:     "api key",
			input:    "using api_key=abcdef1234567890 for upstream",
			expected: "using api_key=[REDACTED] for upstream",
		},
		{
			name:     "jwt",
			input:    "bad token eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0.abc123_-x",
			expected: "bad token [REDACTED_JWT]",
		},
		{
			name:     "email in constraint detail",
			input:    "Key (email)=(jane@example.com) already exists.",
			expected: "Key (email)=([REDACTED_EMAIL]) already exists.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, redact.String(tc.input))
		})
	}
}

func TestError(t *testing.T) {
	assert.Equal(t, "", redact.Error(nil))

	err := fmt.Errorf("ping: %w", errors.New("postgres://u:p4ss@h/db unreachable"))
	assert.Equal(t, "ping: postgres://u:[REDACTED]@h/db unreachable", redact.Error(err))
}

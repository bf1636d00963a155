package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnescapeUnicode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain ascii passes through",
			input:    `{"text": "hello"}`,
			expected: `{"text": "hello"}`,
		},
		{
			name:     "basic escape",
			input:    `{"text": "\u043f\u0440\u0438\u0432\u0435\u0442"}`,
			expected: "{\"text\": \"привет\"}",
		},
		{
			name:     "surrogate pair",
			input:    `{"text": "\ud83d\ude00"}`,
			expected: "{\"text\": \"\U0001F600\"}",
		},
		{
			name:     "lone high surrogate decodes as replacement rune",
			input:    `{"text": "\ud83d!"}`,
			expected: "{\"text\": \"�!\"}",
		},
		{
			name:     "malformed escape is kept as is",
			input:    `{"text": "\uZZZZ"}`,
			expected: `{"text": "\uZZZZ"}`,
		},
		{
			name:     "truncated escape at the end",
			input:    `tail \u00`,
			expected: `tail \u00`,
		},
		{
			name:     "other escapes untouched",
			input:    `{"text": "line\nbreak"}`,
			expected: `{"text": "line\nbreak"}`,
		},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.EqualValues(t, tt.expected, string(UnescapeUnicode([]byte(tt.input))))
		})
	}
}

package launcher

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPromptURL(t *testing.T) {
	tests := []struct {
		name         string
		prompt       string
		systemPrompt string
		expected     string
	}{
		{
			name:     "empty prompt returns base URL without query",
			prompt:   "",
			expected: "https://chat.openai.com/",
		},
		{
			name:     "whitespace-only prompt returns base URL",
			prompt:   "   \n  ",
			expected: "https://chat.openai.com/",
		},
		{
			name:     "simple prompt",
			prompt:   "hello",
			expected: "https://chat.openai.com/?q=hello",
		},
		{
			name:     "special characters are percent-encoded",
			prompt:   "a&b",
			expected: "https://chat.openai.com/?q=a%26b",
		},
		{
			name:     "newlines are encoded",
			prompt:   "line one\nline two",
			expected: "https://chat.openai.com/?q=line+one%0Aline+two",
		},
		{
			name:         "system prompt is prepended with a blank line",
			prompt:       "body",
			systemPrompt: "sys",
			expected:     "https://chat.openai.com/?q=sys%0A%0Abody",
		},
		{
			name:         "system prompt is trimmed",
			prompt:       "body",
			systemPrompt: "  sys  ",
			expected:     "https://chat.openai.com/?q=sys%0A%0Abody",
		},
		{
			name:         "blank system prompt is ignored",
			prompt:       "body",
			systemPrompt: "   ",
			expected:     "https://chat.openai.com/?q=body",
		},
		{
			name:         "system prompt alone does not create a query",
			prompt:       "",
			systemPrompt: "sys",
			expected:     "https://chat.openai.com/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildPromptURL(tt.prompt, tt.systemPrompt))
		})
	}
}

func TestLauncher_Run(t *testing.T) {
	var opened string
	l := NewWithOpener(func(u string) error {
		opened = u
		return nil
	})

	url, err := l.Run("hello world", "")
	require.NoError(t, err)
	assert.Equal(t, "https://chat.openai.com/?q=hello+world", url)
	assert.Equal(t, url, opened)
}

func TestLauncher_Run_OpenerFailure(t *testing.T) {
	l := NewWithOpener(func(string) error {
		return errors.New("no browser")
	})

	_, err := l.Run("hello", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no browser")
}

func TestLauncher_Open_BlocksForeignOrigin(t *testing.T) {
	called := false
	l := NewWithOpener(func(string) error {
		called = true
		return nil
	})

	for _, u := range []string{
		"https://evil.example.com/?q=x",
		"http://chat.openai.com/?q=x",
		"file:///etc/passwd",
	} {
		err := l.Open(u)
		assert.ErrorIs(t, err, ErrBlocked, u)
	}
	assert.False(t, called, "opener must never run for a blocked URL")
}

func TestLauncher_Run_EmptyPromptOpensBase(t *testing.T) {
	var opened string
	l := NewWithOpener(func(u string) error {
		opened = u
		return nil
	})

	url, err := l.Run("", "")
	require.NoError(t, err)
	assert.Equal(t, BaseURL, url)
	assert.Equal(t, BaseURL, opened)
}

package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanMarkdownWrapper(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain json untouched",
			input:    `{"analysis": "ok"}`,
			expected: `{"analysis": "ok"}`,
		},
		{
			name:     "json fence stripped",
			input:    "```json\n{\"analysis\": \"ok\"}\n```",
			expected: `{"analysis": "ok"}`,
		},
		{
			name:     "bare fence stripped",
			input:    "```\n{\"analysis\": \"ok\"}\n```",
			expected: `{"analysis": "ok"}`,
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  \n{\"analysis\": \"ok\"}\n  ",
			expected: `{"analysis": "ok"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanMarkdownWrapper(tt.input))
		})
	}
}

func TestParseInsight(t *testing.T) {
	t.Run("complete response", func(t *testing.T) {
		content := `{
			"analysis": "Spending is concentrated on dining.",
			"suggestions": ["Cook at home twice a week", "Set a dining budget"],
			"savingTips": "Move 10% of income to savings on payday."
		}`

		ins, err := parseInsight(content)
		require.NoError(t, err)
		assert.Equal(t, "Spending is concentrated on dining.", ins.Analysis)
		assert.Len(t, ins.Suggestions, 2)
		assert.Equal(t, "Move 10% of income to savings on payday.", ins.SavingTips)
	})

	t.Run("fenced response", func(t *testing.T) {
		content := "```json\n{\"analysis\": \"a\", \"suggestions\": [\"s\"], \"savingTips\": \"t\"}\n```"

		ins, err := parseInsight(content)
		require.NoError(t, err)
		assert.Equal(t, "a", ins.Analysis)
	})

	t.Run("empty suggestions array is acceptable", func(t *testing.T) {
		content := `{"analysis": "a", "suggestions": [], "savingTips": "t"}`

		ins, err := parseInsight(content)
		require.NoError(t, err)
		assert.Empty(t, ins.Suggestions)
	})

	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "I cannot help with that."},
		{name: "empty content", content: ""},
		{name: "wrong shape", content: `["analysis", "suggestions"]`},
		{name: "missing analysis", content: `{"suggestions": ["s"], "savingTips": "t"}`},
		{name: "missing suggestions", content: `{"analysis": "a", "savingTips": "t"}`},
		{name: "missing savingTips", content: `{"analysis": "a", "suggestions": ["s"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseInsight(tt.content)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToolCall(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		want *ToolCall
	}{
		{
			name: "valid call",
			raw:  `{"tool": "check_valid_account", "arguments": {"phone_number": "+237650000001"}}`,
			want: &ToolCall{Tool: "check_valid_account", Arguments: map[string]any{"phone_number": "+237650000001"}},
		},
		{
			name: "surrounding whitespace",
			raw:  "\n  {\"tool\": \"create_account\", \"arguments\": {}}  \n",
			want: &ToolCall{Tool: "create_account", Arguments: map[string]any{}},
		},
		{
			name: "plain text reply",
			raw:  "Your balance is 5000 XAF.",
			want: nil,
		},
		{
			name: "text that mentions json",
			raw:  `To call a tool, send {"tool": ...}`,
			want: nil,
		},
		{
			name: "missing arguments key",
			raw:  `{"tool": "check_valid_account"}`,
			want: nil,
		},
		{
			name: "null arguments",
			raw:  `{"tool": "check_valid_account", "arguments": null}`,
			want: nil,
		},
		{
			name: "tool is not a string",
			raw:  `{"tool": 7, "arguments": {}}`,
			want: nil,
		},
		{
			name: "empty tool name",
			raw:  `{"tool": "", "arguments": {}}`,
			want: nil,
		},
		{
			name: "arguments is a list",
			raw:  `{"tool": "check_valid_account", "arguments": [1, 2]}`,
			want: nil,
		},
		{
			name: "broken json",
			raw:  `{"tool": "check_valid_account", "arguments": {`,
			want: nil,
		},
		{
			name: "empty output",
			raw:  "",
			want: nil,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := ParseToolCall(tc.raw)
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tc.want.Tool, got.Tool)
			assert.Equal(t, tc.want.Arguments, got.Arguments)
		})
	}
}

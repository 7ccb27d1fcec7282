package runner

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptKeyword(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"typed", "golang\n", "golang"},
		{"trimmed", "  rust  \n", "rust"},
		{"empty line", "\n", "python"},
		{"end of input", "", "python"},
		{"no newline", "java", "java"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := PromptKeyword(strings.NewReader(tt.input), &out, "python")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Search keyword (default: python): ", out.String())
		})
	}
}

func TestResolveKeyword(t *testing.T) {
	assert.Equal(t, "python", ResolveKeyword("", "python"))
	assert.Equal(t, "python", ResolveKeyword(" \t", "python"))
	assert.Equal(t, "go", ResolveKeyword(" go ", "python"))
}

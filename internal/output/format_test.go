package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in     string
		want   Format
		wantOK bool
	}{
		{"yaml", FormatYAML, true},
		{"JSON", FormatJSON, true},
		{"", FormatYAML, true},
		{"table", Format("table"), false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseFormat(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestFormatIsValid(t *testing.T) {
	assert.True(t, FormatYAML.IsValid())
	assert.True(t, FormatJSON.IsValid())
	assert.False(t, Format("dir").IsValid())
	assert.Equal(t, []string{"yaml", "json"}, ValidFormats())
}

type sampleDoc struct {
	Name  string   `json:"name"`
	Files []string `json:"files,omitempty"`
}

func TestWriteDocument(t *testing.T) {
	doc := sampleDoc{Name: "my-app", Files: []string{"index.html"}}

	t.Run("yaml uses json tags", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteDocument(doc, FormatYAML, &buf))
		assert.Equal(t, "files:\n- index.html\nname: my-app\n", buf.String())
	})

	t.Run("json is indented", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteDocument(doc, FormatJSON, &buf))
		assert.Equal(t, "{\n  \"name\": \"my-app\",\n  \"files\": [\n    \"index.html\"\n  ]\n}\n", buf.String())
	})
}

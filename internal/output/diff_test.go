package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestDiff_NoChanges(t *testing.T) {
	doc := []byte(`{"name": "my-app", "dependencies": {"react": "^19.0.0"}}`)
	out, err := ManifestDiff(doc, doc, false)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestManifestDiff_AddedDependency(t *testing.T) {
	before := []byte(`{"name": "my-app", "devDependencies": {"vite": "^6.0.0"}}`)
	after := []byte(`{"name": "my-app", "devDependencies": {"vite": "^6.0.0", "sass": "^1.0.0"}}`)

	out, err := ManifestDiff(before, after, false)
	require.NoError(t, err)
	assert.Contains(t, out, "devDependencies")
	assert.Contains(t, out, "sass")
}

func TestManifestDiff_BothEmpty(t *testing.T) {
	out, err := ManifestDiff(nil, []byte("  "), false)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestManifestDiff_Malformed(t *testing.T) {
	_, err := ManifestDiff([]byte(`{"name": "x"}`), []byte(`{"name": [`), false)
	assert.Error(t, err)
}

func TestIndentBlock(t *testing.T) {
	assert.Equal(t, "  a\n  b\n", IndentBlock("a\n\nb", "  "))
	assert.Empty(t, IndentBlock("", "  "))
}

package templates

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_RenderBytes(t *testing.T) {
	tests := []struct {
		name    string
		vars    Variables
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "single token",
			vars:  Variables{VarProjectName: "my-app"},
			input: `{"name": "{{projectName}}"}`,
			want:  `{"name": "my-app"}`,
		},
		{
			name:  "every occurrence",
			vars:  Variables{VarProjectName: "x"},
			input: "{{projectName}}/{{projectName}}",
			want:  "x/x",
		},
		{
			name:  "unknown token left alone",
			vars:  Variables{VarProjectName: "x"},
			input: "{{other}} {{ projectName }}",
			want:  "{{other}} {{ projectName }}",
		},
		{
			name:  "value is not re-scanned",
			vars:  Variables{VarProjectName: "{{projectName}}", "a": "{{b}}", "b": "B"},
			input: "{{projectName}} {{a}}",
			want:  "{{projectName}} {{b}}",
		},
		{
			name:  "no escaping",
			vars:  Variables{VarProjectName: `a"<b>&`},
			input: "{{projectName}}",
			want:  `a"<b>&`,
		},
		{
			name:  "multibyte text",
			vars:  Variables{VarProjectName: "app"},
			input: "欢迎 {{projectName}}",
			want:  "欢迎 app",
		},
		{
			name:    "binary content rejected",
			vars:    Variables{VarProjectName: "app"},
			input:   "\xff\xfe{{projectName}}",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewRenderer(tt.vars).RenderBytes("test", []byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestRenderer_Render(t *testing.T) {
	binary := []byte{0x89, 'P', 'N', 'G', 0xff, 0x00}
	repo := NewRepository(fstest.MapFS{
		"base/README.md.hbs": {Data: []byte("# {{projectName}}\n")},
		"base/logo.png":      {Data: binary},
		"base/notes.txt":     {Data: []byte("{{projectName}} stays")},
	})

	files, err := repo.ListBaseFiles()
	require.NoError(t, err)
	require.Len(t, files, 3)

	r := NewRenderer(Variables{VarProjectName: "demo"})
	got := map[string]string{}
	for _, f := range files {
		content, err := r.Render(f)
		require.NoError(t, err, f.RelPath)
		got[f.TargetPath()] = string(content)
	}

	assert.Equal(t, "# demo\n", got["README.md"])
	assert.Equal(t, string(binary), got["logo.png"])
	assert.Equal(t, "{{projectName}} stays", got["notes.txt"])
}

func TestIsTemplated(t *testing.T) {
	assert.True(t, IsTemplated("package.json.hbs"))
	assert.True(t, IsTemplated("src/a.tsx.hbs"))
	assert.False(t, IsTemplated("package.json"))
	assert.False(t, IsTemplated(".hbs"))
	assert.False(t, IsTemplated("a.hbs.bak"))
}

package materialize

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/dev-zetos/create-vite-react-template/internal/errors"
)

func TestWriteFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	require.NoError(t, WriteFile(fs, "out/src/a/b.txt", []byte("first")))
	require.NoError(t, WriteFile(fs, "out/src/a/b.txt", []byte("second")))

	data, err := afero.ReadFile(fs, "out/src/a/b.txt")
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := afero.ReadDir(fs, "out/src/a")
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files must not be left behind")
	assert.Equal(t, "b.txt", entries[0].Name())
}

func TestWriteFile_ReadOnly(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	assert.Error(t, WriteFile(fs, "out/a.txt", []byte("x")))
}

func TestExecutor_Apply(t *testing.T) {
	fs := afero.NewMemMapFs()
	exec := NewExecutor(fs, "my-app", WithConcurrency(2))

	var base []FileWrite
	for i := 0; i < 20; i++ {
		p := fmt.Sprintf("src/file%02d.ts", i)
		base = append(base, FileWrite{Path: p, Content: []byte("base " + p)})
	}
	base = append(base, FileWrite{Path: "src/shared.ts", Content: []byte("base")})

	steps := []Step{
		{Name: "base", Writes: base},
		{Name: "module theme", Module: "theme", Writes: []FileWrite{
			{Path: "src/shared.ts", Content: []byte("theme")},
		}},
	}

	require.NoError(t, exec.Apply(context.Background(), steps))

	data, err := afero.ReadFile(fs, "my-app/src/file07.ts")
	require.NoError(t, err)
	assert.Equal(t, "base src/file07.ts", string(data))

	data, err = afero.ReadFile(fs, "my-app/src/shared.ts")
	require.NoError(t, err)
	assert.Equal(t, "theme", string(data), "later steps overwrite earlier ones")
}

func TestExecutor_ApplyStopsOnFailure(t *testing.T) {
	mem := afero.NewMemMapFs()
	exec := NewExecutor(afero.NewReadOnlyFs(mem), "my-app")

	err := exec.Apply(context.Background(), []Step{
		{Name: "base", Writes: []FileWrite{{Path: "a.txt", Content: []byte("a")}}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrMaterialize) || errors.Is(err, oerrors.ErrPermission))
}

func TestExecutor_ApplyCancelled(t *testing.T) {
	fs := afero.NewMemMapFs()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewExecutor(fs, "my-app").Apply(ctx, []Step{
		{Name: "base", Writes: []FileWrite{{Path: "a.txt", Content: []byte("a")}}},
	})
	assert.ErrorIs(t, err, context.Canceled)

	exists, _ := afero.Exists(fs, "my-app/a.txt")
	assert.False(t, exists)
}

package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataproc/internal/config"
	"dataproc/internal/errors"
)

func setupManager(t *testing.T) *Manager {
	t.Helper()
	paths := config.NewPaths(t.TempDir(), "fetched_data", "processed_data", "logs")
	require.NoError(t, os.MkdirAll(paths.FetchedDir, 0755))
	return NewManager(paths, nil)
}

func TestRequireFile(t *testing.T) {
	m := setupManager(t)
	require.NoError(t, os.WriteFile(m.InputPath("great_gatsby.txt"), []byte("In my younger"), 0644))
	require.NoError(t, os.Mkdir(m.InputPath("adir"), 0755))

	tests := []struct {
		name     string
		file     string
		wantType errors.ErrorType
	}{
		{name: "present", file: "great_gatsby.txt"},
		{name: "missing", file: "USA_Population.json", wantType: errors.ErrTypeNotFound},
		{name: "directory", file: "adir", wantType: errors.ErrTypeMalformedInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := m.RequireFile(tt.file)
			assert.Equal(t, filepath.Join(m.Paths().FetchedDir, tt.file), path)
			if tt.wantType == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantType, errors.TypeOf(err))
		})
	}
}

func TestReadText(t *testing.T) {
	m := setupManager(t)
	require.NoError(t, os.WriteFile(m.InputPath("great_gatsby.txt"), []byte("The cat sat."), 0644))

	text, err := m.ReadText("great_gatsby.txt")
	require.NoError(t, err)
	assert.Equal(t, "The cat sat.", text)

	_, err = m.ReadText("absent.txt")
	assert.Equal(t, errors.ErrTypeNotFound, errors.TypeOf(err))
}

func TestEnsureOutputDirectory(t *testing.T) {
	m := setupManager(t)

	require.NoError(t, m.EnsureOutputDirectory())
	require.NoError(t, m.EnsureOutputDirectory())
	assert.DirExists(t, m.Paths().ProcessedDir)
	assert.Equal(t, filepath.Join(m.Paths().ProcessedDir, "word_cloud.png"), m.OutputPath("word_cloud.png"))
}

func TestInventory(t *testing.T) {
	m := setupManager(t)
	require.NoError(t, os.WriteFile(m.InputPath("global_population.csv"), []byte("a,b\n"), 0644))

	inv := m.Inventory("global_population.csv", "Annual_Penguin_Census.xlsx")

	require.Len(t, inv, 2)
	assert.True(t, inv[0].Exists)
	assert.Equal(t, int64(4), inv[0].Size)
	assert.False(t, inv[1].Exists)
	assert.Equal(t, []string{"Annual_Penguin_Census.xlsx"}, Missing(inv))
	assert.True(t, m.FileExists(inv[0].Path))
	assert.False(t, m.FileExists(m.Paths().FetchedDir))

	assert.NotPanics(t, func() { m.LogInventory(inv) })
}

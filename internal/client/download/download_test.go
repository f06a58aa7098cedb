package download

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atinyakov/fakeforge/internal/generator"
)

func TestSave_UsesModelNameVerbatim(t *testing.T) {
	dir := t.TempDir()
	path, err := Save(dir, &generator.File{Name: "my users", Data: []byte("[]")})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "my users"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestSave_Overwrites(t *testing.T) {
	dir := t.TempDir()
	_, err := Save(dir, &generator.File{Name: "user", Data: []byte("[1]")})
	require.NoError(t, err)
	path, err := Save(dir, &generator.File{Name: "user", Data: []byte("[2]")})
	require.NoError(t, err)

	data, _ := os.ReadFile(path)
	assert.Equal(t, "[2]", string(data))
}

func TestSave_SanitizesSeparators(t *testing.T) {
	dir := t.TempDir()
	path, err := Save(filepath.Join(dir, "nested"), &generator.File{Name: "a/b", Data: []byte("[]")})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "nested", "a_b"), path)

	path, err = Save(dir, &generator.File{Name: "..", Data: []byte("[]")})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "download"), path)
}

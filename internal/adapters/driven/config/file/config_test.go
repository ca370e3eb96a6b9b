package file

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 3, cfg.ResultLimit)
	assert.Empty(t, cfg.CorpusPath)
	assert.False(t, cfg.Verbose)
}

func TestPath_ExplicitDir(t *testing.T) {
	path, err := Path("/tmp/duafinder-test")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/duafinder-test", "config.toml"), path)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := Config{
		CorpusPath:  "/data/corpus.toml",
		DataDir:     "/data/db",
		ResultLimit: 5,
		Verbose:     true,
	}

	require.NoError(t, Save(dir, want))

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSave_CreatesDirectoryWithRestrictedPerms(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits")
	}

	dir := filepath.Join(t.TempDir(), "nested", "config")
	require.NoError(t, Save(dir, Default()))

	dirInfo, err := os.Stat(dir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0700), dirInfo.Mode().Perm())

	fileInfo, err := os.Stat(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), fileInfo.Mode().Perm())
}

func TestLoad_InvalidResultLimitFallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"),
		[]byte("result_limit = -2\n"), 0600))

	cfg, err := Load(dir)

	require.NoError(t, err)
	assert.Equal(t, Default().ResultLimit, cfg.ResultLimit)
}

func TestLoad_MalformedTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"),
		[]byte("corpus_path = [broken"), 0600))

	_, err := Load(dir)

	assert.Error(t, err)
}

package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultHomeDir_Env(t *testing.T) {
	t.Setenv(HomeEnv, "/tmp/launcher-home")
	assert.Equal(t, "/tmp/launcher-home", DefaultHomeDir())
}

func TestDefaultHomeDir_UserHome(t *testing.T) {
	t.Setenv(HomeEnv, "")
	t.Setenv("HOME", "/home/alice")
	assert.Equal(t, filepath.Join("/home/alice", DefaultHomeDirName), DefaultHomeDir())
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, filepath.Join("h", "config.toml"), ConfigPath("h"))
}

func TestEnsureDirAndExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	assert.False(t, Exists(dir))
	assert.NoError(t, EnsureDir(dir))
	assert.True(t, Exists(dir))
}

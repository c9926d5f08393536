package initutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seq_tool/pkg/logutil"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seqtool.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, logutil.WARN, cfg.Level())
}

func TestLoadFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SEQ_TEST_LOG", "/tmp/from-env.log")
	path := writeConfig(t, `
log_level: debug
log_file: ${SEQ_TEST_LOG}
format: txt
json_format: one
human: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		LogLevel:   "debug",
		LogFile:    "/tmp/from-env.log",
		Format:     "txt",
		JSONFormat: "one",
		Human:      true,
	}, cfg)
	assert.Equal(t, logutil.DEBUG, cfg.Level())
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	path := writeConfig(t, "format: txt\n")
	t.Setenv("SEQTOOL_FORMAT", "sh")
	t.Setenv("SEQTOOL_HUMAN", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sh", cfg.Format)
	assert.True(t, cfg.Human)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SEQTOOL_JSON_FORMAT=one\n"), 0o644))
	// godotenv 不覆盖已有变量，测试结束时由 Setenv 负责还原
	t.Setenv("SEQTOOL_JSON_FORMAT", "")
	require.NoError(t, os.Unsetenv("SEQTOOL_JSON_FORMAT"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "one", cfg.JSONFormat)
}

func TestLoadErrors(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "format: [oops"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "format: xml\n"))
	assert.ErrorContains(t, err, "xml")

	_, err = Load(writeConfig(t, "log_level: loud\n"))
	assert.Error(t, err)

	t.Setenv("SEQTOOL_HUMAN", "maybe")
	_, err = Load("")
	assert.ErrorContains(t, err, "HUMAN")
}

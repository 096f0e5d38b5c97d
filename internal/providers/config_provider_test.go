package providers

import (
	"os"
	"path/filepath"
	"skilld/internal/structures"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYaml = `
webServer:
  host: 127.0.0.1
  port: 8090
source:
  kind: file
  filePath: /tmp/skills.json.zst
  reloadInterval: 30
logger:
  level: info
  mode: 0644
  dir: /tmp
cache:
  enabled: true
  size: 4
metrics:
  enabled: false
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestNewConfigProvider_ReadsYaml(t *testing.T) {
	path := writeConfig(t, testConfigYaml)

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path, DebugMode: true})
	require.NoError(t, err)

	assert.Equal(t, "SkillDaemon", conf.AppName)
	assert.Equal(t, path, conf.Path)
	assert.True(t, conf.Debug)
	assert.Equal(t, "127.0.0.1", conf.WebServer.Host)
	assert.Equal(t, 8090, conf.WebServer.Port)
	assert.Equal(t, "file", conf.Source.Kind)
	assert.Equal(t, 30, conf.Source.ReloadInterval)
	assert.True(t, conf.Cache.Enabled)
	assert.Equal(t, 4, conf.Cache.Size)
}

func TestNewConfigProvider_EnvOverride(t *testing.T) {
	path := writeConfig(t, testConfigYaml)
	t.Setenv("SKILLD_PORT", "9999")
	t.Setenv("SKILLD_LOG_LEVEL", "debug")

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	require.NoError(t, err)

	assert.Equal(t, 9999, conf.WebServer.Port)
	assert.Equal(t, "debug", conf.Logger.Level)
}

func TestNewConfigProvider_MissingFile(t *testing.T) {
	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}

func TestNewConfigProvider_InvalidConfig(t *testing.T) {
	path := writeConfig(t, "webServer:\n  host: 127.0.0.1\n")
	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	assert.Error(t, err)
}

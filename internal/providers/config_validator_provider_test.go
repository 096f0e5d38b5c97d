package providers

import (
	"skilld/internal/structures"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *structures.Config {
	return &structures.Config{
		WebServer: structures.Server{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Source: structures.SourceConfig{
			Kind:           "file",
			FilePath:       "/tmp/skills.json.zst",
			ReloadInterval: 60,
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/tmp/logs",
		},
	}
}

func TestConfigValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validConfig())
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_EmptyHost(t *testing.T) {
	c := validConfig()
	c.WebServer.Host = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_ZeroPort(t *testing.T) {
	c := validConfig()
	c.WebServer.Port = 0
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_EmptyLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_InvalidLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = "verbose"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_UnknownSourceKind(t *testing.T) {
	c := validConfig()
	c.Source.Kind = "postgres"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_FileSourceNeedsPath(t *testing.T) {
	c := validConfig()
	c.Source.FilePath = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_SQLiteSourceNeedsDSN(t *testing.T) {
	c := validConfig()
	c.Source.Kind = "sqlite"
	c.Source.FilePath = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())

	c.Source.DSN = "/tmp/skills.db"
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_ZeroReloadInterval(t *testing.T) {
	c := validConfig()
	c.Source.ReloadInterval = 0
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

package providers

import (
	"fmt"
	"github.com/spf13/viper"
	"path/filepath"
	"skilld/internal/structures"
	"strings"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	_ = v.BindEnv("logger.level", "SKILLD_LOG_LEVEL")
	_ = v.BindEnv("webServer.port", "SKILLD_PORT")
	_ = v.BindEnv("source.kind", "SKILLD_SOURCE_KIND")
	_ = v.BindEnv("source.filePath", "SKILLD_SOURCE_FILE")
	_ = v.BindEnv("source.dsn", "SKILLD_SOURCE_DSN")
	_ = v.BindEnv("source.reloadInterval", "SKILLD_RELOAD_INTERVAL")
	_ = v.BindEnv("cache.enabled", "SKILLD_CACHE_ENABLED")
	_ = v.BindEnv("cache.size", "SKILLD_CACHE_SIZE")
	_ = v.BindEnv("metrics.enabled", "SKILLD_METRICS_ENABLED")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "SkillDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}

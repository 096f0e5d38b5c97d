package structures

import "net/http"

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}

type Route struct {
	Url     string
	Handler http.Handler
}

type Server struct {
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port" validate:"required|uint|min:1"`
	BasePath string `yaml:"basePath"`
}

type SourceConfig struct {
	Kind           string `yaml:"kind" validate:"required|in:file,sqlite"`
	FilePath       string `yaml:"filePath"`
	DSN            string `yaml:"dsn"`
	ReloadInterval int    `yaml:"reloadInterval" validate:"required|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	Source    SourceConfig  `yaml:"source"`
	WebServer Server        `yaml:"webServer"`
	Logger    LoggerConfig  `yaml:"logger"`
	Cache     CacheConfig   `yaml:"cache"`
	Metrics   MetricsConfig `yaml:"metrics"`
}

package bootstrap

import "github.com/spf13/viper"

// EnvPrefix names the environment variables configuring the driver, for
// example BOOTSTRAP_IMPORTER. Command line arguments all belong to the
// importer.
const EnvPrefix = "BOOTSTRAP"

type Options struct {
	Importer    string
	TargetsPath string
	List        bool
	Debug       bool
}

// LoadOptions reads BOOTSTRAP_IMPORTER, BOOTSTRAP_TARGETS, BOOTSTRAP_LIST
// and BOOTSTRAP_DEBUG.
func LoadOptions() Options {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault("importer", DefaultImporter)

	return Options{
		Importer:    v.GetString("importer"),
		TargetsPath: v.GetString("targets"),
		List:        v.GetBool("list"),
		Debug:       v.GetBool("debug"),
	}
}

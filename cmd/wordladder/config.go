// Config loading for the wordladder CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileName = "wordladder"
	configFileType = "yaml"
	envPrefix      = "WORDLADDER"

	cfgKeyWords    = "words"
	cfgKeyDB       = "db"
	cfgKeySource   = "source"
	cfgKeyCache    = "cache"
	cfgKeyMaxDepth = "max_depth"
	cfgKeyWorkers  = "workers"
	cfgKeyLogLevel = "log_level"

	sourceFile   = "file"
	sourceSQLite = "sqlite"
)

// flagKeys maps persistent flag names to their config keys.
var flagKeys = map[string]string{
	"words":     cfgKeyWords,
	"db":        cfgKeyDB,
	"source":    cfgKeySource,
	"cache":     cfgKeyCache,
	"max-depth": cfgKeyMaxDepth,
	"workers":   cfgKeyWorkers,
	"log-level": cfgKeyLogLevel,
}

// settings is the resolved configuration of one invocation.
type settings struct {
	Words    string
	DB       string
	Source   string
	Cache    bool
	MaxDepth int
	Workers  int
	LogLevel string
}

// loadConfig resolves settings from flags, WORDLADDER_* env vars, the config
// file and defaults, in that order of precedence. A missing wordladder.yaml is
// not an error; a missing file named by --config is.
func loadConfig(configFile string, flags *pflag.FlagSet) (settings, error) {
	v := viper.New()
	v.SetDefault(cfgKeyWords, "words.txt")
	v.SetDefault(cfgKeyDB, "wordladder.db")
	v.SetDefault(cfgKeySource, sourceFile)
	v.SetDefault(cfgKeyCache, false)
	v.SetDefault(cfgKeyMaxDepth, 0)
	v.SetDefault(cfgKeyWorkers, runtime.GOMAXPROCS(0))
	v.SetDefault(cfgKeyLogLevel, "warn")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return settings{}, fmt.Errorf("bind flag %q: %w", name, err)
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".wordladder"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	s := settings{
		Words:    v.GetString(cfgKeyWords),
		DB:       v.GetString(cfgKeyDB),
		Source:   strings.ToLower(v.GetString(cfgKeySource)),
		Cache:    v.GetBool(cfgKeyCache),
		MaxDepth: v.GetInt(cfgKeyMaxDepth),
		Workers:  v.GetInt(cfgKeyWorkers),
		LogLevel: v.GetString(cfgKeyLogLevel),
	}
	if s.Source != sourceFile && s.Source != sourceSQLite {
		return settings{}, fmt.Errorf("unknown source %q (valid: %s, %s)", s.Source, sourceFile, sourceSQLite)
	}

	return s, nil
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/solid/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "SOLID"

	cfgKeyLogLevel   = "log_level"
	cfgKeySets       = "sets"
	cfgKeyPrinciples = "principles"
	cfgKeyJSON       = "json"
)

// flagKeys maps global flag names to config keys. A flag only wins when it
// was set on the command line.
var flagKeys = map[string]string{
	"log-level": cfgKeyLogLevel,
	"json":      cfgKeyJSON,
}

// loadConfig reads config.yaml from configDir using Viper, layering
// SOLID_* environment variables and changed flags on top.
// A missing config.yaml is not an error.
func loadConfig(configDir string, flags *pflag.FlagSet) (types.Config, error) {
	def := types.DefaultConfig()

	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)
	v.SetDefault(cfgKeySets, def.Sets)
	v.SetDefault(cfgKeyPrinciples, def.Principles)
	v.SetDefault(cfgKeyJSON, def.JSON)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return types.Config{}, sysError(fmt.Errorf("bind flag %s: %w", name, err))
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, userError(fmt.Errorf("read config: %w", err))
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, userError(fmt.Errorf("decode config: %w", err))
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, userError(fmt.Errorf("config %s: %w", v.ConfigFileUsed(), err))
	}
	return cfg, nil
}

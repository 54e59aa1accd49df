// Package config holds the generator tool's configuration, resolved
// through viper so flags, PRNGGEN_* environment variables and defaults
// share one source of truth.
package config

import "github.com/spf13/viper"

// EnvPrefix is the prefix for environment overrides, e.g.
// PRNGGEN_ALGORITHM=lcg.
const EnvPrefix = "PRNGGEN"

type Generator struct {
	Algorithm string
	Count     int
	Seed      uint64
	Float     bool
	Test      bool
}

// SetGeneratorDefaults registers defaults and enables environment
// overrides. Call once before flags are bound.
func SetGeneratorDefaults() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	viper.SetDefault("algorithm", "xorshift")
	viper.SetDefault("count", 10)
	viper.SetDefault("seed", uint64(0))
	viper.SetDefault("float", false)
	viper.SetDefault("test", false)
}

// ParseGenerator resolves the effective generator configuration.
func ParseGenerator() *Generator {
	return &Generator{
		Algorithm: viper.GetString("algorithm"),
		Count:     viper.GetInt("count"),
		Seed:      viper.GetUint64("seed"),
		Float:     viper.GetBool("float"),
		Test:      viper.GetBool("test"),
	}
}

package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the top-level configuration for the CSS compiler, loaded from
// environment variables and an optional YAML file via Viper.
type Config struct {
	App       AppConfig       `yaml:"app" mapstructure:"app"`
	Logger    LoggerConfig    `yaml:"logger" mapstructure:"logger"`
	Metrics   MetricsConfig   `yaml:"metrics" mapstructure:"metrics"`
	Compiler  CompilerConfig  `yaml:"compiler" mapstructure:"compiler"`
	Optimizer OptimizerConfig `yaml:"optimizer" mapstructure:"optimizer"`
	Emitter   EmitterConfig   `yaml:"emitter" mapstructure:"emitter"`
	Cache     CacheConfig     `yaml:"cache" mapstructure:"cache"`
}

// CompilerConfig controls how tokens are parsed and resolved.
type CompilerConfig struct {
	DarkModeStrategy string `yaml:"dark_mode_strategy" mapstructure:"dark_mode_strategy"` // "class" or "media"
	StrictMode       bool   `yaml:"strict_mode" mapstructure:"strict_mode"`                // malformed tokens become errors instead of diagnostics
	MaxVariants      int    `yaml:"max_variants" mapstructure:"max_variants"`              // safety cap on variant fragments per token
}

// OptimizerConfig controls which optimizer passes run; their order is fixed
// by optimizer.Run.
type OptimizerConfig struct {
	RemoveEmpty     bool `yaml:"remove_empty" mapstructure:"remove_empty"`
	DedupeDecls     bool `yaml:"dedupe_decls" mapstructure:"dedupe_decls"`
	MergeIdentical  bool `yaml:"merge_identical" mapstructure:"merge_identical"`
	Normalize       bool `yaml:"normalize" mapstructure:"normalize"`
	Sort            bool `yaml:"sort" mapstructure:"sort"`
	SortProperties  bool `yaml:"sort_properties" mapstructure:"sort_properties"`
}

// EmitterConfig controls CSS serialization.
type EmitterConfig struct {
	Minify bool   `yaml:"minify" mapstructure:"minify"`
	Indent string `yaml:"indent" mapstructure:"indent"`
}

// CacheConfig controls the two-tier (token, theme-hash) -> declarations cache.
type CacheConfig struct {
	Enabled       bool          `yaml:"enabled" mapstructure:"enabled"`
	L1MaxEntries  int64         `yaml:"l1_max_entries" mapstructure:"l1_max_entries"`
	L1MaxCostMB   int64         `yaml:"l1_max_cost_mb" mapstructure:"l1_max_cost_mb"`
	L2TTL         time.Duration `yaml:"l2_ttl" mapstructure:"l2_ttl"`
}

// Load loads configuration from environment variables and an optional
// config.yaml, falling back to production-ready defaults when neither is
// present.
func Load() *Config {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/atomiccss")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)
	bindEnvVars(v)
	loadDotEnvFile(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Printf("Warning: Error reading config file: %v\n", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		panic(fmt.Sprintf("Unable to decode config: %v", err))
	}

	if err := config.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid configuration: %v", err))
	}

	return &config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "atomiccss")
	v.SetDefault("app.version", "0.1.0")
	v.SetDefault("app.stage", string(DevelopmentStage))
	v.SetDefault("app.debug", false)
	v.SetDefault("app.environment", "local")
	v.SetDefault("app.namespace", "default")

	v.SetDefault("logger.type", "zerolog")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.dev", false)
	v.SetDefault("logger.service_name", "atomiccss")
	v.SetDefault("logger.version", "0.1.0")
	v.SetDefault("logger.output", "stdout")

	v.SetDefault("metrics.namespace", "atomiccss")
	v.SetDefault("metrics.subsystem", "compiler")
	v.SetDefault("metrics.enabled", true)

	v.SetDefault("compiler.dark_mode_strategy", "class")
	v.SetDefault("compiler.strict_mode", false)
	v.SetDefault("compiler.max_variants", 8)

	v.SetDefault("optimizer.remove_empty", true)
	v.SetDefault("optimizer.dedupe_decls", true)
	v.SetDefault("optimizer.merge_identical", true)
	v.SetDefault("optimizer.normalize", true)
	v.SetDefault("optimizer.sort", true)
	v.SetDefault("optimizer.sort_properties", false)

	v.SetDefault("emitter.minify", false)
	v.SetDefault("emitter.indent", "  ")

	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.l1_max_entries", 10_000)
	v.SetDefault("cache.l1_max_cost_mb", 50)
	v.SetDefault("cache.l2_ttl", time.Hour)
}

func bindEnvVars(v *viper.Viper) {
	v.BindEnv("app.name", "APP_NAME")
	v.BindEnv("app.version", "APP_VERSION")
	v.BindEnv("app.stage", "APP_STAGE")
	v.BindEnv("app.debug", "DEBUG", "APP_DEBUG")
	v.BindEnv("app.environment", "ENVIRONMENT", "APP_ENV")
	v.BindEnv("app.namespace", "NAMESPACE", "APP_NAMESPACE")

	v.BindEnv("logger.type", "LOG_TYPE")
	v.BindEnv("logger.level", "LOG_LEVEL")
	v.BindEnv("logger.format", "LOG_FORMAT")
	v.BindEnv("logger.dev", "LOG_DEV")
	v.BindEnv("logger.service_name", "SERVICE_NAME")
	v.BindEnv("logger.version", "SERVICE_VERSION")
	v.BindEnv("logger.output", "LOG_OUTPUT")

	v.BindEnv("compiler.dark_mode_strategy", "CSS_DARK_MODE_STRATEGY")
	v.BindEnv("compiler.strict_mode", "CSS_STRICT_MODE")
	v.BindEnv("compiler.max_variants", "CSS_MAX_VARIANTS")

	v.BindEnv("emitter.minify", "CSS_MINIFY")

	v.BindEnv("cache.enabled", "CSS_CACHE_ENABLED")
	v.BindEnv("cache.l1_max_entries", "CSS_CACHE_L1_MAX_ENTRIES")
	v.BindEnv("cache.l1_max_cost_mb", "CSS_CACHE_L1_MAX_COST_MB")
	v.BindEnv("cache.l2_ttl", "CSS_CACHE_L2_TTL")
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return fmt.Errorf("app config validation failed: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger config validation failed: %w", err)
	}
	if c.Compiler.DarkModeStrategy != "class" && c.Compiler.DarkModeStrategy != "media" {
		return fmt.Errorf("compiler.dark_mode_strategy must be 'class' or 'media', got: %s", c.Compiler.DarkModeStrategy)
	}
	if c.Compiler.MaxVariants <= 0 {
		return fmt.Errorf("compiler.max_variants must be positive")
	}
	if c.Cache.L1MaxEntries <= 0 {
		return fmt.Errorf("cache.l1_max_entries must be positive")
	}
	return nil
}

// loadDotEnvFile loads a .env file if present, without overriding variables
// already set in the process environment.
func loadDotEnvFile(_ *viper.Viper) {
	envFile := ".env"
	data, err := os.ReadFile(envFile)
	if err != nil {
		return
	}

	for _, line := range bytes.Split(data, []byte("\n")) {
		lineStr := strings.TrimSpace(string(line))
		if lineStr == "" || strings.HasPrefix(lineStr, "#") {
			continue
		}
		parts := strings.SplitN(lineStr, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if len(value) >= 2 && ((value[0] == '"' && value[len(value)-1] == '"') || (value[0] == '\'' && value[len(value)-1] == '\'')) {
			value = value[1 : len(value)-1]
		}
		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}
}

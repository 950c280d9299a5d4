// Package config loads gradex settings from defaults, an optional
// gradex.yaml, a .env file and GRADEX_* environment variables, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/great123-artV/GradeX/internal/grading"
)

// EnvPrefix namespaces every environment override, e.g. GRADEX_LOG_LEVEL.
const EnvPrefix = "GRADEX"

// Config is the resolved application configuration.
type Config struct {
	DB      string        `mapstructure:"db"`
	Log     LogConfig     `mapstructure:"log"`
	Server  ServerConfig  `mapstructure:"server"`
	Grading GradingConfig `mapstructure:"grading"`
	LLM     LLMConfig     `mapstructure:"llm"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`

	table grading.BandTable
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// ServerConfig controls `gradex serve`.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ChatRateLimit   int           `mapstructure:"chat_rate_limit"`
	ChatRateWindow  time.Duration `mapstructure:"chat_rate_window"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// GradingConfig holds an optional alternate grading scale. When Bands is
// empty the default 5.0 scale is used.
type GradingConfig struct {
	Scale ScaleConfig `mapstructure:"scale"`
}

// ScaleConfig is the on-disk form of a band table.
type ScaleConfig struct {
	Name  string              `mapstructure:"name"`
	Bands []grading.GradeBand `mapstructure:"bands"`
}

// LLMConfig selects and configures the chat model. An empty Provider means
// "discover from well-known API key variables"; "none" disables the model.
type LLMConfig struct {
	Provider   string            `mapstructure:"provider"`
	Timeout    time.Duration     `mapstructure:"timeout"`
	Anthropic  LLMProviderConfig `mapstructure:"anthropic"`
	OpenAI     LLMProviderConfig `mapstructure:"openai"`
	Gemini     LLMProviderConfig `mapstructure:"gemini"`
	OpenRouter LLMProviderConfig `mapstructure:"openrouter"`
}

// LLMProviderConfig is the per-provider block.
type LLMProviderConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db", "")
	v.SetDefault("log.level", "warn")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.chat_rate_limit", 20)
	v.SetDefault("server.chat_rate_window", time.Minute)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("grading.scale.name", "")
	v.SetDefault("grading.scale.bands", []map[string]any{})

	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.timeout", 30*time.Second)
	for _, p := range []string{"anthropic", "openai", "gemini", "openrouter"} {
		v.SetDefault("llm."+p+".api_key", "")
		v.SetDefault("llm."+p+".model", "")
		v.SetDefault("llm."+p+".base_url", "")
	}
}

// Load resolves configuration. file may be empty, in which case gradex.yaml
// is looked up in the working directory and the user config directory; a
// missing file is not an error. A .env file in the working directory is
// loaded into the environment first if present.
func Load(file string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("gradex")
		v.AddConfigPath(".")
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{File: v.ConfigFileUsed()}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	table, err := cfg.Grading.Scale.table()
	if err != nil {
		return nil, err
	}
	cfg.table = table
	return cfg, nil
}

// Default returns the configuration with no file and no environment.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg := &Config{}
	_ = v.Unmarshal(cfg)
	cfg.table = grading.DefaultBandTable()
	return cfg
}

// BandTable returns the validated grading scale.
func (c *Config) BandTable() grading.BandTable {
	if c.table.IsZero() {
		return grading.DefaultBandTable()
	}
	return c.table
}

func (s ScaleConfig) table() (grading.BandTable, error) {
	if len(s.Bands) == 0 {
		return grading.DefaultBandTable(), nil
	}
	t, err := grading.NewBandTable(s.Name, s.Bands)
	if err != nil {
		return grading.BandTable{}, fmt.Errorf("grading.scale: %w", err)
	}
	return t, nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// configDir returns $XDG_CONFIG_HOME/gradex or ~/.config/gradex.
func configDir() (string, error) {
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return filepath.Join(d, "gradex"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gradex"), nil
}

// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jonathan/resume-coach/internal/engine"
	"github.com/jonathan/resume-coach/internal/server/ratelimit"
)

// EnvPrefix is prepended to every environment override, e.g. RESUME_COACH_SERVER_PORT.
const EnvPrefix = "RESUME_COACH"

// Config is the full application configuration. Values come from defaults, then an
// optional config file, then environment variables.
type Config struct {
	Server    ServerConfig     `mapstructure:"server"`
	RateLimit ratelimit.Config `mapstructure:"ratelimit"`
	Engine    engine.Config    `mapstructure:"engine"`
	Log       LogConfig        `mapstructure:"log"`
	Tracing   TracingConfig    `mapstructure:"tracing"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	CORSOrigin      string        `mapstructure:"cors_origin"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or text
}

// TracingConfig toggles OpenTelemetry tracing.
type TracingConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name"`
}

// LoadConfig loads configuration. An empty path skips the config file and uses
// defaults plus environment overrides. JSON, YAML and TOML files are accepted.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		// Resolve path relative to current directory if not absolute
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			path = filepath.Join(cwd, path)
		}
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	cfg, err := LoadConfig("")
	if err != nil {
		// Defaults are static; failing here is a programming error.
		panic(err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.cors_origin", "*")

	rl := ratelimit.DefaultConfig()
	v.SetDefault("ratelimit.enabled", rl.Enabled)
	v.SetDefault("ratelimit.requests_per_minute", rl.RequestsPerMinute)
	v.SetDefault("ratelimit.burst", rl.Burst)
	v.SetDefault("ratelimit.cleanup_interval", rl.CleanupInterval)
	v.SetDefault("ratelimit.whitelist", rl.Whitelist)
	v.SetDefault("ratelimit.blacklist", rl.Blacklist)
	v.SetDefault("ratelimit.endpoints", rl.Endpoints)

	ec := engine.DefaultConfig()
	v.SetDefault("engine.max_suggestions", ec.MaxSuggestions)
	v.SetDefault("engine.min_relevance_score", ec.MinRelevanceScore)
	v.SetDefault("engine.priority_threshold", string(ec.PriorityThreshold))
	v.SetDefault("engine.enable_auto_apply", ec.EnableAutoApply)

	sw := ec.Weights.Skill
	v.SetDefault("engine.weights.skill.industry_relevance", sw.IndustryRelevance)
	v.SetDefault("engine.weights.skill.popularity", sw.Popularity)
	v.SetDefault("engine.weights.skill.overlap_per_skill", sw.OverlapPerSkill)
	v.SetDefault("engine.weights.skill.overlap_cap", sw.OverlapCap)
	v.SetDefault("engine.weights.skill.level_exact", sw.LevelExact)
	v.SetDefault("engine.weights.skill.level_adjacent", sw.LevelAdjacent)

	hw := ec.Weights.Hobby
	v.SetDefault("engine.weights.hobby.trait_per_match", hw.TraitPerMatch)
	v.SetDefault("engine.weights.hobby.trait_cap", hw.TraitCap)
	v.SetDefault("engine.weights.hobby.popularity", hw.Popularity)
	v.SetDefault("engine.weights.hobby.technical_per_match", hw.TechnicalPerMatch)
	v.SetDefault("engine.weights.hobby.technical_cap", hw.TechnicalCap)
	v.SetDefault("engine.weights.hobby.seniority_bonus", hw.SeniorityBonus)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", "resume-coach")
}

var (
	validLogLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validLogFormats = map[string]bool{"json": true, "text": true}
)

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config error: 'server.port' must be between 0 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.IdleTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		return errors.New("config error: server timeouts must be non-negative")
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("config error: 'ratelimit.requests_per_minute' must be positive")
		}
		if c.RateLimit.Burst < 0 {
			return errors.New("config error: 'ratelimit.burst' must be non-negative")
		}
		for _, ep := range c.RateLimit.Endpoints {
			if ep.Limit < 0 || ep.Burst < 0 {
				return fmt.Errorf("config error: rate limit for %s %s must be non-negative", ep.Method, ep.Path)
			}
			if ep.Limit > 0 && ep.Window <= 0 {
				return fmt.Errorf("config error: rate limit window for %s %s must be positive", ep.Method, ep.Path)
			}
		}
	}

	if err := c.Engine.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("config error: 'log.level' must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	if !validLogFormats[strings.ToLower(c.Log.Format)] {
		return fmt.Errorf("config error: 'log.format' must be json or text, got %q", c.Log.Format)
	}

	return nil
}

// Addr returns the listen address for the configured port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

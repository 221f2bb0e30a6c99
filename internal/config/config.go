package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	App    AppConfig    `yaml:"app" mapstructure:"app"`
	Data   DataConfig   `yaml:"data" mapstructure:"data"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Map    MapConfig    `yaml:"map" mapstructure:"map"`
	Chart  ChartConfig  `yaml:"chart" mapstructure:"chart"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// AppConfig holds page-level settings.
type AppConfig struct {
	Title   string `yaml:"title" mapstructure:"title"`
	Heading string `yaml:"heading" mapstructure:"heading"`
}

// DataConfig locates and decodes the agency dataset.
type DataConfig struct {
	FileName string `yaml:"file_name" mapstructure:"file_name"`
	// Path, when set, bypasses candidate resolution.
	Path     string `yaml:"path" mapstructure:"path"`
	BaseDir  string `yaml:"base_dir" mapstructure:"base_dir"`
	Encoding string `yaml:"encoding" mapstructure:"encoding"`
}

// ServerConfig configures the dashboard HTTP server.
type ServerConfig struct {
	Port        int      `yaml:"port" mapstructure:"port"`
	RateLimit   float64  `yaml:"rate_limit" mapstructure:"rate_limit"`
	RateBurst   int      `yaml:"rate_burst" mapstructure:"rate_burst"`
	CORSOrigins []string `yaml:"cors_origins" mapstructure:"cors_origins"`
}

// MapConfig configures the map view.
type MapConfig struct {
	Zoom   int `yaml:"zoom" mapstructure:"zoom"`
	Width  int `yaml:"width" mapstructure:"width"`
	Height int `yaml:"height" mapstructure:"height"`
}

// ChartConfig configures the bar chart view.
type ChartConfig struct {
	ColorScale string `yaml:"color_scale" mapstructure:"color_scale"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from .env, file and environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, eris.Wrap(err, "config: load .env")
	}

	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("DASHBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("app.title", "Belgian Real‑estate Agents")
	v.SetDefault("app.heading", "Belgian Real‑estate Agents: Data Overview")
	v.SetDefault("data.file_name", "belgian_real_estate_agents.csv")
	v.SetDefault("data.path", "")
	v.SetDefault("data.base_dir", "")
	v.SetDefault("data.encoding", "utf-8")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.rate_limit", 0)
	v.SetDefault("server.rate_burst", 10)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("map.zoom", 8)
	v.SetDefault("map.width", 700)
	v.SetDefault("map.height", 500)
	v.SetDefault("chart.color_scale", "Plasma")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the settings a command depends on. Mode "serve" also
// checks the server settings.
func (c *Config) Validate(mode string) error {
	var problems []string

	if strings.TrimSpace(c.Data.FileName) == "" && strings.TrimSpace(c.Data.Path) == "" {
		problems = append(problems, "data.file_name or data.path is required")
	}
	if c.Map.Zoom < 0 || c.Map.Zoom > 19 {
		problems = append(problems, "map.zoom must be between 0 and 19")
	}
	if c.Map.Width <= 0 || c.Map.Height <= 0 {
		problems = append(problems, "map.width and map.height must be positive")
	}

	if mode == "serve" {
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			problems = append(problems, "server.port must be between 1 and 65535")
		}
		if c.Server.RateLimit < 0 {
			problems = append(problems, "server.rate_limit must not be negative")
		}
		if c.Server.RateLimit > 0 && c.Server.RateBurst <= 0 {
			problems = append(problems, "server.rate_burst must be positive when rate limiting")
		}
	}

	if len(problems) > 0 {
		return eris.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// InitLogger installs the global zap logger. Format "json" (or empty) uses the
// production encoder, "console" the development one.
func InitLogger(cfg LogConfig) error {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}

	var zapCfg zap.Config
	switch strings.ToLower(cfg.Format) {
	case "", "json":
		zapCfg = zap.NewProductionConfig()
	case "console":
		zapCfg = zap.NewDevelopmentConfig()
	default:
		return eris.Errorf("config: unknown log format %q", cfg.Format)
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapCfg.Build(zap.Fields(zap.String("app", "agency-dashboard")))
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}

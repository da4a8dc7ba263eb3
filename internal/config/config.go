package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix         = "KREAPC"
	configFileEnvName = "KREAPC_CONFIG_FILE"
)

type popular struct {
	Products int `mapstructure:"products"`
	Listings int `mapstructure:"listings"`
}

type Config struct {
	Addr        string  `mapstructure:"addr"`
	LogLevel    string  `mapstructure:"log_level"`
	CatalogFile string  `mapstructure:"catalog_file"`
	Seed        uint64  `mapstructure:"seed"`
	Popular     popular `mapstructure:"popular"`

	// Level is LogLevel parsed by Load.
	Level log.Level `mapstructure:"-"`
}

var ErrInvalidConfig = errors.New("invalid config")

// ErrHelp is returned by Load when usage was requested with -h or --help.
var ErrHelp = pflag.ErrHelp

// Load reads configuration from flags in args, KREAPC_* environment
// variables and an optional YAML file, in that order of precedence.
func Load(args []string) (Config, error) {
	flags := pflag.NewFlagSet("kreapc-market", pflag.ContinueOnError)
	flags.String("config", "", "config file")
	flags.String("addr", ":3000", "HTTP listen address")
	flags.String("log-level", "info", "log level: trace, debug, info, warn, error")
	flags.String("catalog-file", "", "YAML catalog file; the built-in catalog is used when empty")
	flags.Uint64("seed", 0, "seed for listing generation; 0 draws a fresh sequence")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return Config{}, ErrHelp
		}
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	v := viper.New()
	v.SetDefault("addr", ":3000")
	v.SetDefault("log_level", "info")
	v.SetDefault("catalog_file", "")
	v.SetDefault("seed", 0)
	v.SetDefault("popular.products", 3)
	v.SetDefault("popular.listings", 4)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, flag := range map[string]string{
		"addr":         "addr",
		"log_level":    "log-level",
		"catalog_file": "catalog-file",
		"seed":         "seed",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	if path := configFilepath(flags); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	var cfg Config
	if err := v.UnmarshalExact(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	level, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		return Config{}, err
	}
	cfg.Level = level
	if cfg.Popular.Products < 0 || cfg.Popular.Listings < 0 {
		return Config{}, fmt.Errorf("%w: popular limits must not be negative", ErrInvalidConfig)
	}
	return cfg, nil
}

func configFilepath(flags *pflag.FlagSet) string {
	if flags.Changed("config") {
		path, _ := flags.GetString("config")
		return path
	}
	return os.Getenv(configFileEnvName)
}

// ParseLevel maps a level name onto fiber's log levels.
func ParseLevel(level string) (log.Level, error) {
	switch strings.ToLower(level) {
	case "trace":
		return log.LevelTrace, nil
	case "debug":
		return log.LevelDebug, nil
	case "info", "":
		return log.LevelInfo, nil
	case "warn", "warning":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	}
	return 0, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, level)
}

func (c Config) Print() {
	template := `
	Addr=%q
	LogLevel=%q
	CatalogFile=%q
	Seed=%d
	Popular:
		Products=%d
		Listings=%d
`
	log.Infof("Loaded config:"+strings.TrimRight(template, "\n"),
		c.Addr,
		c.LogLevel,
		c.CatalogFile,
		c.Seed,
		c.Popular.Products,
		c.Popular.Listings,
	)
}

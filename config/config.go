package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "STOREFRONT"

type Config struct {
	AppEnv       string   `mapstructure:"app_env"`
	Addr         string   `mapstructure:"addr"`
	DatabasePath string   `mapstructure:"database_path"`
	UploadDir    string   `mapstructure:"upload_dir"`
	LogLevel     string   `mapstructure:"log_level"`
	CORSOrigins  []string `mapstructure:"cors_origins"`
	PageLimitMax int      `mapstructure:"page_limit_max"`
}

func (c Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// Load reads configuration from defaults, an optional env file, STOREFRONT_*
// environment variables and command line flags, in increasing priority.
func Load(args []string) (Config, error) {
	flags := pflag.NewFlagSet("storefront", pflag.ContinueOnError)
	envFile := flags.String("env-file", ".env", "env file to load before reading the environment")
	flags.String("addr", "", "http listen address")
	flags.String("database-path", "", "sqlite database file")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file %s: %w", *envFile, err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, flag := range map[string]string{"addr": "addr", "database_path": "database-path"} {
		if f := flags.Lookup(flag); f != nil && f.Changed {
			v.Set(key, f.Value.String())
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.PageLimitMax < 1 {
		return Config{}, fmt.Errorf("page_limit_max must be positive, got %d", cfg.PageLimitMax)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", "production")
	v.SetDefault("addr", ":3000")
	v.SetDefault("database_path", "database.db")
	v.SetDefault("upload_dir", "uploads")
	v.SetDefault("log_level", "info")
	v.SetDefault("cors_origins", []string{"*"})
	v.SetDefault("page_limit_max", 100)
}

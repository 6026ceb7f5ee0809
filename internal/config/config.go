package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/Another0Noob/recipe-browser/internal/logging"
	"github.com/Another0Noob/recipe-browser/internal/recipeapi"
	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"
)

// Config is the resolved application configuration.
type Config struct {
	BaseURL   string
	RateLimit int           // requests per second, 0 = unlimited
	Timeout   time.Duration // 0 = transport default
	Token     string
	InputFile string
	Log       logging.Config
}

func Default() Config {
	return Config{
		BaseURL:   recipeapi.DefaultBaseURL,
		RateLimit: recipeapi.DefaultRateLimit,
		Log: logging.Config{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the ini file at path, if any, and applies environment overrides.
// A .env file in the working directory is loaded first when present.
//
//	[service]
//	base_url = http://localhost:3000
//	rate_limit = 10
//	timeout = 30s
//
//	[session]
//	token = ...
//
//	[input]
//	file = recipes.json
//
//	[log]
//	level = info
//	format = console
//	file = /tmp/recipe-browser.log
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		file, err := ini.Load(path)
		if err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
		svc := file.Section("service")
		cfg.BaseURL = svc.Key("base_url").MustString(cfg.BaseURL)
		cfg.RateLimit = svc.Key("rate_limit").MustInt(cfg.RateLimit)
		cfg.Timeout = svc.Key("timeout").MustDuration(cfg.Timeout)

		cfg.Token = file.Section("session").Key("token").String()
		cfg.InputFile = file.Section("input").Key("file").String()

		lg := file.Section("log")
		cfg.Log.Level = lg.Key("level").MustString(cfg.Log.Level)
		cfg.Log.Format = lg.Key("format").MustString(cfg.Log.Format)
		cfg.Log.Output = lg.Key("file").String()
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv("RECIPES_BASE_URL"); ok && v != "" {
		cfg.BaseURL = v
	}
	if v, ok := os.LookupEnv("RECIPES_TOKEN"); ok {
		cfg.Token = v
	}
	if v, ok := os.LookupEnv("RECIPES_RATE_LIMIT"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("RECIPES_RATE_LIMIT: %w", err)
		}
		cfg.RateLimit = n
	}
	if v, ok := os.LookupEnv("RECIPES_LOG_LEVEL"); ok && v != "" {
		cfg.Log.Level = v
	}
	if v, ok := os.LookupEnv("RECIPES_LOG_FILE"); ok && v != "" {
		cfg.Log.Output = v
	}
	return nil
}

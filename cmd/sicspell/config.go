package main

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/hazyhaar/sicspell/pkg/dict"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "sicspell.yaml"

type config struct {
	LogLevel    string        `yaml:"log_level"`
	LoadTimeout time.Duration `yaml:"load_timeout"`
	Dictionary  dictConfig    `yaml:"dictionary"`
}

type dictConfig struct {
	Encoding string `yaml:"encoding"`
	KeepCR   bool   `yaml:"keep_cr"`
	SizeHint int    `yaml:"size_hint"`
}

func defaultConfig() config {
	return config{
		LogLevel:    "info",
		LoadTimeout: 2 * time.Minute,
		Dictionary:  dictConfig{SizeHint: 2048},
	}
}

// loadConfig reads path over the defaults. A missing file is not an error.
func loadConfig(path string, logger *slog.Logger) (config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("no config file, using defaults", "path", path)
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.LoadTimeout <= 0 {
		cfg.LoadTimeout = defaultConfig().LoadTimeout
	}
	return cfg, nil
}

func (c config) loadOptions() dict.LoadOptions {
	return dict.LoadOptions{
		Encoding: c.Dictionary.Encoding,
		KeepCR:   c.Dictionary.KeepCR,
		SizeHint: c.Dictionary.SizeHint,
	}
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}

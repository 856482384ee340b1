package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/Zuo-Peng/chat-analyzer/internal/analyze"
	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
)

// EnvPath overrides the config file location.
const EnvPath = "WCA_CONFIG"

type Config struct {
	ExportsRoot      string `toml:"exports_root"`
	MediaPlaceholder string `toml:"media_placeholder"`
	StopwordsFile    string `toml:"stopwords_file"`
	WordLimit        int    `toml:"word_limit"`
	BusyUsers        int    `toml:"busy_users"`
	DateOrder        string `toml:"date_order"` // auto, dmy or mdy

	// Path is the file the config was read from, "" when only defaults apply.
	Path string `toml:"-"`
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfgPath := os.Getenv(EnvPath)
	if cfgPath == "" {
		cfgPath = filepath.Join(home, ".config", "wca", "config.toml")
	}
	return LoadFile(cfgPath, home)
}

// LoadFile applies the TOML file at cfgPath, if it exists, over the
// defaults. home is used to expand "~/" prefixes.
func LoadFile(cfgPath, home string) (*Config, error) {
	cfg := &Config{
		ExportsRoot:      filepath.Join(home, "Downloads"),
		MediaPlaceholder: analyze.DefaultMediaPlaceholder,
		WordLimit:        analyze.DefaultWordLimit,
		BusyUsers:        5,
		DateOrder:        "auto",
	}

	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
		cfg.Path = cfgPath
	}

	// expand ~ in paths
	cfg.ExportsRoot = expandHome(cfg.ExportsRoot, home)
	cfg.StopwordsFile = expandHome(cfg.StopwordsFile, home)

	if _, err := parse.ParseDateOrder(cfg.DateOrder); err != nil {
		return nil, fmt.Errorf("config %s: %w", cfgPath, err)
	}
	if cfg.WordLimit <= 0 {
		return nil, fmt.Errorf("config %s: word_limit must be positive, got %d", cfgPath, cfg.WordLimit)
	}

	return cfg, nil
}

// ParseOptions returns the parser options the config selects.
func (c *Config) ParseOptions() []parse.Option {
	order, _ := parse.ParseDateOrder(c.DateOrder)
	if order == parse.AutoOrder {
		return nil
	}
	return []parse.Option{parse.WithDateOrder(order)}
}

// AnalyzeOptions builds the aggregation options, loading the stopword
// file when one is configured.
func (c *Config) AnalyzeOptions() (analyze.Options, error) {
	opts := analyze.Options{
		MediaPlaceholder: c.MediaPlaceholder,
		WordLimit:        c.WordLimit,
	}
	if c.StopwordsFile != "" {
		sw, err := analyze.LoadStopwords(c.StopwordsFile)
		if err != nil {
			return opts, fmt.Errorf("stopwords: %w", err)
		}
		opts.Stopwords = sw
	}
	return opts, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings cellmon needs to reach the backend and run
// the console.
type Config struct {
	ServerURL      string
	PollInterval   time.Duration
	ReconnectDelay time.Duration
	LogDir         string
}

const (
	defaultConfigPath = "~/.config/cellmon/config.toml"
	defaultServerURL  = "http://127.0.0.1:8000"
	defaultLogDir     = "~/.local/share/cellmon/logs"

	// The backend updates on a one second cadence; both the poll period and
	// the reconnect delay follow it.
	defaultPollInterval   = 1000 * time.Millisecond
	defaultReconnectDelay = 1000 * time.Millisecond
)

// Load locates and parses the cellmon config, falling back to defaults when
// the file is missing or fields are empty.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		ServerURL:      defaultServerURL,
		PollInterval:   defaultPollInterval,
		ReconnectDelay: defaultReconnectDelay,
		LogDir:         mustExpand(defaultLogDir),
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		ServerURL        string `toml:"server_url"`
		PollIntervalMS   int    `toml:"poll_interval_ms"`
		ReconnectDelayMS int    `toml:"reconnect_delay_ms"`
		LogDir           string `toml:"log_dir"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if url := strings.TrimSpace(raw.ServerURL); url != "" {
		cfg.ServerURL = url
	}
	if raw.PollIntervalMS > 0 {
		cfg.PollInterval = time.Duration(raw.PollIntervalMS) * time.Millisecond
	}
	if raw.ReconnectDelayMS > 0 {
		cfg.ReconnectDelay = time.Duration(raw.ReconnectDelayMS) * time.Millisecond
	}
	if dir := strings.TrimSpace(raw.LogDir); dir != "" {
		cfg.LogDir = mustExpand(dir)
	}

	return cfg, nil
}

// LogPath returns the path of the cellmon log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/cellmon.log")
	}
	return filepath.Join(c.LogDir, "cellmon.log")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultConfigPath      = "./config.yaml"
	defaultListenAddr      = ":5000"
	defaultRootDir         = "./public"
	defaultVersionFile     = "version.json"
	defaultCacheMaxAge     = 31536000
	defaultShutdownTimeout = 15 * time.Second
)

type Config struct {
	ListenAddr      string        `yaml:"listen_addr" json:"listen_addr"`
	RootDir         string        `yaml:"root_dir" json:"root_dir"`
	VersionFile     string        `yaml:"version_file" json:"version_file"`
	CacheMaxAge     int           `yaml:"cache_max_age" json:"cache_max_age"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" json:"shutdown_timeout"`
}

// Default возвращает конфигурацию со значениями по умолчанию.
func Default() *Config {
	return &Config{
		ListenAddr:      defaultListenAddr,
		RootDir:         defaultRootDir,
		VersionFile:     defaultVersionFile,
		CacheMaxAge:     defaultCacheMaxAge,
		ShutdownTimeout: defaultShutdownTimeout,
	}
}

// Load читает YAML-конфигурацию, применяет ENV-переопределения и возвращает актуальную структуру.
// Путь берётся из аргумента, затем из CONFIG_PATH. Отсутствие файла по умолчанию не ошибка.
func Load(path string) (*Config, error) {
	explicit := true
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = defaultConfigPath
		explicit = false
	}

	c := Default()
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, err
	}

	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// ENV override
func (c *Config) applyEnv() error {
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("ROOT_DIR"); v != "" {
		c.RootDir = v
	}
	if v := os.Getenv("VERSION_FILE"); v != "" {
		c.VersionFile = v
	}
	if v := os.Getenv("CACHE_MAX_AGE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CACHE_MAX_AGE: %w", err)
		}
		c.CacheMaxAge = n
	}
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
		}
		c.ShutdownTimeout = d
	}

	return nil
}

// Validate проверяет, что конфигурацию можно использовать для запуска сервера.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.RootDir) == "" {
		return fmt.Errorf("root_dir is not configured")
	}
	if strings.TrimSpace(c.VersionFile) == "" || strings.ContainsAny(c.VersionFile, `/\`) {
		return fmt.Errorf("version_file must be a plain file name, got %q", c.VersionFile)
	}
	if c.CacheMaxAge < 0 {
		return fmt.Errorf("cache_max_age must not be negative")
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = defaultShutdownTimeout
	}

	return nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/labstack/gommon/log"
	"github.com/radhian/credit-timeline/consts"
	"gopkg.in/yaml.v3"
)

// Config holds service settings. Values come from an optional YAML file and
// are then overridden by environment variables.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Engine   EngineConfig   `yaml:"engine"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type DatabaseConfig struct {
	Driver   string `yaml:"driver"` // postgres, mysql, sqlite3
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Name     string `yaml:"name"`
	Password string `yaml:"password"`
	// Path is the database file for sqlite3.
	Path        string `yaml:"path"`
	AutoMigrate bool   `yaml:"auto_migrate"`
}

type EngineConfig struct {
	ShardSize int `yaml:"shard_size"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func Default() *Config {
	return &Config{
		Server:   ServerConfig{Port: consts.DefaultPort},
		Database: DatabaseConfig{Driver: consts.DefaultDBDriver, AutoMigrate: true},
		Engine:   EngineConfig{ShardSize: consts.DefaultShardSize},
		Log:      LogConfig{Level: consts.DefaultLogLevel},
	}
}

// Load reads path when it is not empty, then applies env overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	setString := func(key string, dst *string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}

	setString("PORT", &c.Server.Port)
	setString("DB_DRIVER", &c.Database.Driver)
	setString("DB_HOST", &c.Database.Host)
	setString("DB_PORT", &c.Database.Port)
	setString("DB_USER", &c.Database.User)
	setString("DB_NAME", &c.Database.Name)
	setString("DB_PASSWORD", &c.Database.Password)
	setString("DB_PATH", &c.Database.Path)
	setString("LOG_LEVEL", &c.Log.Level)

	if v := os.Getenv("CREDIT_SHARD_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Engine.ShardSize = n
		} else {
			log.Warnf("[Config] Ignoring CREDIT_SHARD_SIZE=%q: %v", v, err)
		}
	}
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "mysql", "sqlite3":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Engine.ShardSize < 0 {
		return fmt.Errorf("shard size must not be negative, got %d", c.Engine.ShardSize)
	}
	if _, ok := parseLevel(c.Log.Level); !ok {
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}

// DSN builds the connection string gorm expects for the configured driver.
func (d DatabaseConfig) DSN() (string, error) {
	switch d.Driver {
	case "postgres":
		return fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s",
			d.Host, d.Port, d.User, d.Name, d.Password), nil
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			d.User, d.Password, d.Host, d.Port, d.Name), nil
	case "sqlite3":
		if d.Path == "" {
			return "", fmt.Errorf("sqlite3 requires a database path")
		}
		return d.Path, nil
	}
	return "", fmt.Errorf("unsupported database driver %q", d.Driver)
}

// ApplyLogLevel sets the level of the shared gommon logger.
func (l LogConfig) ApplyLogLevel() {
	if lvl, ok := parseLevel(l.Level); ok {
		log.SetLevel(lvl)
	}
}

func parseLevel(s string) (log.Lvl, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DEBUG, true
	case "info", "":
		return log.INFO, true
	case "warn", "warning":
		return log.WARN, true
	case "error":
		return log.ERROR, true
	case "off":
		return log.OFF, true
	}
	return 0, false
}

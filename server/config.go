package server

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds HTTP server settings. Zero values fall back to the
// defaults from DefaultConfig.
type Config struct {
	// Addr is the listen address (host:port).
	Addr string `yaml:"addr"`

	// ReadTimeout is the maximum duration for reading the entire
	// request.
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of
	// the response.
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next
	// request on a kept-alive connection.
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header.
	MaxHeaderBytes int `yaml:"max_header_bytes"`

	// MaxConns caps the number of simultaneous connections. Zero means
	// unlimited.
	MaxConns int `yaml:"max_conns"`

	// ShutdownTimeout is the maximum duration for graceful shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DefaultConfig returns a default server configuration.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		IdleTimeout:     60 * time.Second,
		MaxHeaderBytes:  1 << 20,
		ShutdownTimeout: 30 * time.Second,
	}
}

// LoadConfig reads a YAML config file on top of the defaults and then
// applies environment overrides. Dotenv files passed in are loaded
// first and silently skipped when missing, so a local .env works in
// development without being required in production.
func LoadConfig(path string, dotenvFiles ...string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("server: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("server: parse config: %w", err)
	}

	cfg.applyEnv(dotenvFiles...)

	return cfg, nil
}

// applyEnv overlays STRAND_* environment variables onto the config,
// loading the given dotenv files beforehand.
func (c *Config) applyEnv(dotenvFiles ...string) {
	for _, file := range dotenvFiles {
		// Missing dotenv files are not an error.
		_ = godotenv.Load(file)
	}

	c.Addr = getEnvString("STRAND_ADDR", c.Addr)
	c.ReadTimeout = getEnvDuration("STRAND_READ_TIMEOUT", c.ReadTimeout)
	c.WriteTimeout = getEnvDuration("STRAND_WRITE_TIMEOUT", c.WriteTimeout)
	c.IdleTimeout = getEnvDuration("STRAND_IDLE_TIMEOUT", c.IdleTimeout)
	c.MaxConns = getEnvInt("STRAND_MAX_CONNS", c.MaxConns)
	c.ShutdownTimeout = getEnvDuration("STRAND_SHUTDOWN_TIMEOUT", c.ShutdownTimeout)
}

func getEnvString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

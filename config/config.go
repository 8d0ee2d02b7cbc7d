package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/goccy/go-json"
)

// Config holds all configuration for the application
type Config struct {
	// Storage configuration
	Storage StorageConfig `json:"storage"`

	// Game configuration
	Game GameConfig `json:"game"`

	// Server configuration
	Server ServerConfig `json:"server"`
}

// StorageConfig holds persistence specific configuration
type StorageConfig struct {
	// Storage driver (file, memory, redis)
	Driver string `json:"driver"`

	// Directory used by the file driver
	Path string `json:"path"`

	// Redis connection settings
	RedisAddr     string `json:"redis_addr"`
	RedisPassword string `json:"redis_password"`
	RedisDB       int    `json:"redis_db"`

	// Prefix applied to every Redis key
	KeyPrefix string `json:"key_prefix"`
}

// GameConfig holds game specific configuration
type GameConfig struct {
	// Difficulty used when a scenario is started without one
	DefaultDifficulty string `json:"default_difficulty"`

	// Countdown tick in milliseconds
	TickIntervalMillis int `json:"tick_interval_millis"`

	// How long a decision outcome is shown before the next event
	EventResultDelayMillis int `json:"event_result_delay_millis"`

	// What happens when the countdown hits zero (cue, forfeit)
	TimeoutPolicy string `json:"timeout_policy"`

	// Number of finished games kept in history
	HistoryLimit int `json:"history_limit"`

	// Seed for the event draw, 0 picks one at random
	ShuffleSeed int64 `json:"shuffle_seed"`

	// Optional directory with extra event pools
	DataDir string `json:"data_dir"`
}

// ServerConfig holds server specific configuration
type ServerConfig struct {
	// Server port
	Port string `json:"port"`

	// Log level (debug, info, warn, error)
	LogLevel string `json:"log_level"`

	// Externally reachable URL, encoded in report share codes
	PublicURL string `json:"public_url"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Driver:    "file",
			Path:      "./data",
			RedisAddr: "localhost:6379",
			KeyPrefix: "",
		},
		Game: GameConfig{
			DefaultDifficulty:      "medium",
			TickIntervalMillis:     1000,
			EventResultDelayMillis: 3000,
			TimeoutPolicy:          "cue",
			HistoryLimit:           10,
			ShuffleSeed:            0,
			DataDir:                "./assets/data",
		},
		Server: ServerConfig{
			Port:      "8080",
			LogLevel:  "info",
			PublicURL: "http://localhost:8080",
		},
	}
}

// LoadConfig loads configuration from a file
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return config, err
	}

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// Create default config file
		return config, SaveConfig(config, path)
	}

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return config, err
	}

	if err := json.Unmarshal(data, &config); err != nil {
		return config, err
	}

	return config, nil
}

// SaveConfig saves configuration to a file
func SaveConfig(config Config, path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides settings from DRRM_* environment variables.
// Unset or unparsable values leave the current setting alone.
func (c *Config) ApplyEnv() {
	setString(&c.Storage.Driver, "DRRM_STORAGE_DRIVER")
	setString(&c.Storage.Path, "DRRM_STORAGE_PATH")
	setString(&c.Storage.RedisAddr, "DRRM_REDIS_ADDR")
	setString(&c.Storage.RedisPassword, "DRRM_REDIS_PASSWORD")
	setInt(&c.Storage.RedisDB, "DRRM_REDIS_DB")
	setString(&c.Storage.KeyPrefix, "DRRM_KEY_PREFIX")

	setString(&c.Game.DefaultDifficulty, "DRRM_DEFAULT_DIFFICULTY")
	setInt(&c.Game.TickIntervalMillis, "DRRM_TICK_INTERVAL_MILLIS")
	setInt(&c.Game.EventResultDelayMillis, "DRRM_EVENT_RESULT_DELAY_MILLIS")
	setString(&c.Game.TimeoutPolicy, "DRRM_TIMEOUT_POLICY")
	setInt(&c.Game.HistoryLimit, "DRRM_HISTORY_LIMIT")
	if v, ok := os.LookupEnv("DRRM_SHUFFLE_SEED"); ok {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Game.ShuffleSeed = seed
		}
	}
	setString(&c.Game.DataDir, "DRRM_DATA_DIR")

	setString(&c.Server.Port, "DRRM_PORT")
	setString(&c.Server.LogLevel, "DRRM_LOG_LEVEL")
	setString(&c.Server.PublicURL, "DRRM_PUBLIC_URL")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

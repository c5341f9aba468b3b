package common

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the values of a yaml file. Getters never fail: a missing key or a value of the wrong type
// yields the default passed by the caller.
type Config struct {
	values map[string]any
}

// LoadConfig allows to customize parameters instead of passing every one of them on the command line.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	values := make(map[string]any)
	err = yaml.Unmarshal(data, &values)
	if err != nil {
		return nil, err
	}
	return NewConfig(values), nil
}

// NewConfig wraps already parsed values. A nil map is an empty config where every getter returns its default.
func NewConfig(values map[string]any) *Config {
	if values == nil {
		values = make(map[string]any)
	}
	return &Config{values: values}
}

func lookup[T any](c *Config, key string) (T, bool) {
	value, ok := c.values[key].(T)
	return value, ok
}

// GetString returns "" for a missing or non-string key.
func (c *Config) GetString(key string) string {
	value, _ := lookup[string](c, key)
	return value
}

// GetStringOrDefault treats an empty string like a missing key.
func (c *Config) GetStringOrDefault(key, defaultValue string) string {
	if value := c.GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) GetIntOrDefault(key string, defaultValue int) int {
	if value, ok := lookup[int](c, key); ok {
		return value
	}
	return defaultValue
}

func (c *Config) GetBoolOrDefault(key string, defaultValue bool) bool {
	if value, ok := lookup[bool](c, key); ok {
		return value
	}
	return defaultValue
}

// GetDurationOrDefault accepts either a number of milliseconds or a duration string such as "30s".
// Negative or unparsable values yield `defaultValue`.
func (c *Config) GetDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if ms, ok := lookup[int](c, key); ok {
		if ms < 0 {
			return defaultValue
		}
		return time.Duration(ms) * time.Millisecond
	}
	if str, ok := lookup[string](c, key); ok {
		duration, err := time.ParseDuration(str)
		if err == nil && duration >= 0 {
			return duration
		}
	}
	return defaultValue
}

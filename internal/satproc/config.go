package satproc

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// Config maps a backend's config key (e.g. "kissatPath") to the path of
// its executable.
type Config map[string]string

// LoadConfig reads and decodes a backend-path configuration file such
// as:
//
//	{"kissatPath": "/usr/local/bin/kissat", "cadicalPath": "cadical"}
//
// A missing file is not an error: callers fall back to bare executable
// names resolved against the process PATH.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("satproc: cannot read config %q: %w", path, err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("satproc: cannot parse config %q: %w", path, err)
	}

	config := Config{}
	if err := mapstructure.Decode(decoded, &config); err != nil {
		return nil, fmt.Errorf("satproc: cannot decode config %q: %w", path, err)
	}
	return config, nil
}

// ExecutablePath returns the configured path for key, or fallback if
// the config carries no override for it.
func (c Config) ExecutablePath(key, fallback string) string {
	if path, ok := c[key]; ok {
		return path
	}
	return fallback
}

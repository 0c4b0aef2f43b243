package compgen

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/thorn-jmh/errorst"
)

// Config carries the recognized generator options.
type Config struct {
	SourceMetadataFilePath string `mapstructure:"sourceMetadataFilePath"`
	OutputFolderPath       string `mapstructure:"outputFolderPath"`
	NestedPathPart         string `mapstructure:"nestedPathPart"`
	BasePathPart           string `mapstructure:"basePathPart"`
}

// DefaultConfig returns a config with the conventional sub-locations set.
func DefaultConfig() Config {
	return Config{
		NestedPathPart: "nested",
		BasePathPart:   "base",
	}
}

// LoadConfig reads a JSON config file and merges it over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, errorst.NewError("failed to read config file %s: %v", path, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return cfg, errorst.NewError("failed to parse config file %s: %v", path, err)
	}

	if err := mapstructure.Decode(raw, &cfg); err != nil {
		return cfg, errorst.NewError("failed to decode config file %s: %v", path, err)
	}

	return cfg, nil
}

// Validate checks that the settings a run cannot proceed without are set.
func (c Config) Validate() error {
	if c.SourceMetadataFilePath == "" {
		return errorst.Wrap(ErrBadConfig, "sourceMetadataFilePath is required")
	}
	if c.OutputFolderPath == "" {
		return errorst.Wrap(ErrBadConfig, "outputFolderPath is required")
	}
	return nil
}

package shell

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultPrompt = "$ "

// rcConfig mirrors the structure of the rc file.
type rcConfig struct {
	Prompt  string            `yaml:"prompt"`
	Aliases map[string]string `yaml:"aliases"`
	History rcHistory         `yaml:"history"`
}

type rcHistory struct {
	Disabled bool   `yaml:"disabled"`
	DB       string `yaml:"db"`
}

func defaultRCConfig() *rcConfig {
	return &rcConfig{Prompt: defaultPrompt}
}

// readRC reads the rc file at path. A missing file, or an empty path, is not
// an error and yields the default configuration. A file that cannot be read
// or parsed also yields the default configuration, along with the error, so
// that the caller can warn and continue.
func readRC(path string) (*rcConfig, error) {
	cfg := defaultRCConfig()
	if path == "" {
		return cfg, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer file.Close()

	dec := yaml.NewDecoder(file)
	// Mistyped keys are reported instead of being silently ignored.
	dec.KnownFields(true)
	err = dec.Decode(cfg)
	if err == io.EOF {
		// Empty file.
		return defaultRCConfig(), nil
	}
	if err != nil {
		return defaultRCConfig(), fmt.Errorf("cannot parse %s: %v", path, err)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = defaultPrompt
	}
	return cfg, nil
}

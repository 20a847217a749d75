package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rca/tagversion/pkg/version"
	"github.com/rca/tagversion/pkg/writefile"
)

const configName = ".tagversion.yaml"

// Config holds the file-configurable defaults. Flags given on the
// command line always win over config values.
type Config struct {
	// CalverFormat is the calendar version format for --calver operations.
	CalverFormat string `yaml:"calver_format"`
	// Pattern is the placeholder pattern used by the write command.
	Pattern string `yaml:"pattern"`
	// Branch controls whether the branch name is appended to untagged
	// versions reported by the version command.
	Branch bool `yaml:"branch"`
	// Message is the default annotation message for created tags.
	Message string `yaml:"message"`
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() Config {
	return Config{
		CalverFormat: version.DefaultCalverFormat,
		Pattern:      writefile.DefaultPattern,
		Branch:       true,
	}
}

// LoadConfig reads the config file at path, or discovers one in the
// current directory and then the home directory when path is empty. A
// missing discovered file is fine; a missing explicit path is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = discoverConfig()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

func discoverConfig() string {
	if _, err := os.Stat(configName); err == nil {
		return configName
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	candidate := filepath.Join(home, configName)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return ""
}

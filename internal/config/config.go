// Package config loads server settings from defaults, an optional YAML
// file, and GALLERY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/taigrr/gallery-mcp/internal/types"
)

// EnvPrefix is prepended to every environment override, so log.file is
// read from GALLERY_LOG_FILE.
const EnvPrefix = "GALLERY"

type (
	// Config is the complete server configuration.
	Config struct {
		Server       ServerConfig `mapstructure:"server" yaml:"server"`
		Log          LogConfig    `mapstructure:"log" yaml:"log"`
		AllowedRoots []string     `mapstructure:"allowed_roots" yaml:"allowed_roots"`
	}

	// ServerConfig names the MCP implementation.
	ServerConfig struct {
		Name string `mapstructure:"name" yaml:"name"`
	}

	// LogConfig controls diagnostic output. Logs never go to stdout, which
	// carries the MCP stdio transport.
	LogConfig struct {
		File    string `mapstructure:"file" yaml:"file"`
		Verbose bool   `mapstructure:"verbose" yaml:"verbose"`
	}
)

// Load reads the configuration. An empty path searches for gallery-mcp.yaml
// in the working directory and the user config directory; finding none is
// not an error. An explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("gallery-mcp")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "gallery-mcp"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.name", "gallery-mcp")
	v.SetDefault("log.file", "")
	v.SetDefault("log.verbose", false)
	v.SetDefault("allowed_roots", []string{})
}

// RootFilter returns the sandbox settings for the listers.
func (c *Config) RootFilter() *types.RootFilterConfig {
	return &types.RootFilterConfig{AllowedRoots: c.AllowedRoots}
}

// Package config provides the configuration loader for piper.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"go.trai.ch/piper/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up in the working directory.
const DefaultFilename = "piper.yaml"

// defaultQuality is applied when neither the file nor the environment sets one.
const defaultQuality = 82

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// Load reads the configuration from the given working directory, applies
// environment overrides and validates the result.
func (l *FileConfigLoader) Load(cwd string) (*domain.Config, error) {
	name := l.Filename
	if name == "" {
		name = DefaultFilename
	}
	if filepath.IsAbs(name) {
		return Load(name)
	}
	return Load(filepath.Join(cwd, name))
}

// Load reads a configuration file from the given path.
func Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file piperfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	cfg := &domain.Config{
		Script:          file.Script,
		DefaultQuality:  file.Defaults.Quality,
		DefaultLossless: file.Defaults.Lossless,
		Environment:     file.Environment,
	}
	if cfg.DefaultQuality == 0 {
		cfg.DefaultQuality = defaultQuality
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides lets the environment win over the file, matching the
// original tool's precedence.
func applyEnvOverrides(cfg *domain.Config) error {
	if script := os.Getenv("PIPER_SCRIPT"); script != "" {
		cfg.Script = script
	}
	if quality := os.Getenv("PIPER_QUALITY"); quality != "" {
		n, err := strconv.Atoi(quality)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "invalid PIPER_QUALITY"), "value", quality)
		}
		cfg.DefaultQuality = n
	}
	if lossless := os.Getenv("PIPER_LOSSLESS"); lossless != "" {
		b, err := strconv.ParseBool(lossless)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "invalid PIPER_LOSSLESS"), "value", lossless)
		}
		cfg.DefaultLossless = b
	}
	return nil
}

func validate(cfg *domain.Config) error {
	if cfg.Script == "" {
		return domain.ErrScriptNotConfigured
	}
	if cfg.DefaultQuality < 1 || cfg.DefaultQuality > 100 {
		return zerr.With(zerr.Wrap(domain.ErrInvalidQuality, "configured quality out of range"), "quality", cfg.DefaultQuality)
	}
	return nil
}

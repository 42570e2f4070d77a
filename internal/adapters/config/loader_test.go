package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/piper/internal/adapters/config"
	"go.trai.ch/piper/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "piper.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return dir
}

func TestLoad_Valid(t *testing.T) {
	dir := writeConfig(t, `version: "1"
script: ./seo_image_processor.sh
defaults:
  quality: 90
  lossless: false
environment:
  CWEBP_THREADS: "4"
`)

	loader := &config.FileConfigLoader{}
	cfg, err := loader.Load(dir)
	require.NoError(t, err)

	require.Equal(t, "./seo_image_processor.sh", cfg.Script)
	require.Equal(t, 90, cfg.DefaultQuality)
	require.False(t, cfg.DefaultLossless)
	require.Equal(t, "4", cfg.Environment["CWEBP_THREADS"])
}

func TestLoad_AbsoluteFilename(t *testing.T) {
	dir := writeConfig(t, `script: ./convert.sh
`)

	loader := &config.FileConfigLoader{Filename: filepath.Join(dir, "piper.yaml")}
	cfg, err := loader.Load(".")
	require.NoError(t, err)
	require.Equal(t, "./convert.sh", cfg.Script)
}

func TestLoad_DefaultQuality(t *testing.T) {
	dir := writeConfig(t, `script: ./convert.sh
`)

	loader := &config.FileConfigLoader{}
	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	require.Equal(t, 82, cfg.DefaultQuality)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := writeConfig(t, `script: ./convert.sh
defaults:
  quality: 50
`)

	t.Setenv("PIPER_SCRIPT", "/opt/other.sh")
	t.Setenv("PIPER_QUALITY", "75")
	t.Setenv("PIPER_LOSSLESS", "true")

	loader := &config.FileConfigLoader{}
	cfg, err := loader.Load(dir)
	require.NoError(t, err)

	require.Equal(t, "/opt/other.sh", cfg.Script)
	require.Equal(t, 75, cfg.DefaultQuality)
	require.True(t, cfg.DefaultLossless)
}

func TestLoad_InvalidEnvQuality(t *testing.T) {
	dir := writeConfig(t, `script: ./convert.sh
`)
	t.Setenv("PIPER_QUALITY", "not-a-number")

	loader := &config.FileConfigLoader{}
	_, err := loader.Load(dir)
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	loader := &config.FileConfigLoader{}
	_, err := loader.Load(t.TempDir())
	require.Error(t, err)
}

func TestLoad_MissingScript(t *testing.T) {
	dir := writeConfig(t, `version: "1"
defaults:
  quality: 80
`)

	loader := &config.FileConfigLoader{}
	_, err := loader.Load(dir)
	require.True(t, errors.Is(err, domain.ErrScriptNotConfigured))
}

func TestLoad_QualityOutOfRange(t *testing.T) {
	dir := writeConfig(t, `script: ./convert.sh
defaults:
  quality: 150
`)

	loader := &config.FileConfigLoader{}
	_, err := loader.Load(dir)
	require.True(t, errors.Is(err, domain.ErrInvalidQuality))
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := writeConfig(t, "script: [unclosed\n")

	loader := &config.FileConfigLoader{}
	_, err := loader.Load(dir)
	require.Error(t, err)
}

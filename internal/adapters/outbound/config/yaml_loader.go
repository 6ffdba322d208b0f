package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/realitycheck/realitycheck/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the per-directory analyzer configuration file.
const FileName = ".realitycheck.yaml"

// YAMLLoader reads .realitycheck.yaml over the default tuning.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .realitycheck.yaml from dir.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(dir string) (domain.AnalyzerConfig, error) {
	cfg, err := l.LoadFile(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return domain.DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFile reads a config file at an explicit path. Keys absent from the
// file keep their default values; extension maps merge per key.
func (l *YAMLLoader) LoadFile(path string) (domain.AnalyzerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.AnalyzerConfig{}, err
	}

	name := filepath.Base(path)
	cfg := domain.DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return domain.AnalyzerConfig{}, fmt.Errorf("parsing %s: %w", name, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.AnalyzerConfig{}, fmt.Errorf("invalid %s: %w", name, err)
	}

	return cfg, nil
}

// Marshal renders a config as YAML.
func Marshal(cfg domain.AnalyzerConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return buf.Bytes(), nil
}

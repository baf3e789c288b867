package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Component types a scan can declare.
const (
	TypeInt   = "int"
	TypeFloat = "float"
)

// ScanSpec names one file scan: the input path plus the externally fixed
// component type and point dimension.
type ScanSpec struct {
	Path string `yaml:"path"`
	Type string `yaml:"type"`
	Dim  int    `yaml:"dim"`
}

func (s ScanSpec) validate() error {
	if s.Path == "" {
		return fmt.Errorf("missing path")
	}
	if s.Type != TypeInt && s.Type != TypeFloat {
		return fmt.Errorf("unknown type %q (want %q or %q)", s.Type, TypeInt, TypeFloat)
	}
	if s.Dim < 1 {
		return fmt.Errorf("invalid dim %d", s.Dim)
	}
	return nil
}

// Config is the YAML scan manifest.
type Config struct {
	Scans []ScanSpec `yaml:"scans"`
}

// LoadConfig reads and validates a manifest file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(data)
}

// ParseConfig unmarshals and validates manifest bytes.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing manifest: %w", err)
	}
	if len(cfg.Scans) == 0 {
		return Config{}, fmt.Errorf("manifest has no scans")
	}
	for i, s := range cfg.Scans {
		if err := s.validate(); err != nil {
			return Config{}, fmt.Errorf("scan %d: %w", i, err)
		}
	}
	return cfg, nil
}

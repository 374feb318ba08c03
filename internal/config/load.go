package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// File is the optional YAML configuration file.
type File struct {
	APIToken                 string `yaml:"api_token"`
	AccountID                string `yaml:"account_id"`
	ProjectName              string `yaml:"project_name"`
	DeleteAliasedDeployments bool   `yaml:"delete_aliased_deployments"`
	APIBaseURL               string `yaml:"api_base_url"`
}

// LoadFile reads and parses the configuration from a YAML file.
// An empty path returns an empty File.
func LoadFile(path string) (*File, error) {
	if path == "" {
		return &File{}, nil
	}

	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigurationError{Field: "config file " + path, Reason: fmt.Sprintf("could not be read: %v", err)}
	}

	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, &ConfigurationError{Field: "config file " + path, Reason: fmt.Sprintf("is invalid: %v", err)}
	}
	return &f, nil
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment.
// Variables that are already set win. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	credentialsDir  = "shiftctl"
	credentialsFile = "credentials.yaml"
	// DefaultServer is used when neither the flag nor the file names one.
	DefaultServer = "http://localhost:8080"
)

// Credentials is what the CLI remembers between invocations.
type Credentials struct {
	Server   string `yaml:"server" validate:"required,url"`
	Username string `yaml:"username,omitempty"`
	Token    string `yaml:"token,omitempty"`
}

var validate = validator.New()

// DefaultCredentialsPath returns the credentials file under the user's
// config directory, falling back to the working directory.
func DefaultCredentialsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return credentialsFile
	}
	return filepath.Join(dir, credentialsDir, credentialsFile)
}

// LoadCredentials reads path. A missing file yields empty credentials
// pointing at DefaultServer.
func LoadCredentials(path string) (*Credentials, error) {
	creds := &Credentials{Server: DefaultServer}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return creds, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	if err := yaml.Unmarshal(data, creds); err != nil {
		return nil, fmt.Errorf("failed to parse credentials file: %w", err)
	}
	if creds.Server == "" {
		creds.Server = DefaultServer
	}
	if err := validate.Struct(creds); err != nil {
		return nil, fmt.Errorf("credentials validation failed: %w", err)
	}
	return creds, nil
}

// SaveCredentials writes creds to path, readable by the owner only.
func SaveCredentials(path string, creds *Credentials) error {
	if err := validate.Struct(creds); err != nil {
		return fmt.Errorf("credentials validation failed: %w", err)
	}

	data, err := yaml.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create credentials directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}
	return nil
}

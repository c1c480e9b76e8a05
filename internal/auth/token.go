// Package auth resolves the guardrail hub access token used for
// authenticated index access.
package auth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvToken overrides the rc file when set. Mainly useful for CI and
// tests.
const EnvToken = "GUARDHUB_TOKEN"

const rcFileName = ".guardhubrc"

// ErrNoToken indicates that no hub token is configured.
var ErrNoToken = errors.New("guardrail hub token not found; run 'pmguard configure' first")

type rcFile struct {
	Token string `yaml:"token"`
}

// RCPath returns the location of the hub rc file in the user's home
// directory.
func RCPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, rcFileName), nil
}

// ResolveToken returns the configured hub token, preferring the
// environment over the rc file.
func ResolveToken() (string, error) {
	if t := os.Getenv(EnvToken); t != "" {
		return t, nil
	}

	path, err := RCPath()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path) //nolint:gosec // fixed path under the user's home
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	var rc rcFile
	if err := yaml.Unmarshal(data, &rc); err != nil {
		return "", fmt.Errorf("parsing %s: %w", path, err)
	}
	if rc.Token == "" {
		return "", ErrNoToken
	}
	return rc.Token, nil
}

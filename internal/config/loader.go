package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads a calculation profile.
// Search order: customPath -> ~/.starcalc/profiles/default.yaml ->
// ./profiles/default.yaml -> embedded default.
func Load(customPath string) (Profile, error) {
	var p Profile

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return p, fmt.Errorf("failed to read profile %s: %w", customPath, err)
		}
		return Parse(data)
	}

	// Try user profile directory
	if userPath := userProfilePath("default.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if p, err := Parse(data); err == nil {
				return p, nil
			}
		}
	}

	// Try local profiles directory
	if data, err := os.ReadFile("profiles/default.yaml"); err == nil {
		if p, err := Parse(data); err == nil {
			return p, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultProfileYAML, &p); err != nil {
		return DefaultProfile(), nil // Fallback to hardcoded if embed fails
	}
	return p, nil
}

// Parse decodes a YAML profile.
func Parse(data []byte) (Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("failed to parse profile: %w", err)
	}
	return p, nil
}

// Marshal encodes a profile back to YAML, e.g. for saving into the
// profile store.
func Marshal(p Profile) ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode profile: %w", err)
	}
	return data, nil
}

// userProfilePath returns the path to a user profile file, or empty if the
// home directory is unavailable.
func userProfilePath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".starcalc", "profiles", filename)
}

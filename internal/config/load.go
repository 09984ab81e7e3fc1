package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/sdd-module/internal/messages"
)

// ErrConfigValidation wraps unknown keys and invalid values, as opposed to
// unreadable files and TOML syntax errors.
var ErrConfigValidation = errors.New("config validation failed")

// LoadConfig reads and validates the host config file at path; "~" is expanded.
func LoadConfig(path string) (*InstallConfig, error) {
	resolved, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigExpandPathFmt, path, err)
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigReadFileFmt, resolved, err)
	}
	return ParseConfig(data, resolved)
}

// ParseConfig decodes data strictly and validates the result.
// source names the input in error messages.
func ParseConfig(data []byte, source string) (*InstallConfig, error) {
	var cfg InstallConfig
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt, ErrConfigValidation, source, unknownKeys(strict))
		}
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, column := decodeErr.Position()
			return nil, fmt.Errorf(messages.ConfigSyntaxAtFmt, source, row, column, err)
		}
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigInvalidFieldsFmt, ErrConfigValidation, source, err)
	}
	return &cfg, nil
}

func unknownKeys(strict *toml.StrictMissingError) string {
	keys := make([]string, 0, len(strict.Errors))
	for i := range strict.Errors {
		keys = append(keys, strings.Join(strict.Errors[i].Key(), "."))
	}
	return strings.Join(keys, ", ")
}

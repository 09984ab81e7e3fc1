package config

import (
	"fmt"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/sdd-module/internal/messages"
)

const (
	// DefaultModuleVersion is reported when the host does not supply a version.
	DefaultModuleVersion = "1.0.0-alpha"
	// DefaultCode is the module code used when the host does not supply one.
	DefaultCode = "sdd"
	// ModuleParentDir is the host directory that holds installed module namespaces.
	ModuleParentDir = "bmad"
)

var moduleCodePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-]*$`)

var configValidator = newValidator()

// InstallConfig is the immutable input supplied by the host framework.
type InstallConfig struct {
	ProjectRoot        string         `toml:"project_root"`
	OutputDocumentPath string         `toml:"output_document_path"`
	ModuleVersion      string         `toml:"module_version" validate:"omitempty,max=64,printascii"`
	Code               string         `toml:"code" validate:"omitempty,max=32,modulecode"`
	CredentialPath     string         `toml:"credential_path"`
	SkipSidecars       bool           `toml:"skip_sidecars"`
	Warnings           WarningsConfig `toml:"warnings"`
}

// WarningsConfig controls how outcomes are rendered.
type WarningsConfig struct {
	NoiseMode string `toml:"noise_mode" validate:"omitempty,oneof=default reduce"`
}

// HasProjectRoot reports whether the required project root was supplied.
func (c InstallConfig) HasProjectRoot() bool {
	return strings.TrimSpace(c.ProjectRoot) != ""
}

// CodeOrDefault returns the module code, falling back to DefaultCode.
func (c InstallConfig) CodeOrDefault() string {
	if code := strings.TrimSpace(c.Code); code != "" {
		return code
	}
	return DefaultCode
}

// ModuleVersionOrDefault returns the module version, falling back to DefaultModuleVersion.
func (c InstallConfig) ModuleVersionOrDefault() string {
	if v := strings.TrimSpace(c.ModuleVersion); v != "" {
		return v
	}
	return DefaultModuleVersion
}

// ModuleRelPath returns the slash-separated module namespace relative to the project root.
func (c InstallConfig) ModuleRelPath() string {
	return path.Join(ModuleParentDir, c.CodeOrDefault())
}

// Normalized returns a trimmed copy with "~" expanded and every path field made absolute.
func (c InstallConfig) Normalized() (InstallConfig, error) {
	out := c
	out.Code = strings.TrimSpace(c.Code)
	out.ModuleVersion = strings.TrimSpace(c.ModuleVersion)
	out.Warnings.NoiseMode = strings.TrimSpace(c.Warnings.NoiseMode)
	for _, field := range []*string{&out.ProjectRoot, &out.OutputDocumentPath, &out.CredentialPath} {
		trimmed := strings.TrimSpace(*field)
		if trimmed == "" {
			*field = ""
			continue
		}
		expanded, err := homedir.Expand(trimmed)
		if err != nil {
			return InstallConfig{}, fmt.Errorf(messages.ConfigExpandPathFmt, trimmed, err)
		}
		abs, err := filepath.Abs(expanded)
		if err != nil {
			return InstallConfig{}, fmt.Errorf(messages.ConfigExpandPathFmt, trimmed, err)
		}
		*field = abs
	}
	return out, nil
}

// Validate checks the optional fields. A missing project root is not a
// validation error; the lifecycle reports it as a failed precondition.
func (c InstallConfig) Validate() error {
	return configValidator.Struct(c)
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("modulecode", func(fl validator.FieldLevel) bool {
		return moduleCodePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register modulecode validation: %v", err))
	}
	return v
}

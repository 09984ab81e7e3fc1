package install

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	yaml "go.yaml.in/yaml/v3"

	"github.com/conn-castle/sdd-module/internal/messages"
)

// CommandFileExt is the extension of every generated command descriptor file.
const CommandFileExt = ".md"

var commandNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

var commandValidator = newCommandValidator()

func newCommandValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("commandname", func(fl validator.FieldLevel) bool {
		return commandNamePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register commandname validation: %v", err))
	}
	return v
}

// CommandDescriptor is a static task definition exposed as a user-invocable command.
type CommandDescriptor struct {
	Name        string `validate:"required,commandname"`
	TaskPath    string `validate:"required"`
	Description string `validate:"required"`
}

// Normalized returns a trimmed copy of d.
func (d CommandDescriptor) Normalized() CommandDescriptor {
	return CommandDescriptor{
		Name:        strings.TrimSpace(d.Name),
		TaskPath:    strings.Trim(strings.TrimSpace(filepath.ToSlash(d.TaskPath)), "/"),
		Description: strings.TrimSpace(d.Description),
	}
}

// Validate ensures d can be rendered to a file inside the commands directory.
func (d CommandDescriptor) Validate() error {
	if err := commandValidator.Struct(d); err != nil {
		return fmt.Errorf(messages.InstallInvalidCommandFmt, d.Name, err)
	}
	return nil
}

// CommandPath maps a command name to its artifact path under commandsDir.
func CommandPath(commandsDir string, name string) string {
	return filepath.Join(commandsDir, name+CommandFileExt)
}

// ArtifactAction describes what happened to one generated artifact.
type ArtifactAction string

const (
	ArtifactCreated   ArtifactAction = "created"
	ArtifactUpdated   ArtifactAction = "updated"
	ArtifactUnchanged ArtifactAction = "unchanged"
	ArtifactCurrent   ArtifactAction = "current"
	ArtifactMissing   ArtifactAction = "missing"
	ArtifactOutdated  ArtifactAction = "outdated"
	ArtifactRemoved   ArtifactAction = "removed"
	ArtifactAbsent    ArtifactAction = "absent"
	ArtifactInvalid   ArtifactAction = "invalid"
	ArtifactFailed    ArtifactAction = "failed"
)

// ArtifactReport is the per-descriptor result of generating, inspecting, or removing an artifact.
type ArtifactReport struct {
	Name   string
	Path   string
	Action ArtifactAction
	// Diff shows the drift between the previous and generated content, when any.
	Diff string
	Err  error
}

// RenderCommand renders the artifact content for d. The output is a pure
// function of d and code.
func RenderCommand(d CommandDescriptor, code string) ([]byte, error) {
	frontMatter, err := buildCommandFrontMatter(d)
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	b.WriteString(frontMatter)
	fmt.Fprintf(&b, "Execute the %s standalone task: %s\n\n", strings.ToUpper(code), d.Name)
	fmt.Fprintf(&b, "<invoke-task path=\"{project-root}/%s\" />\n", d.TaskPath)
	return b.Bytes(), nil
}

func buildCommandFrontMatter(d CommandDescriptor) (string, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	appendFrontMatterScalar(root, "name", d.Name)
	appendFrontMatterScalar(root, "description", d.Description)

	var yamlBody strings.Builder
	encoder := yaml.NewEncoder(&yamlBody)
	encoder.SetIndent(2)
	if err := encoder.Encode(root); err != nil {
		return "", err
	}
	if err := encoder.Close(); err != nil {
		return "", err
	}

	var frontMatter strings.Builder
	frontMatter.WriteString("---\n")
	frontMatter.WriteString(strings.TrimSuffix(yamlBody.String(), "\n"))
	frontMatter.WriteString("\n---\n\n")
	return frontMatter.String(), nil
}

func appendFrontMatterScalar(root *yaml.Node, key string, value string) {
	root.Content = append(root.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		// An explicit !!str tag forces quoting of values like "true" or "1.0".
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value},
	)
}

// GenerateCommands writes one artifact per descriptor into commandsDir, always overwriting.
// The returned error reports only a failure to create commandsDir; per-descriptor
// failures are carried in the reports so one bad command never blocks the others.
func GenerateCommands(sys System, commandsDir string, descriptors []CommandDescriptor, code string, diffMaxLines int) ([]ArtifactReport, error) {
	if err := sys.MkdirAll(commandsDir, 0o755); err != nil {
		return nil, fmt.Errorf(messages.InstallCreateDirFailedFmt, commandsDir, err)
	}

	reports := make([]ArtifactReport, 0, len(descriptors))
	for _, raw := range descriptors {
		d := raw.Normalized()
		report := ArtifactReport{Name: d.Name}
		if err := d.Validate(); err != nil {
			report.Action = ArtifactInvalid
			report.Err = err
			reports = append(reports, report)
			continue
		}
		report.Path = CommandPath(commandsDir, d.Name)

		content, err := RenderCommand(d, code)
		if err != nil {
			report.Action = ArtifactFailed
			report.Err = fmt.Errorf(messages.InstallRenderCommandFailedFmt, d.Name, err)
			reports = append(reports, report)
			continue
		}

		previous, readErr := sys.ReadFile(report.Path)
		if err := sys.WriteFileAtomic(report.Path, content, 0o644); err != nil {
			report.Action = ArtifactFailed
			report.Err = fmt.Errorf(messages.InstallFailedWriteFmt, report.Path, err)
			reports = append(reports, report)
			continue
		}

		switch {
		case errors.Is(readErr, os.ErrNotExist):
			report.Action = ArtifactCreated
		case readErr == nil && bytes.Equal(previous, content):
			report.Action = ArtifactUnchanged
		case readErr == nil:
			report.Action = ArtifactUpdated
			report.Diff = renderArtifactDiff(d.Name+CommandFileExt, string(previous), string(content), diffMaxLines)
		default:
			report.Action = ArtifactUpdated
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// InspectCommands compares each expected artifact with what is on disk without writing.
func InspectCommands(sys System, commandsDir string, descriptors []CommandDescriptor, code string, diffMaxLines int) []ArtifactReport {
	reports := make([]ArtifactReport, 0, len(descriptors))
	for _, raw := range descriptors {
		d := raw.Normalized()
		report := ArtifactReport{Name: d.Name}
		if err := d.Validate(); err != nil {
			report.Action = ArtifactInvalid
			report.Err = err
			reports = append(reports, report)
			continue
		}
		report.Path = CommandPath(commandsDir, d.Name)

		content, err := RenderCommand(d, code)
		if err != nil {
			report.Action = ArtifactFailed
			report.Err = fmt.Errorf(messages.InstallRenderCommandFailedFmt, d.Name, err)
			reports = append(reports, report)
			continue
		}

		current, err := sys.ReadFile(report.Path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			report.Action = ArtifactMissing
		case err != nil:
			report.Action = ArtifactFailed
			report.Err = fmt.Errorf(messages.InstallFailedReadFmt, report.Path, err)
		case bytes.Equal(current, content):
			report.Action = ArtifactCurrent
		default:
			report.Action = ArtifactOutdated
			report.Diff = renderArtifactDiff(d.Name+CommandFileExt, string(current), string(content), diffMaxLines)
		}
		reports = append(reports, report)
	}
	return reports
}

// RemoveCommands deletes the artifacts the descriptors map to. A missing file is
// not an error, and directories are never removed.
func RemoveCommands(sys System, commandsDir string, descriptors []CommandDescriptor) []ArtifactReport {
	reports := make([]ArtifactReport, 0, len(descriptors))
	for _, raw := range descriptors {
		d := raw.Normalized()
		report := ArtifactReport{Name: d.Name}
		if err := d.Validate(); err != nil {
			report.Action = ArtifactInvalid
			report.Err = err
			reports = append(reports, report)
			continue
		}
		report.Path = CommandPath(commandsDir, d.Name)

		info, err := sys.Stat(report.Path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			report.Action = ArtifactAbsent
		case err != nil:
			report.Action = ArtifactFailed
			report.Err = fmt.Errorf(messages.InstallFailedStatFmt, report.Path, err)
		case info.IsDir():
			report.Action = ArtifactFailed
			report.Err = fmt.Errorf(messages.InstallRefuseRemoveDirFmt, report.Path)
		default:
			if err := sys.Remove(report.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
				report.Action = ArtifactFailed
				report.Err = fmt.Errorf(messages.InstallRemoveFailedFmt, report.Path, err)
			} else {
				report.Action = ArtifactRemoved
			}
		}
		reports = append(reports, report)
	}
	return reports
}

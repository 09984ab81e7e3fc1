package install

import (
	"path"

	"github.com/conn-castle/sdd-module/internal/config"
	"github.com/conn-castle/sdd-module/internal/messages"
)

// TemplateChecklist lists the module-root-relative files a usable module must ship.
var TemplateChecklist = []string{
	"templates/prd/template.md",
	"templates/tech-spec/template.md",
	"templates/commit/template.md",
	"templates/pr/template.md",
}

// DefaultSidecars names the agent sidecar directories under the module's agents dir.
var DefaultSidecars = []string{
	"pm-agent-sidecar",
	"dev-agent-sidecar",
}

// SidecarFiles are the files every sidecar is expected to contain.
var SidecarFiles = []string{
	"instructions.md",
	"memories.md",
}

// SidecarAuxDirs are created inside every present sidecar.
var SidecarAuxDirs = []string{
	"knowledge",
	"sessions",
}

// DefaultTools returns the executables probed during environment validation.
func DefaultTools() []Tool {
	return []Tool{
		{Name: "git", Label: "Git", Missing: messages.ProbeGitMissing},
		{Name: "gh", Label: "GitHub CLI (gh)", Missing: messages.ProbeGHMissing},
	}
}

// JiraCredentialRule accepts the key spellings used by the module's Jira tasks.
var JiraCredentialRule = CredentialRule{
	Name:      "Jira",
	URLKeys:   []string{"JIRA_API_URL", "JIRA_URL"},
	TokenKeys: []string{"JIRA_API_TOKEN", "JIRA_TOKEN"},
}

// DefaultCommands returns the standalone task commands for the module namespace in cfg.
func DefaultCommands(cfg config.InstallConfig) []CommandDescriptor {
	tasks := path.Join(cfg.ModuleRelPath(), "tasks")
	return []CommandDescriptor{
		{
			Name:        "generate-commit",
			TaskPath:    path.Join(tasks, "generate-commit.xml"),
			Description: "Create git commits following SDD streamlined format",
		},
		{
			Name:        "create-pr",
			TaskPath:    path.Join(tasks, "create-pr.xml"),
			Description: "Create pull requests following SDD streamlined format",
		},
	}
}

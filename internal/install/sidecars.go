package install

import (
	"path/filepath"
)

// SidecarReport describes one agent sidecar directory.
type SidecarReport struct {
	Name         string
	Path         string
	Present      bool
	MissingFiles []string
	// AuxDirs are the auxiliary subdirectories the sidecar should have.
	AuxDirs []string
}

// SidecarsReport describes the agents directory and every expected sidecar in it.
type SidecarsReport struct {
	AgentsDir        string
	AgentsDirPresent bool
	Sidecars         []SidecarReport
}

// InspectSidecars reports the state of each named sidecar under agentsDir.
// It never creates anything; callers decide whether to reconcile AuxDirs.
func InspectSidecars(sys System, agentsDir string, names []string) SidecarsReport {
	report := SidecarsReport{AgentsDir: agentsDir}
	if exists, err := dirExists(sys, agentsDir); err != nil || !exists {
		return report
	}
	report.AgentsDirPresent = true

	for _, name := range names {
		sidecarPath := filepath.Join(agentsDir, name)
		sidecar := SidecarReport{Name: name, Path: sidecarPath}
		if exists, err := dirExists(sys, sidecarPath); err != nil || !exists {
			report.Sidecars = append(report.Sidecars, sidecar)
			continue
		}
		sidecar.Present = true
		for _, file := range SidecarFiles {
			if _, err := sys.Stat(filepath.Join(sidecarPath, file)); err != nil {
				sidecar.MissingFiles = append(sidecar.MissingFiles, file)
			}
		}
		for _, dir := range SidecarAuxDirs {
			sidecar.AuxDirs = append(sidecar.AuxDirs, filepath.Join(sidecarPath, dir))
		}
		report.Sidecars = append(report.Sidecars, sidecar)
	}
	return report
}

// AuxDirs returns the auxiliary directories of every present sidecar in order.
func (r SidecarsReport) AuxDirs() []string {
	var dirs []string
	for _, sidecar := range r.Sidecars {
		dirs = append(dirs, sidecar.AuxDirs...)
	}
	return dirs
}

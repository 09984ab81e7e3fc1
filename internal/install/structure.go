package install

import (
	"path/filepath"
)

// ValidateStructure returns the checklist entries missing under root.
// Entries are slash-separated and relative to root. Nothing is created.
func ValidateStructure(sys System, root string, checklist []string) []string {
	var missing []string
	for _, entry := range checklist {
		if _, err := sys.Stat(filepath.Join(root, filepath.FromSlash(entry))); err != nil {
			missing = append(missing, entry)
		}
	}
	return missing
}

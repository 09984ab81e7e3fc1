package install

import (
	"errors"
	"os"
	"strings"
)

// CredentialStatus classifies how complete an integration's credential file is.
type CredentialStatus string

const (
	CredentialsAbsent     CredentialStatus = "absent"
	CredentialsIncomplete CredentialStatus = "incomplete"
	CredentialsComplete   CredentialStatus = "complete"
)

// CredentialRule lists accepted key-name substrings for a URL-like and a token-like value.
type CredentialRule struct {
	Name      string
	URLKeys   []string
	TokenKeys []string
}

// CredentialReport is the classification of one credential file.
type CredentialReport struct {
	Path     string
	Status   CredentialStatus
	HasURL   bool
	HasToken bool
	// ReadErr is set when the file exists but could not be read.
	ReadErr error
}

// ClassifyCredentials checks content for at least one key of each class.
// content is treated as opaque text; only substring containment is tested.
func ClassifyCredentials(content string, rule CredentialRule) CredentialReport {
	report := CredentialReport{
		HasURL:   containsAny(content, rule.URLKeys),
		HasToken: containsAny(content, rule.TokenKeys),
	}
	if report.HasURL && report.HasToken {
		report.Status = CredentialsComplete
	} else {
		report.Status = CredentialsIncomplete
	}
	return report
}

// InspectCredentials classifies the credential file at path.
// The status is CredentialsAbsent iff the file does not exist.
func InspectCredentials(sys System, path string, rule CredentialRule) CredentialReport {
	if _, err := sys.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return CredentialReport{Path: path, Status: CredentialsAbsent}
		}
		return CredentialReport{Path: path, Status: CredentialsIncomplete, ReadErr: err}
	}
	data, err := sys.ReadFile(path)
	if err != nil {
		return CredentialReport{Path: path, Status: CredentialsIncomplete, ReadErr: err}
	}
	report := ClassifyCredentials(string(data), rule)
	report.Path = path
	return report
}

// MissingClasses names the key classes that were not found.
func (r CredentialReport) MissingClasses(rule CredentialRule) []string {
	var missing []string
	if !r.HasURL {
		missing = append(missing, strings.Join(rule.URLKeys, " or "))
	}
	if !r.HasToken {
		missing = append(missing, strings.Join(rule.TokenKeys, " or "))
	}
	return missing
}

func containsAny(content string, needles []string) bool {
	for _, needle := range needles {
		if needle != "" && strings.Contains(content, needle) {
			return true
		}
	}
	return false
}

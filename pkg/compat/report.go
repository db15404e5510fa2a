package compat

import (
	"fmt"
	"strings"
)

// SupportLevel classifies why a browser was reported.
type SupportLevel int

const (
	Supported SupportLevel = iota
	// Unsupported: the browser shipped the member after the target minimum.
	Unsupported
	// Missing: the browser never shipped the member.
	Missing
	// Undetermined: the dataset has no version for the browser.
	Undetermined
)

func (l SupportLevel) String() string {
	switch l {
	case Supported:
		return "supported"
	case Unsupported:
		return "unsupported"
	case Missing:
		return "missing"
	case Undetermined:
		return "undetermined"
	}
	return fmt.Sprintf("SupportLevel(%d)", int(l))
}

func (l SupportLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *SupportLevel) UnmarshalText(text []byte) error {
	for _, level := range []SupportLevel{Supported, Unsupported, Missing, Undetermined} {
		if level.String() == string(text) {
			*l = level
			return nil
		}
	}
	return fmt.Errorf("unknown support level %q", string(text))
}

// CompatibilityIssue is one (member, browser) finding for a property name.
type CompatibilityIssue struct {
	Property      string            `json:"property"`
	QualifiedName string            `json:"qualified_name"`
	Browser       string            `json:"browser"`
	Level         SupportLevel      `json:"level"`
	VersionAdded  VersionDescriptor `json:"version_added"`
	MinVersion    VersionDescriptor `json:"min_version"`
	MDNURL        string            `json:"mdn_url,omitempty"`
	Message       string            `json:"message"`
}

// CompatibilityReport contains all issues found for a set of property names.
type CompatibilityReport struct {
	Issues []CompatibilityIssue `json:"issues"`
}

// LevelFor classifies an unsupported entry.
func LevelFor(entry UnsupportedEntry) SupportLevel {
	switch entry.VersionAdded.Normalize().Kind {
	case Concrete:
		return Unsupported
	case Never:
		return Missing
	case Unknown:
		return Undetermined
	}
	return Supported
}

func issuesForMember(property string, member MemberDescriptor) []CompatibilityIssue {
	issues := make([]CompatibilityIssue, 0, len(member.Unsupported))
	for _, entry := range member.Unsupported {
		issues = append(issues, CompatibilityIssue{
			Property:      property,
			QualifiedName: member.QualifiedName,
			Browser:       entry.Browser,
			Level:         LevelFor(entry),
			VersionAdded:  entry.VersionAdded,
			MinVersion:    entry.MinVersion,
			MDNURL:        member.MDNURL,
			Message:       issueMessage(member.QualifiedName, entry),
		})
	}
	return issues
}

func issueMessage(qualifiedName string, entry UnsupportedEntry) string {
	switch LevelFor(entry) {
	case Missing:
		return fmt.Sprintf("%s is not supported in %s %s", qualifiedName, entry.Browser, entry.MinVersion)
	case Undetermined:
		return fmt.Sprintf("%s has unknown support in %s %s", qualifiedName, entry.Browser, entry.MinVersion)
	default:
		return fmt.Sprintf("%s is not supported in %s %s (added in %s)", qualifiedName, entry.Browser, entry.MinVersion, entry.VersionAdded)
	}
}

func SummarizeReport(report *CompatibilityReport) string {
	if report == nil || len(report.Issues) == 0 {
		return "No compatibility issues found"
	}

	unsupported := 0
	missing := 0
	undetermined := 0

	for _, issue := range report.Issues {
		switch issue.Level {
		case Unsupported:
			unsupported++
		case Missing:
			missing++
		case Undetermined:
			undetermined++
		}
	}

	summary := fmt.Sprintf("%d issues found", len(report.Issues))
	details := make([]string, 0, 3)

	if unsupported > 0 {
		details = append(details, fmt.Sprintf("%d unsupported", unsupported))
	}
	if missing > 0 {
		details = append(details, fmt.Sprintf("%d missing", missing))
	}
	if undetermined > 0 {
		details = append(details, fmt.Sprintf("%d undetermined", undetermined))
	}

	if len(details) == 0 {
		return summary
	}

	return fmt.Sprintf("%s (%s)", summary, strings.Join(details, ", "))
}

// HasCriticalIssues is true when a browser is known to lack a member, as
// opposed to the dataset having no data for it.
func HasCriticalIssues(report *CompatibilityReport) bool {
	if report == nil {
		return false
	}

	for _, issue := range report.Issues {
		if issue.Level == Unsupported || issue.Level == Missing {
			return true
		}
	}

	return false
}

package compat

// CompatKey is the reserved child name holding a node's own compatibility data.
const CompatKey = "__compat"

// NamespaceNode is one level of the built-in namespace, e.g. "Array" or
// "Array.prototype". Children keep the order they had in the dataset.
type NamespaceNode struct {
	Compat   *CompatData
	Children []NamedNode
}

// NamedNode is a child of a NamespaceNode.
type NamedNode struct {
	Name string
	Node *NamespaceNode
}

// Child returns the child called name, or nil.
func (n *NamespaceNode) Child(name string) *NamespaceNode {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c.Node
		}
	}
	return nil
}

// CompatData is the content of a "__compat" entry.
type CompatData struct {
	MDNURL  string        `json:"mdn_url,omitempty"`
	Status  Status        `json:"status"`
	Support SupportRecord `json:"support"`
}

// Status mirrors the dataset's standardisation flags.
type Status struct {
	Experimental  bool `json:"experimental"`
	StandardTrack bool `json:"standard_track"`
	Deprecated    bool `json:"deprecated"`
}

// SupportRecord lists per-browser support in dataset order.
type SupportRecord []BrowserSupport

// Lookup returns the statement for browser.
func (r SupportRecord) Lookup(browser string) (SupportStatement, bool) {
	for _, s := range r {
		if s.Browser == browser {
			return s.Statement, true
		}
	}
	return SupportStatement{}, false
}

type BrowserSupport struct {
	Browser   string           `json:"browser"`
	Statement SupportStatement `json:"statement"`
}

// SupportStatement describes when one browser shipped a feature. A statement
// given as a list in the dataset keeps its entries in Alternatives.
type SupportStatement struct {
	VersionAdded   VersionDescriptor  `json:"version_added"`
	VersionRemoved VersionDescriptor  `json:"version_removed"`
	Alternatives   []SupportStatement `json:"alternatives,omitempty"`
}

// IsAlternatives reports whether the statement was list-valued. Those are
// always treated as supported.
func (s SupportStatement) IsAlternatives() bool {
	return s.Alternatives != nil
}

// MinimumVersions maps a browser id to the oldest version a project targets.
// Browsers missing from the map are not checked.
type MinimumVersions map[string]VersionDescriptor

// Pattern is tested against qualified member names; *regexp.Regexp satisfies it.
type Pattern interface {
	MatchString(s string) bool
}

// MemberDescriptor is one flattened built-in member.
type MemberDescriptor struct {
	Name          string             `json:"name"`
	Path          []string           `json:"path"`
	QualifiedName string             `json:"qualified_name"`
	MDNURL        string             `json:"mdn_url,omitempty"`
	Status        Status             `json:"status"`
	Unsupported   []UnsupportedEntry `json:"unsupported"`
}

// UnsupportedEntry names a target browser whose minimum version predates
// support for a member.
type UnsupportedEntry struct {
	Browser      string            `json:"browser"`
	VersionAdded VersionDescriptor `json:"version_added"`
	MinVersion   VersionDescriptor `json:"min_version"`
}

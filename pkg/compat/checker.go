package compat

// Checker answers whether a property name refers to a built-in that some
// target browser lacks. It is safe for concurrent use.
type Checker struct {
	index *Index
}

// NewChecker compiles tree against minVersions once. Members whose qualified
// name matches one of ignore are never reported.
func NewChecker(tree *NamespaceNode, minVersions MinimumVersions, ignore ...Pattern) *Checker {
	return &Checker{index: BuildIndex(tree, minVersions, ignore)}
}

// Check returns every built-in called name that has unsupported browsers.
// The second result is false when there is nothing to report.
func (c *Checker) Check(name string) ([]MemberDescriptor, bool) {
	return c.index.Lookup(name)
}

// Index exposes the compiled index.
func (c *Checker) Index() *Index {
	return c.index
}

// CheckAll checks each name and collects the findings into a report.
func (c *Checker) CheckAll(names []string) *CompatibilityReport {
	report := &CompatibilityReport{Issues: make([]CompatibilityIssue, 0)}
	for _, name := range names {
		members, ok := c.Check(name)
		if !ok {
			continue
		}
		for _, member := range members {
			report.Issues = append(report.Issues, issuesForMember(name, member)...)
		}
	}
	return report
}

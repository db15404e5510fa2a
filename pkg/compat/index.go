package compat

import (
	"github.com/sirupsen/logrus"
)

// Index groups unsupported members by short name. It is immutable once built.
type Index struct {
	byName map[string][]MemberDescriptor
	names  []string
}

// BuildIndex flattens every top-level entry of tree and keeps the members
// that have at least one unsupported browser and do not match an ignore
// pattern.
func BuildIndex(tree *NamespaceNode, minVersions MinimumVersions, ignore []Pattern) *Index {
	idx := &Index{byName: make(map[string][]MemberDescriptor)}
	if tree == nil {
		return idx
	}

	var members []MemberDescriptor
	for _, top := range tree.Children {
		members = append(members, Flatten(top.Name, nil, top.Node, minVersions)...)
	}

	ignored := 0
	for _, member := range members {
		if len(member.Unsupported) == 0 {
			continue
		}
		if isIgnored(member.QualifiedName, ignore) {
			ignored++
			continue
		}

		if _, ok := idx.byName[member.Name]; !ok {
			idx.names = append(idx.names, member.Name)
		}
		idx.byName[member.Name] = append(idx.byName[member.Name], member)
	}

	logrus.WithFields(logrus.Fields{
		"members":  len(members),
		"ignored":  ignored,
		"names":    len(idx.names),
		"browsers": len(minVersions),
	}).Debug("built compatibility index")

	return idx
}

func isIgnored(qualifiedName string, ignore []Pattern) bool {
	for _, pattern := range ignore {
		if pattern != nil && pattern.MatchString(qualifiedName) {
			return true
		}
	}
	return false
}

// Lookup returns every indexed member called name.
func (idx *Index) Lookup(name string) ([]MemberDescriptor, bool) {
	members, ok := idx.byName[name]
	return members, ok
}

// Names returns the indexed short names in first-seen order.
func (idx *Index) Names() []string {
	return append([]string(nil), idx.names...)
}

// Len is the number of distinct short names.
func (idx *Index) Len() int {
	return len(idx.names)
}

// Members returns all indexed descriptors, grouped by name in first-seen order.
func (idx *Index) Members() []MemberDescriptor {
	var all []MemberDescriptor
	for _, name := range idx.names {
		all = append(all, idx.byName[name]...)
	}
	return all
}

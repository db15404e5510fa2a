package compat

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsMethod reports whether a member name looks like a method or property:
// a lowercase first letter and no underscore. Symbol members ("@@iterator")
// are not handled yet and never count.
func IsMethod(name string) bool {
	if strings.HasPrefix(name, "@@") {
		return false
	}
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsLower(r) && !strings.Contains(name, "_")
}

// Flatten walks node depth-first and returns a descriptor for every
// method-like member carrying compat data. Children are emitted before the
// node's own entry. path holds the names enclosing name.
func Flatten(name string, path []string, node *NamespaceNode, minVersions MinimumVersions) []MemberDescriptor {
	if name == CompatKey || node == nil {
		return nil
	}

	nextPath := append(append(make([]string, 0, len(path)+1), path...), name)

	var result []MemberDescriptor
	for _, child := range node.Children {
		result = append(result, Flatten(child.Name, nextPath, child.Node, minVersions)...)
	}

	if IsMethod(name) && node.Compat != nil {
		result = append(result, MemberDescriptor{
			Name:          name,
			Path:          path,
			QualifiedName: strings.Join(nextPath, "."),
			MDNURL:        node.Compat.MDNURL,
			Status:        node.Compat.Status,
			Unsupported:   UnsupportedFor(node.Compat.Support, minVersions),
		})
	}

	return result
}

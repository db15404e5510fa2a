package bcd

import "github.com/depot/browsercompat/pkg/compat"

// Merge folds src into dst. Members present in both are merged recursively;
// the first compat data seen for a node wins.
func Merge(dst, src *compat.NamespaceNode) {
	if dst == nil || src == nil {
		return
	}
	if dst.Compat == nil {
		dst.Compat = src.Compat
	}

	for _, child := range src.Children {
		existing := dst.Child(child.Name)
		if existing == nil {
			dst.Children = append(dst.Children, child)
			continue
		}
		Merge(existing, child.Node)
	}
}

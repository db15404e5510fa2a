package compat

func leaf(support ...BrowserSupport) *NamespaceNode {
	return &NamespaceNode{Compat: &CompatData{Support: support}}
}

func ns(children ...NamedNode) *NamespaceNode {
	return &NamespaceNode{Children: children}
}

func child(name string, node *NamespaceNode) NamedNode {
	return NamedNode{Name: name, Node: node}
}

func added(browser string, v VersionDescriptor) BrowserSupport {
	return BrowserSupport{Browser: browser, Statement: SupportStatement{VersionAdded: v}}
}

// builtins mirrors a slice of the real dataset.
func builtins() *NamespaceNode {
	return ns(
		child("Array", &NamespaceNode{
			Compat: &CompatData{Support: SupportRecord{added("chrome", ParseVersion("1")), added("ie", ParseVersion("5.5"))}},
			Children: []NamedNode{
				child("from", leaf(added("chrome", ParseVersion("45")), added("ie", NeverSupported()))),
				child("prototype", ns(
					child("includes", leaf(added("chrome", ParseVersion("47")), added("ie", NeverSupported()), added("safari", ParseVersion("9")))),
					child("push", leaf(added("chrome", ParseVersion("1")), added("ie", ParseVersion("5.5")))),
					child("@@iterator", leaf(added("chrome", ParseVersion("38")), added("ie", NeverSupported()))),
				)),
			},
		}),
		child("String", ns(
			child("prototype", ns(
				child("includes", leaf(added("chrome", ParseVersion("41")), added("ie", NeverSupported()))),
				child("at", leaf(added("chrome", ParseVersion("92")), added("ie", NeverSupported()))),
			)),
		)),
	)
}

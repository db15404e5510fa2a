// Package bcd loads browser-compat-data JSON into a compat namespace tree.
//
// Files are decoded through yaml.v3 nodes rather than encoding/json so the
// order of browsers and members is kept as written.
package bcd

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/depot/browsercompat/pkg/compat"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// DefaultSubtree is where the JavaScript built-ins live in the dataset.
const DefaultSubtree = "javascript.builtins"

// Load parses path, which may be a single file or a directory of files.
func Load(ctx context.Context, path, subtree string) (*compat.NamespaceNode, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to inspect dataset")
	}
	if info.IsDir() {
		return ParseDir(ctx, path, subtree)
	}
	return ParseFile(path, subtree)
}

// ParseFile parses a single dataset file.
func ParseFile(path, subtree string) (*compat.NamespaceNode, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read dataset file %s", path)
	}
	defer f.Close()

	tree, err := Decode(f, subtree)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse dataset file %s", path)
	}
	return tree, nil
}

// ParseDir parses every .json file below dir and merges them. The dataset
// is published as one file per built-in, each repeating the full key path.
func ParseDir(ctx context.Context, dir, subtree string) (*compat.NamespaceNode, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.ToLower(filepath.Ext(path)) == ".json" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk dataset directory %s", dir)
	}

	trees := make([]*compat.NamespaceNode, len(paths))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tree, err := ParseFile(path, subtree)
			if err != nil {
				return err
			}
			trees[i] = tree
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	merged := &compat.NamespaceNode{}
	for _, tree := range trees {
		Merge(merged, tree)
	}

	logrus.Debugf("loaded %d dataset files from %s", len(paths), dir)
	return merged, nil
}

// Decode reads one dataset document and returns the namespace found at the
// dotted subtree path. A document without that path yields an empty tree.
func Decode(r io.Reader, subtree string) (*compat.NamespaceNode, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("dataset is empty")
		}
		return nil, err
	}

	node := &doc
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return nil, errors.Errorf("line %d: dataset root must be an object", node.Line)
	}

	for _, key := range splitSubtree(subtree) {
		node = mappingValue(node, key)
		if node == nil {
			return &compat.NamespaceNode{}, nil
		}
	}

	return convertNamespace(node)
}

func splitSubtree(subtree string) []string {
	var keys []string
	for _, key := range strings.Split(subtree, ".") {
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

func convertNamespace(node *yaml.Node) (*compat.NamespaceNode, error) {
	if node.Kind != yaml.MappingNode {
		return nil, errors.Errorf("line %d: namespace must be an object", node.Line)
	}

	ns := &compat.NamespaceNode{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		if key.Value == compat.CompatKey {
			data, err := convertCompat(value)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid %s", compat.CompatKey)
			}
			ns.Compat = data
			continue
		}

		// Only objects can be members; anything else is dataset metadata.
		if value.Kind != yaml.MappingNode {
			continue
		}

		child, err := convertNamespace(value)
		if err != nil {
			return nil, errors.Wrapf(err, "in %s", key.Value)
		}
		ns.Children = append(ns.Children, compat.NamedNode{Name: key.Value, Node: child})
	}

	return ns, nil
}

func convertCompat(node *yaml.Node) (*compat.CompatData, error) {
	if node.Kind != yaml.MappingNode {
		return nil, errors.Errorf("line %d: expected an object", node.Line)
	}

	data := &compat.CompatData{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		switch key.Value {
		case "mdn_url":
			data.MDNURL = value.Value
		case "status":
			data.Status = convertStatus(value)
		case "support":
			support, err := convertSupport(value)
			if err != nil {
				return nil, err
			}
			data.Support = support
		}
	}

	return data, nil
}

func convertStatus(node *yaml.Node) compat.Status {
	var status compat.Status
	if node.Kind != yaml.MappingNode {
		return status
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		flag, _ := strconv.ParseBool(node.Content[i+1].Value)
		switch node.Content[i].Value {
		case "experimental":
			status.Experimental = flag
		case "standard_track":
			status.StandardTrack = flag
		case "deprecated":
			status.Deprecated = flag
		}
	}
	return status
}

func convertSupport(node *yaml.Node) (compat.SupportRecord, error) {
	if node.Kind != yaml.MappingNode {
		return nil, errors.Errorf("line %d: support must be an object", node.Line)
	}

	record := make(compat.SupportRecord, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		browser, value := node.Content[i].Value, node.Content[i+1]

		var statement compat.SupportStatement
		switch value.Kind {
		case yaml.MappingNode:
			s, err := convertStatement(value)
			if err != nil {
				return nil, errors.Wrapf(err, "browser %s", browser)
			}
			statement = s
		case yaml.SequenceNode:
			statement.Alternatives = make([]compat.SupportStatement, 0, len(value.Content))
			for _, item := range value.Content {
				s, err := convertStatement(item)
				if err != nil {
					return nil, errors.Wrapf(err, "browser %s", browser)
				}
				statement.Alternatives = append(statement.Alternatives, s)
			}
		default:
			return nil, errors.Errorf("line %d: browser %s: support statement must be an object or array", value.Line, browser)
		}

		record = append(record, compat.BrowserSupport{Browser: browser, Statement: statement})
	}

	return record, nil
}

func convertStatement(node *yaml.Node) (compat.SupportStatement, error) {
	var statement compat.SupportStatement
	if node.Kind != yaml.MappingNode {
		return statement, errors.Errorf("line %d: support statement must be an object", node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		var err error
		switch key.Value {
		case "version_added":
			statement.VersionAdded, err = convertVersion(value)
		case "version_removed":
			statement.VersionRemoved, err = convertVersion(value)
		}
		if err != nil {
			return statement, errors.Wrap(err, key.Value)
		}
	}

	return statement, nil
}

func convertVersion(node *yaml.Node) (compat.VersionDescriptor, error) {
	if node.Kind != yaml.ScalarNode {
		return compat.UnknownVersion(), errors.Errorf("line %d: version must be a string, boolean or null", node.Line)
	}

	switch node.ShortTag() {
	case "!!null":
		return compat.UnknownVersion(), nil
	case "!!bool":
		supported, err := strconv.ParseBool(node.Value)
		if err != nil {
			return compat.UnknownVersion(), errors.Errorf("line %d: invalid boolean %q", node.Line, node.Value)
		}
		if supported {
			return compat.AlwaysSupported(), nil
		}
		return compat.NeverSupported(), nil
	default:
		return compat.ParseVersion(node.Value), nil
	}
}

package helpers

import (
	"context"
	"strings"

	"github.com/depot/browsercompat/pkg/bcd"
	"github.com/depot/browsercompat/pkg/compat"
	"github.com/depot/browsercompat/pkg/config"
	"github.com/depot/browsercompat/pkg/ignore"
	"github.com/depot/browsercompat/pkg/targets"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// CheckerOptions holds the flags shared by commands that compile an index.
// Empty values fall back to the config file.
type CheckerOptions struct {
	DataPath string
	Subtree  string
	Targets  []string
	Ignore   []string
}

func AddCheckerFlags(flags *pflag.FlagSet, opts *CheckerOptions) {
	flags.StringVar(&opts.DataPath, "data", "", "Path to a browser-compat-data JSON file or directory")
	flags.StringVar(&opts.Subtree, "subtree", "", "Dotted path of the built-ins inside the dataset (default \"javascript.builtins\")")
	flags.StringArrayVar(&opts.Targets, "target", nil, "Minimum browser version in BROWSER=VERSION format (repeatable)")
	flags.StringArrayVar(&opts.Ignore, "ignore", nil, "Regular expression of qualified names to ignore (repeatable)")
}

// ResolveChecker loads the dataset and compiles a checker from flags and config.
func ResolveChecker(ctx context.Context, opts CheckerOptions) (*compat.Checker, error) {
	dataPath := opts.DataPath
	if dataPath == "" {
		dataPath = config.GetDataPath()
	}
	if dataPath == "" {
		return nil, errors.New("missing dataset, use --data or set data in the config file")
	}

	subtree := opts.Subtree
	if subtree == "" {
		subtree = config.GetSubtree()
	}

	minVersions, err := resolveTargets(opts.Targets)
	if err != nil {
		return nil, err
	}
	if len(minVersions) == 0 {
		logrus.Warn("no browser targets configured, nothing will be reported")
	}

	patterns, err := ignore.Compile(append(config.GetIgnorePatterns(), opts.Ignore...))
	if err != nil {
		return nil, err
	}

	tree, err := bcd.Load(ctx, dataPath, subtree)
	if err != nil {
		return nil, err
	}

	return compat.NewChecker(tree, minVersions, patterns...), nil
}

func resolveTargets(flagTargets []string) (compat.MinimumVersions, error) {
	base, err := targets.FromMap(config.GetTargets())
	if err != nil {
		return nil, errors.Wrap(err, "invalid targets in config file")
	}

	override, err := targets.Parse(flagTargets)
	if err != nil {
		return nil, err
	}

	minVersions := targets.Merge(base, override)
	for browser, version := range minVersions {
		logrus.Debugf("target %s >= %s", browser, version)
	}
	return minVersions, nil
}

// PropertyName reduces an access expression such as "arr.includes" to the
// property name the checker is keyed by.
func PropertyName(expr string) string {
	expr = strings.TrimSpace(expr)
	if i := strings.LastIndex(expr, "."); i >= 0 {
		expr = expr[i+1:]
	}
	return strings.TrimSpace(expr)
}

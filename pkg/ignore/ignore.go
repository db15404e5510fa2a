// Package ignore compiles the user's ignore list into patterns over
// qualified member names such as "Array.prototype.includes".
package ignore

import (
	"regexp"
	"strings"

	"github.com/depot/browsercompat/pkg/compat"
	"github.com/pkg/errors"
)

// Compile turns each entry into an unanchored regular expression. Blank
// entries are skipped.
func Compile(patterns []string) ([]compat.Pattern, error) {
	compiled := make([]compat.Pattern, 0, len(patterns))
	for _, raw := range patterns {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		re, err := regexp.Compile(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid ignore pattern %q", raw)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

// Package targets builds the minimum browser version map from user input.
package targets

import (
	"fmt"
	"strings"

	"github.com/depot/browsercompat/pkg/compat"
)

// aliases maps browserslist names to dataset browser ids.
var aliases = map[string]string{
	"and_chr":  "chrome_android",
	"and_ff":   "firefox_android",
	"and_qq":   "qq_android",
	"and_uc":   "uc_android",
	"android":  "webview_android",
	"ios_saf":  "safari_ios",
	"node":     "nodejs",
	"op_mob":   "opera_android",
	"samsung":  "samsunginternet_android",
	"explorer": "ie",
}

// BrowserID normalises a browser name to its dataset id.
func BrowserID(name string) string {
	id := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := aliases[id]; ok {
		return alias
	}
	return id
}

// Parse reads BROWSER=VERSION assignments such as "chrome=90".
func Parse(assignments []string) (compat.MinimumVersions, error) {
	versions := make(compat.MinimumVersions, len(assignments))
	for _, raw := range assignments {
		parts := strings.SplitN(raw, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid target %q, expected BROWSER=VERSION", raw)
		}

		if err := set(versions, parts[0], parts[1]); err != nil {
			return nil, fmt.Errorf("invalid target %q, %w", raw, err)
		}
	}

	return versions, nil
}

// FromMap converts a browser -> version mapping, as read from a config file.
func FromMap(m map[string]string) (compat.MinimumVersions, error) {
	versions := make(compat.MinimumVersions, len(m))
	for browser, version := range m {
		if err := set(versions, browser, version); err != nil {
			return nil, fmt.Errorf("invalid target %s: %w", browser, err)
		}
	}
	return versions, nil
}

// Merge returns base overlaid with override.
func Merge(base, override compat.MinimumVersions) compat.MinimumVersions {
	merged := make(compat.MinimumVersions, len(base)+len(override))
	for browser, version := range base {
		merged[browser] = version
	}
	for browser, version := range override {
		merged[browser] = version
	}
	return merged
}

func set(versions compat.MinimumVersions, browser, version string) error {
	id := BrowserID(browser)
	if id == "" {
		return fmt.Errorf("browser cannot be empty")
	}

	version = strings.TrimSpace(version)
	if version == "" {
		return fmt.Errorf("version cannot be empty")
	}

	versions[id] = compat.ParseVersion(version)
	return nil
}

package compat

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	"github.com/hashicorp/go-version"
)

// VersionKind identifies which of the four forms a VersionDescriptor takes.
type VersionKind int

const (
	// Unknown is the zero value: no data, treated like Never when ordering.
	Unknown VersionKind = iota
	// Always means supported, exact version unknown or irrelevant.
	Always
	// Concrete carries a version string such as "11.1".
	Concrete
	// Never means the browser has never shipped the feature.
	Never
)

func (k VersionKind) String() string {
	switch k {
	case Always:
		return "always"
	case Concrete:
		return "concrete"
	case Never:
		return "never"
	default:
		return "unknown"
	}
}

// VersionDescriptor is the version a browser gained a feature in, or a
// minimum version a target requires.
type VersionDescriptor struct {
	Kind    VersionKind
	Version string
}

func AlwaysSupported() VersionDescriptor { return VersionDescriptor{Kind: Always} }
func NeverSupported() VersionDescriptor { return VersionDescriptor{Kind: Never} }
func UnknownVersion() VersionDescriptor { return VersionDescriptor{Kind: Unknown} }

// ParseVersion wraps a version string. An empty string carries no information.
func ParseVersion(s string) VersionDescriptor {
	if s == "" {
		return UnknownVersion()
	}
	return VersionDescriptor{Kind: Concrete, Version: s}
}

// Normalize resolves the named versions used by the dataset: "all" becomes
// "0" and "preview" counts as never shipped to a stable release.
func (v VersionDescriptor) Normalize() VersionDescriptor {
	if v.Kind != Concrete {
		return v
	}
	switch v.Version {
	case "all":
		return VersionDescriptor{Kind: Concrete, Version: "0"}
	case "preview":
		return NeverSupported()
	case "":
		return UnknownVersion()
	}
	return v
}

// IsRequirement reports whether v, used as a minimum, constrains anything.
func (v VersionDescriptor) IsRequirement() bool {
	return v.Normalize().Kind == Concrete
}

func (v VersionDescriptor) String() string {
	switch v.Kind {
	case Always:
		return "true"
	case Concrete:
		return v.Version
	case Never:
		return "false"
	default:
		return "unknown"
	}
}

func (v VersionDescriptor) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case Always:
		return []byte("true"), nil
	case Never:
		return []byte("false"), nil
	case Concrete:
		return json.Marshal(v.Version)
	default:
		return []byte("null"), nil
	}
}

func (v *VersionDescriptor) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case nil:
		*v = UnknownVersion()
	case bool:
		if t {
			*v = AlwaysSupported()
		} else {
			*v = NeverSupported()
		}
	case string:
		*v = ParseVersion(t)
	default:
		return fmt.Errorf("invalid version descriptor %s", string(data))
	}
	return nil
}

// ExceedsMinimum reports whether a feature added in versionAdded is missing
// from a browser pinned at minVersion. The order used is
// Always < Concrete < Never == Unknown.
func ExceedsMinimum(versionAdded, minVersion VersionDescriptor) bool {
	minVersion = minVersion.Normalize()
	if minVersion.Kind != Concrete {
		return false
	}

	versionAdded = versionAdded.Normalize()
	switch versionAdded.Kind {
	case Always:
		return false
	case Never, Unknown:
		// No usable data is reported the same way as never shipped.
		return true
	}

	return coerce(versionAdded.Version).GreaterThan(coerce(minVersion.Version))
}

// Compare orders two descriptors by Always < Concrete < Never == Unknown,
// returning -1, 0 or 1.
func Compare(a, b VersionDescriptor) int {
	a, b = a.Normalize(), b.Normalize()
	ra, rb := rank(a.Kind), rank(b.Kind)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	if a.Kind != Concrete {
		return 0
	}
	return coerce(a.Version).Compare(coerce(b.Version))
}

func rank(k VersionKind) int {
	switch k {
	case Always:
		return 0
	case Concrete:
		return 1
	default:
		return 2
	}
}

var coerceRegexp = regexp.MustCompile(`(\d{1,16})(?:\.(\d{1,16}))?(?:\.(\d{1,16}))?`)

var zeroVersion = version.Must(version.NewVersion("0.0.0"))

// coerce extracts the first major[.minor[.patch]] run from s. Qualifiers
// and leading text such as "≤" are dropped; strings without digits become
// 0.0.0.
func coerce(s string) *version.Version {
	m := coerceRegexp.FindStringSubmatch(s)
	if m == nil {
		return zeroVersion
	}

	segments := [3]uint64{}
	for i := 0; i < 3; i++ {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.ParseUint(m[i+1], 10, 64)
		if err != nil {
			return zeroVersion
		}
		segments[i] = n
	}

	v, err := version.NewVersion(fmt.Sprintf("%d.%d.%d", segments[0], segments[1], segments[2]))
	if err != nil {
		return zeroVersion
	}
	return v
}

package compat

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExceedsMinimum(t *testing.T) {
	tests := []struct {
		name  string
		added VersionDescriptor
		min   VersionDescriptor
		want  bool
	}{
		{"newer version", ParseVersion("2.0"), ParseVersion("1.5"), true},
		{"older version", ParseVersion("1.5"), ParseVersion("2.0"), false},
		{"equal versions", ParseVersion("1.0"), ParseVersion("1.0"), false},
		{"missing components are zero", ParseVersion("11"), ParseVersion("11.0.0"), false},
		{"minor component", ParseVersion("11.1"), ParseVersion("11"), true},
		{"patch with qualifier", ParseVersion("12.0.1-beta"), ParseVersion("12"), true},
		{"ranged version below minimum", ParseVersion("≤37"), ParseVersion("40"), false},
		{"ranged version above minimum", ParseVersion("≤37"), ParseVersion("30"), true},
		{"all is lowest concrete", ParseVersion("all"), ParseVersion("1"), false},
		{"preview never satisfies", ParseVersion("preview"), ParseVersion("100"), true},
		{"always supported", AlwaysSupported(), ParseVersion("1"), false},
		{"never supported", NeverSupported(), ParseVersion("1"), true},
		{"unknown support", UnknownVersion(), ParseVersion("1"), true},
		{"no minimum", NeverSupported(), UnknownVersion(), false},
		{"preview minimum", NeverSupported(), ParseVersion("preview"), false},
		{"empty minimum", ParseVersion("99"), ParseVersion(""), false},
		{"all minimum", ParseVersion("1"), ParseVersion("all"), true},
		{"always against all minimum", AlwaysSupported(), ParseVersion("all"), false},
		{"garbage added coerces to zero", ParseVersion("abc"), ParseVersion("1"), false},
		{"garbage minimum coerces to zero", ParseVersion("1"), ParseVersion("abc"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExceedsMinimum(tt.added, tt.min))
		})
	}
}

func TestExceedsMinimumMonotonic(t *testing.T) {
	versions := []string{"0", "1", "1.5", "2", "9", "11.1", "11.1.2", "80", "90"}
	for i, lower := range versions {
		for _, higher := range versions[i+1:] {
			assert.True(t, ExceedsMinimum(ParseVersion(higher), ParseVersion(lower)), "%s > %s", higher, lower)
			assert.False(t, ExceedsMinimum(ParseVersion(lower), ParseVersion(higher)), "%s > %s", lower, higher)
		}
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, ParseVersion("0"), ParseVersion("all").Normalize())
	assert.Equal(t, NeverSupported(), ParseVersion("preview").Normalize())
	assert.Equal(t, ParseVersion("11.1"), ParseVersion("11.1").Normalize())
	assert.Equal(t, AlwaysSupported(), AlwaysSupported().Normalize())
	assert.Equal(t, UnknownVersion(), VersionDescriptor{Kind: Concrete}.Normalize())
}

func TestCompare(t *testing.T) {
	assert.Equal(t, -1, Compare(AlwaysSupported(), ParseVersion("0")))
	assert.Equal(t, -1, Compare(ParseVersion("9"), ParseVersion("11.1")))
	assert.Equal(t, 1, Compare(ParseVersion("11.1"), ParseVersion("9")))
	assert.Equal(t, 0, Compare(ParseVersion("11"), ParseVersion("11.0")))
	assert.Equal(t, -1, Compare(ParseVersion("1000"), NeverSupported()))
	assert.Equal(t, 0, Compare(NeverSupported(), UnknownVersion()))
	assert.Equal(t, 0, Compare(ParseVersion("preview"), NeverSupported()))
}

func TestVersionDescriptorJSON(t *testing.T) {
	entry := UnsupportedEntry{Browser: "firefox", VersionAdded: NeverSupported(), MinVersion: ParseVersion("10")}

	data, err := json.Marshal(entry)
	require.NoError(t, err)
	assert.JSONEq(t, `{"browser":"firefox","version_added":false,"min_version":"10"}`, string(data))

	var decoded []VersionDescriptor
	require.NoError(t, json.Unmarshal([]byte(`[true, false, null, "11.1"]`), &decoded))
	assert.Equal(t, []VersionDescriptor{AlwaysSupported(), NeverSupported(), UnknownVersion(), ParseVersion("11.1")}, decoded)

	var bad VersionDescriptor
	assert.Error(t, json.Unmarshal([]byte(`12`), &bad))
}

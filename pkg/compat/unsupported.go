package compat

// UnsupportedFor returns the browsers in record whose configured minimum
// version predates support, in record order. List-valued statements are
// skipped.
func UnsupportedFor(record SupportRecord, minVersions MinimumVersions) []UnsupportedEntry {
	entries := make([]UnsupportedEntry, 0)

	for _, support := range record {
		if support.Statement.IsAlternatives() {
			continue
		}

		minVersion := minVersions[support.Browser]
		if !ExceedsMinimum(support.Statement.VersionAdded, minVersion) {
			continue
		}

		entries = append(entries, UnsupportedEntry{
			Browser:      support.Browser,
			VersionAdded: support.Statement.VersionAdded,
			MinVersion:   minVersion,
		})
	}

	return entries
}

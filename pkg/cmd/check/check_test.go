package check

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/depot/browsercompat/pkg/compat"
	"github.com/depot/browsercompat/pkg/helpers"
)

const dataset = `{
  "javascript": {
    "builtins": {
      "Array": {
        "prototype": {
          "includes": {"__compat": {"support": {"chrome": {"version_added": "47"}, "ie": {"version_added": false}}}},
          "push": {"__compat": {"support": {"chrome": {"version_added": "1"}, "ie": {"version_added": "5.5"}}}}
        }
      },
      "String": {
        "prototype": {
          "includes": {"__compat": {"support": {"chrome": {"version_added": "41"}, "ie": {"version_added": false}}}}
        }
      }
    }
  }
}`

func writeDataset(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bcd.json")
	if err := os.WriteFile(path, []byte(dataset), 0o644); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}
	return path
}

func checkerOptions(path string) helpers.CheckerOptions {
	return helpers.CheckerOptions{
		DataPath: path,
		Subtree:  "javascript.builtins",
		Targets:  []string{"chrome=45", "ie=11"},
	}
}

func TestNewCmdCheckFlags(t *testing.T) {
	cmd := NewCmdCheck()

	flagNames := []string{"data", "subtree", "target", "ignore", "format", "exit-code"}
	for _, flagName := range flagNames {
		if cmd.Flags().Lookup(flagName) == nil {
			t.Fatalf("expected --%s flag to exist", flagName)
		}
	}
}

func TestRunCheckText(t *testing.T) {
	var stdout bytes.Buffer
	err := runCheck(context.Background(), checkOptions{
		checker: checkerOptions(writeDataset(t)),
		format:  "text",
		names:   []string{"arr.includes", "push", "includes"},
		stdout:  &stdout,
	})
	if err != nil {
		t.Fatalf("runCheck returned error: %v", err)
	}

	out := stdout.String()
	for _, want := range []string{
		"Array.prototype.includes is not supported in chrome 45 (added in 47)",
		"Array.prototype.includes is not supported in ie 11",
		"String.prototype.includes is not supported in ie 11",
		"3 issues found",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "push") {
		t.Fatalf("expected push to be supported, got:\n%s", out)
	}
}

func TestRunCheckStdinJSON(t *testing.T) {
	var stdout bytes.Buffer
	err := runCheck(context.Background(), checkOptions{
		checker: checkerOptions(writeDataset(t)),
		format:  "json",
		stdin:   strings.NewReader("# property accesses\nincludes\n\npush\n"),
		stdout:  &stdout,
	})
	if err != nil {
		t.Fatalf("runCheck returned error: %v", err)
	}

	var report compat.CompatibilityReport
	if err := json.Unmarshal(stdout.Bytes(), &report); err != nil {
		t.Fatalf("failed to decode JSON output: %v\n%s", err, stdout.String())
	}
	if len(report.Issues) != 3 {
		t.Fatalf("expected three issues, got %d", len(report.Issues))
	}
	if report.Issues[1].VersionAdded != compat.NeverSupported() {
		t.Fatalf("expected version_added false, got %v", report.Issues[1].VersionAdded)
	}
}

func TestRunCheckCSV(t *testing.T) {
	var stdout bytes.Buffer
	err := runCheck(context.Background(), checkOptions{
		checker: checkerOptions(writeDataset(t)),
		format:  "csv",
		names:   []string{"includes"},
		stdout:  &stdout,
	})
	if err != nil {
		t.Fatalf("runCheck returned error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header and three rows, got %d lines:\n%s", len(lines), stdout.String())
	}
	if lines[2] != "includes,Array.prototype.includes,ie,missing,false,11" {
		t.Fatalf("unexpected row %q", lines[2])
	}
}

func TestRunCheckExitCode(t *testing.T) {
	opts := checkOptions{
		checker:  checkerOptions(writeDataset(t)),
		format:   "text",
		exitCode: true,
		names:    []string{"includes"},
		stdout:   &bytes.Buffer{},
	}
	if err := runCheck(context.Background(), opts); err == nil {
		t.Fatal("expected error when issues are found with --exit-code")
	}

	opts.names = []string{"push"}
	if err := runCheck(context.Background(), opts); err != nil {
		t.Fatalf("expected no error without issues, got: %v", err)
	}
}

func TestRunCheckUnknownFormat(t *testing.T) {
	err := runCheck(context.Background(), checkOptions{format: "xml", names: []string{"at"}})
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("expected unknown format error, got: %v", err)
	}
}

func TestNormalizeNames(t *testing.T) {
	got := normalizeNames([]string{"a.includes", "includes", "", "x.at", "."})
	want := []string{"includes", "at"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("got %v, want %v", got, want)
	}
}

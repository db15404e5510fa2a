package check

import (
	"bufio"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/depot/browsercompat/pkg/compat"
	"github.com/depot/browsercompat/pkg/helpers"
	"github.com/mgutz/ansi"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type checkOptions struct {
	checker  helpers.CheckerOptions
	format   string
	exitCode bool
	color    bool
	names    []string
	stdin    io.Reader
	stdout   io.Writer
}

func NewCmdCheck() *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:   "check [property...]",
		Short: "Report built-in members unsupported by the target browsers",
		Long: `Look up property names (or access expressions such as "arr.includes") and report
every built-in with that name that one of the target browsers does not support.

When no arguments are given, names are read from stdin, one per line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runOpts := opts
			runOpts.names = args
			runOpts.stdin = cmd.InOrStdin()
			runOpts.stdout = cmd.OutOrStdout()
			runOpts.color = runOpts.format == "text" && helpers.IsTerminal()
			return runCheck(cmd.Context(), runOpts)
		},
	}

	flags := cmd.Flags()
	helpers.AddCheckerFlags(flags, &opts.checker)
	flags.StringVar(&opts.format, "format", "text", "Output format (text, json, csv)")
	flags.BoolVar(&opts.exitCode, "exit-code", false, "Exit with an error when issues are found")

	return cmd
}

func runCheck(ctx context.Context, opts checkOptions) error {
	out := opts.stdout
	if out == nil {
		out = os.Stdout
	}

	switch opts.format {
	case "text", "json", "csv":
	default:
		return errors.Errorf("unknown format %q, expected text, json or csv", opts.format)
	}

	names := opts.names
	if len(names) == 0 {
		in := opts.stdin
		if in == nil {
			in = os.Stdin
		}
		var err error
		names, err = readNames(in)
		if err != nil {
			return err
		}
	}
	names = normalizeNames(names)

	checker, err := helpers.ResolveChecker(ctx, opts.checker)
	if err != nil {
		return err
	}

	report := checker.CheckAll(names)

	switch opts.format {
	case "json":
		err = writeJSON(out, report)
	case "csv":
		err = writeCSV(out, report)
	default:
		err = writeText(out, report, opts.color)
	}
	if err != nil {
		return err
	}

	if opts.exitCode && len(report.Issues) > 0 {
		return errors.New(compat.SummarizeReport(report))
	}
	return nil
}

func readNames(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read property names")
	}
	return names, nil
}

func normalizeNames(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	names := make([]string, 0, len(raw))
	for _, expr := range raw {
		name := helpers.PropertyName(expr)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

func writeText(w io.Writer, report *compat.CompatibilityReport, color bool) error {
	paint := func(s, style string) string {
		if !color {
			return s
		}
		return ansi.Color(s, style)
	}

	for _, issue := range report.Issues {
		level := paint(issue.Level.String(), levelColor(issue.Level))
		if _, err := fmt.Fprintf(w, "%s: %s [%s]\n", paint(issue.Property, "cyan"), issue.Message, level); err != nil {
			return err
		}
	}

	summary := compat.SummarizeReport(report)
	if compat.HasCriticalIssues(report) {
		summary = paint(summary, "yellow")
	}
	_, err := fmt.Fprintln(w, summary)
	return err
}

func levelColor(level compat.SupportLevel) string {
	switch level {
	case compat.Unsupported, compat.Missing:
		return "red"
	default:
		return "yellow"
	}
}

func writeJSON(w io.Writer, report *compat.CompatibilityReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func writeCSV(w io.Writer, report *compat.CompatibilityReport) error {
	cw := csv.NewWriter(w)
	if len(report.Issues) > 0 {
		if err := cw.Write([]string{"Property", "Qualified Name", "Browser", "Level", "Version Added", "Min Version"}); err != nil {
			return err
		}
	}

	for _, issue := range report.Issues {
		row := []string{issue.Property, issue.QualifiedName, issue.Browser, issue.Level.String(), issue.VersionAdded.String(), issue.MinVersion.String()}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Lists every built-in member the target browsers do not fully support.
package list

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/depot/browsercompat/pkg/compat"
	"github.com/depot/browsercompat/pkg/helpers"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

type listOptions struct {
	checker helpers.CheckerOptions
	format  string
	styled  bool
	stdout  io.Writer
}

func NewCmdList() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all built-ins with unsupported target browsers",
		RunE: func(cmd *cobra.Command, args []string) error {
			runOpts := opts
			runOpts.stdout = cmd.OutOrStdout()
			if runOpts.format == "" {
				if helpers.IsTerminal() {
					runOpts.format = "table"
					runOpts.styled = true
				} else {
					runOpts.format = "csv"
				}
			}
			return runList(cmd.Context(), runOpts)
		},
	}

	flags := cmd.Flags()
	helpers.AddCheckerFlags(flags, &opts.checker)
	flags.StringVar(&opts.format, "format", "", "Output format (table, csv, json)")

	return cmd
}

func runList(ctx context.Context, opts listOptions) error {
	out := opts.stdout
	if out == nil {
		out = os.Stdout
	}

	switch opts.format {
	case "table", "csv", "json", "":
	default:
		return errors.Errorf("unknown format %q, expected table, csv or json", opts.format)
	}

	checker, err := helpers.ResolveChecker(ctx, opts.checker)
	if err != nil {
		return err
	}

	members := sortedMembers(checker.Index())

	switch opts.format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(members)
	case "csv":
		return writeCSV(out, members)
	default:
		return writeTable(out, members, opts.styled)
	}
}

// sortedMembers orders the index by short name, keeping dataset order
// within each name.
func sortedMembers(idx *compat.Index) []compat.MemberDescriptor {
	byName := make(map[string][]compat.MemberDescriptor, idx.Len())
	for _, name := range idx.Names() {
		byName[name], _ = idx.Lookup(name)
	}

	names := maps.Keys(byName)
	slices.Sort(names)

	members := make([]compat.MemberDescriptor, 0, len(names))
	for _, name := range names {
		members = append(members, byName[name]...)
	}
	return members
}

func formatBrowsers(entries []compat.UnsupportedEntry) string {
	parts := make([]string, 0, len(entries))
	for _, entry := range entries {
		parts = append(parts, fmt.Sprintf("%s %s (min %s)", entry.Browser, entry.VersionAdded, entry.MinVersion))
	}
	return strings.Join(parts, ", ")
}

func writeTable(w io.Writer, members []compat.MemberDescriptor, styled bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	header := "NAME\tQUALIFIED NAME\tUNSUPPORTED"
	if styled {
		header = headerStyle.Render(header)
	}
	fmt.Fprintln(tw, header)

	for _, member := range members {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", member.Name, member.QualifiedName, formatBrowsers(member.Unsupported))
	}

	return tw.Flush()
}

func writeCSV(w io.Writer, members []compat.MemberDescriptor) error {
	cw := csv.NewWriter(w)
	if len(members) > 0 {
		if err := cw.Write([]string{"Name", "Qualified Name", "Browser", "Version Added", "Min Version"}); err != nil {
			return err
		}
	}

	for _, member := range members {
		for _, entry := range member.Unsupported {
			row := []string{member.Name, member.QualifiedName, entry.Browser, entry.VersionAdded.String(), entry.MinVersion.String()}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

package version

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

func NewCmdVersion(version, buildDate string) *cobra.Command {
	cmd := &cobra.Command{
		Use:    "version",
		Short:  "Print the browsercompat version",
		Hidden: true,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), Format(version, buildDate))
		},
	}
	return cmd
}

func Format(version, buildDate string) string {
	version = strings.TrimPrefix(version, "v")

	if buildDate != "" {
		version = fmt.Sprintf("%s (%s)", version, buildDate)
	}

	return fmt.Sprintf("browsercompat version %s\n%s\n", version, changelogURL(version))
}

var releaseRegexp = regexp.MustCompile(`^v?\d+\.\d+\.\d+(-[\w.]+)?$`)

func changelogURL(version string) string {
	path := "https://github.com/depot/browsercompat"
	version = strings.SplitN(version, " ", 2)[0]
	if !releaseRegexp.MatchString(version) {
		return fmt.Sprintf("%s/releases/latest", path)
	}
	return fmt.Sprintf("%s/releases/tag/v%s", path, strings.TrimPrefix(version, "v"))
}

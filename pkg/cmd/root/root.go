package root

import (
	"github.com/spf13/cobra"

	checkCmd "github.com/depot/browsercompat/pkg/cmd/check"
	"github.com/depot/browsercompat/pkg/cmd/list"
	versionCmd "github.com/depot/browsercompat/pkg/cmd/version"
	"github.com/depot/browsercompat/pkg/config"
	"github.com/depot/browsercompat/pkg/debuglog"
)

func NewCmdRoot(version, buildDate string) *cobra.Command {
	var configPath string
	var debug bool

	var cmd = &cobra.Command{
		Use:          "browsercompat <command> [flags]",
		Short:        "Check JavaScript built-ins against target browser versions",
		SilenceUsage: true,

		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Usage()
		},

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				debuglog.Enable()
			}
			if err := config.NewConfig(configPath); err != nil {
				return err
			}
			debuglog.Log("data=%q subtree=%q", config.GetDataPath(), config.GetSubtree())
			return nil
		},
	}

	formattedVersion := versionCmd.Format(version, buildDate)
	cmd.SetVersionTemplate(formattedVersion)
	cmd.Version = formattedVersion
	cmd.Flags().Bool("version", false, "Print the version and exit")

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default $XDG_CONFIG_HOME/browsercompat/config.yaml)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	// Child commands
	cmd.AddCommand(checkCmd.NewCmdCheck())
	cmd.AddCommand(list.NewCmdList())
	cmd.AddCommand(versionCmd.NewCmdVersion(version, buildDate))

	return cmd
}

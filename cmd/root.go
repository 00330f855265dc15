package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ndarilek/tma/internal/config"
	"github.com/ndarilek/tma/internal/logging"
	"github.com/ndarilek/tma/internal/project"
)

func SetVersionInfo(version, commit string) {
	rootCmd.Version = fmt.Sprintf("%s (%s)", version, commit)
}

var (
	flagConfig  string
	flagKill    bool
	flagDryRun  bool
	flagVerbose int
	flagHost    string
)

var rootCmd = &cobra.Command{
	Use:   "tma",
	Short: "Start tmux workspaces from a project file",
	Long: `tma reads a project file describing a tmux session (windows, panes,
working directories, startup commands) and builds that session, then
attaches to it. Run it again to reattach.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logging.Setup(flagVerbose)

		settings, err := config.Load()
		if err != nil {
			return err
		}
		runner, err := resolveRunner(flagHost, settings)
		if err != nil {
			return err
		}

		cfg, err := project.Load(flagConfig)
		if err != nil {
			return err
		}

		opts := project.Options{DryRun: flagDryRun, Log: log}
		if flagKill {
			return project.Kill(cfg, runner, opts)
		}
		return project.Start(cfg, runner, opts)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", project.DefaultFile, "project file to read")
	rootCmd.Flags().BoolVarP(&flagKill, "kill", "k", false, "kill the project's session instead of starting it")
	rootCmd.Flags().BoolVarP(&flagDryRun, "dry-run", "n", false, "print the tmux commands without running them")
	rootCmd.Flags().StringVarP(&flagHost, "host", "H", "", "run against a remote host from the config file")
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "log more (-v info, -vv debug)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

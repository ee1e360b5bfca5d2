// Package cli implements the fleet command line tool.
package cli

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type rootOpts struct {
	cfgFile string
}

var longRootCmdDescription = `fleet services the vehicles of a roster file or of a local database.

Vehicles can be narrowed down by speed class and by electrification,
and they can be read through different containers,
the servicing itself doesn't depend on where the vehicles are kept.
`

// NewRootCmd builds the fleet command tree.
// Every call has its own configuration registry, so commands can be built and run side by side.
func NewRootCmd() *cobra.Command {
	var (
		opts = &rootOpts{}
		v    = viper.New()
	)

	rootCmd := &cobra.Command{
		Use:           "fleet",
		Short:         "Service a fleet of vehicles.",
		Long:          longRootCmdDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, opts.cfgFile)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file of fleet (default is ./fleet.yaml when present)")
	flags.String(keyLogLevel, "info", "log level, one of panic, fatal, error, warn, info, debug, trace")
	flags.String(keyDB, "fleet.db", "path of the local vehicle database")
	flags.String(keyRoster, "", "path of a YAML roster file")

	for _, key := range []string{keyLogLevel, keyDB, keyRoster} {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(NewServiceCmd(v), NewImportCmd(v))
	return rootCmd
}

// Execute runs the fleet command with the process arguments.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logrus.Errorf("fleet: %v", err)
		os.Exit(1)
	}
}

package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/likecoin/testnetify/x/testnetify/client/cli"
)

const (
	flagLogLevel  = "log_level"
	flagLogFormat = "log_format"
)

// NewRootCmd creates the testnetify root command: it mutates a genesis file
// itself and carries the helper subcommands.
func NewRootCmd() *cobra.Command {
	return newRootCmd(cli.NewContext())
}

func newRootCmd(clientCtx *cli.Context) *cobra.Command {
	rootCmd := cli.GetTestnetifyCmd(clientCtx)

	rootCmd.PersistentFlags().String(cli.FlagConfig, "", "Config file (yaml, toml or json) overriding the defaults")
	rootCmd.PersistentFlags().String(flagLogLevel, zerolog.InfoLevel.String(), "The logging level (trace|debug|info|warn|error|fatal|panic)")
	rootCmd.PersistentFlags().String(flagLogFormat, logFormatPlain, "The logging format (json|plain)")
	if err := clientCtx.Viper.BindPFlag(cli.FlagConfig, rootCmd.PersistentFlags().Lookup(cli.FlagConfig)); err != nil {
		panic(err)
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		logLevel, err := cmd.Flags().GetString(flagLogLevel)
		if err != nil {
			return err
		}
		logFormat, err := cmd.Flags().GetString(flagLogFormat)
		if err != nil {
			return err
		}
		logger, err := NewLogger(cmd.ErrOrStderr(), logLevel, logFormat)
		if err != nil {
			return err
		}
		clientCtx.Logger = logger
		return nil
	}

	rootCmd.AddCommand(cli.GetDiffCmd(clientCtx))
	return rootCmd
}

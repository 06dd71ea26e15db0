package cli

import (
	"fmt"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/spf13/cobra"
	tmos "github.com/tendermint/tendermint/libs/os"
	"gopkg.in/yaml.v2"

	"github.com/likecoin/testnetify/x/testnetify/daemon"
	"github.com/likecoin/testnetify/x/testnetify/keeper"
	"github.com/likecoin/testnetify/x/testnetify/types"
)

// GetTestnetifyCmd returns the command mutating a genesis file in place.
func GetTestnetifyCmd(clientCtx *Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "testnetify [genesis-file]",
		Short: "Turn an exported mainnet genesis into a testnet genesis controlled by the local node",
		Long: fmt.Sprintf(`Turn an exported mainnet genesis into a testnet genesis controlled by the local node.

A validator that is not jailed and has a delegator whose only delegation is to it is selected.
Its consensus identity is replaced by the local node's (as reported by the daemon) and the
delegator by the configured operator account, which then receives enough stake for a
majority of the voting power. The chain id and governance voting period are replaced too.

The file is edited in place; the original is kept as [genesis-file]%s.
`, types.BackupSuffix),
		Example:      "testnetify ~/.liked/config/genesis.json --config testnet.yaml",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(clientCtx.Viper)
			if err != nil {
				return err
			}
			dryRun, err := cmd.Flags().GetBool(FlagDryRun)
			if err != nil {
				return err
			}
			reportPath, err := cmd.Flags().GetString(FlagReport)
			if err != nil {
				return err
			}

			converter := daemon.NewConverter(clientCtx.Runner, cfg, clientCtx.Logger)
			k := keeper.NewKeeper(cfg, converter, clientCtx.Logger)

			report, err := k.TestnetifyFile(args[0], dryRun)
			if err != nil {
				return err
			}
			if reportPath != "" {
				if err := WriteReport(reportPath, report); err != nil {
					return err
				}
			}

			clientCtx.Logger.Info("genesis testnetified",
				"chain_id", report.ChainID,
				"validator", report.ValidatorMoniker,
				"delegator", report.Delegator,
				"changes", len(report.Changes),
			)
			return nil
		},
	}

	cmd.Flags().String(FlagHome, "", "The daemon's home directory, passed to it as --home")
	cmd.Flags().String(FlagReport, "", "Write a YAML report of every change to this file")
	cmd.Flags().Bool(FlagDryRun, false, "Run every step without writing the genesis file (the backup is still written)")

	if err := clientCtx.Viper.BindPFlag(KeyHome, cmd.Flags().Lookup(FlagHome)); err != nil {
		panic(err)
	}
	return cmd
}

// WriteReport writes the report as YAML
func WriteReport(path string, report types.Report) error {
	bz, err := yaml.Marshal(report)
	if err != nil {
		return err
	}
	if err := tmos.WriteFile(path, bz, 0o644); err != nil {
		return sdkerrors.Wrapf(err, "write report %s", path)
	}
	return nil
}

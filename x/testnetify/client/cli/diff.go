package cli

import (
	"fmt"
	"os"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/likecoin/testnetify/x/testnetify/types"
)

// GetDiffCmd returns the command listing the values that differ between two genesis files.
func GetDiffCmd(clientCtx *Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff [original-genesis] [genesis]",
		Short: "List every value that differs between two genesis files",
		Long: fmt.Sprintf(`List every value that differs between two genesis files, e.g. a testnetified
genesis and its %s backup, as YAML.`, types.BackupSuffix),
		Example:      "testnetify diff genesis.json.bak genesis.json",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			pathsOnly, err := cmd.Flags().GetBool(FlagPathsOnly)
			if err != nil {
				return err
			}

			docs := make([]*types.Document, len(args))
			for i, path := range args {
				bz, err := os.ReadFile(path)
				if err != nil {
					return sdkerrors.Wrapf(err, "read %s", path)
				}
				if docs[i], err = types.NewDocument(bz); err != nil {
					return sdkerrors.Wrap(err, path)
				}
			}

			changes := types.DiffDocuments(docs[0].Bytes(), docs[1].Bytes())
			clientCtx.Logger.Info("compared genesis files", "from", args[0], "to", args[1], "changes", len(changes))

			out := cmd.OutOrStdout()
			if pathsOnly {
				for _, c := range changes {
					fmt.Fprintln(out, c.Path)
				}
				return nil
			}
			if len(changes) == 0 {
				return nil
			}
			bz, err := yaml.Marshal(changes)
			if err != nil {
				return err
			}
			_, err = out.Write(bz)
			return err
		},
	}

	cmd.Flags().Bool(FlagPathsOnly, false, "Only print the paths of the differing values")
	return cmd
}

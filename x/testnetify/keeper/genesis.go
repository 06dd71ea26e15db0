package keeper

import (
	"os"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	tmos "github.com/tendermint/tendermint/libs/os"

	"github.com/likecoin/testnetify/x/testnetify/types"
)

// ReadGenesis loads the genesis document at path
func (k Keeper) ReadGenesis(path string) (*types.Document, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, sdkerrors.Wrapf(err, "read genesis %s", path)
	}
	doc, err := types.NewDocument(bz)
	if err != nil {
		return nil, sdkerrors.Wrap(err, path)
	}
	k.Logger().Info("loaded genesis", "path", path, "bytes", len(bz))
	return doc, nil
}

// BackupGenesis copies the genesis file next to itself with the backup suffix
// and returns the backup path. An existing backup is overwritten.
func (k Keeper) BackupGenesis(path string) (string, error) {
	backup := path + types.BackupSuffix
	if tmos.FileExists(backup) {
		k.Logger().Info("overwriting existing backup", "path", backup)
	}
	if err := tmos.CopyFile(path, backup); err != nil {
		return "", sdkerrors.Wrapf(err, "backup genesis to %s", backup)
	}
	k.Logger().Info("backed up genesis", "path", backup)
	return backup, nil
}

// WriteGenesis rewrites the genesis file in place, keeping its permission bits
func (k Keeper) WriteGenesis(path string, doc *types.Document) error {
	mode := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}
	if err := tmos.WriteFile(path, doc.Bytes(), mode); err != nil {
		return sdkerrors.Wrapf(err, "write genesis %s", path)
	}
	k.Logger().Info("wrote genesis", "path", path, "bytes", len(doc.Bytes()))
	return nil
}

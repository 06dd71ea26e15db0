package keeper

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/likecoin/testnetify/x/testnetify/types"
)

// UpdateChainID sets the chain id of the testnet
func (k Keeper) UpdateChainID(doc *types.Document) error {
	cur, err := doc.MustGet(types.PathChainID)
	if err != nil {
		return err
	}
	if err := doc.SetString(types.PathChainID, k.cfg.ChainID); err != nil {
		return err
	}
	k.Logger().Info("replaced chain-id", "from", cur.String(), "to", k.cfg.ChainID)
	return nil
}

// UpdateVotingPeriod shortens the governance voting period. Both the gov v1beta1
// voting_params and the gov v1 params layouts are patched where present.
func (k Keeper) UpdateVotingPeriod(doc *types.Document) error {
	period := k.cfg.VotingPeriodString()
	updated := 0
	for _, path := range []string{types.PathGovVotingPeriod, types.PathGovParamsVotingPeriod} {
		cur := doc.Get(path)
		if !cur.Exists() {
			continue
		}
		if err := doc.SetString(path, period); err != nil {
			return err
		}
		k.Logger().Info("replaced voting period", "path", path, "from", cur.String(), "to", period)
		updated++
	}
	if updated == 0 {
		return sdkerrors.Wrapf(types.ErrRecordNotFound, "%s", types.PathGovVotingPeriod)
	}
	return nil
}

package keeper

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/likecoin/testnetify/x/testnetify/types"
)

// UpdateOperator raises the operator's delegation, distribution starting stake and bank balance.
//
// Records are matched when their address field contains the operator address, so that
// prefixed or suffixed encodings of the same address are found too.
func (k Keeper) UpdateOperator(doc *types.Document) error {
	op := k.cfg.OperatorAddress
	containsOperator := func(field string) func(gjson.Result) bool {
		return func(v gjson.Result) bool {
			return strings.Contains(v.Get(field).String(), op)
		}
	}

	i, err := findIndex(doc, types.PathStakingDelegations, "delegation of "+op, containsOperator("delegator_address"))
	if err != nil {
		return err
	}
	from, to, err := addToShares(doc, indexPath(types.PathStakingDelegations, i, "shares"), k.cfg.DelegationIncrease)
	if err != nil {
		return err
	}
	k.Logger().Info("updated operator delegation shares", "from", from, "to", to)

	i, err = findIndex(doc, types.PathDelegatorStartingInfo, "starting info of "+op, containsOperator("delegator_address"))
	if err != nil {
		return err
	}
	from, to, err = addToShares(doc, indexPath(types.PathDelegatorStartingInfo, i, "starting_info.stake"), k.cfg.DelegationIncrease)
	if err != nil {
		return err
	}
	k.Logger().Info("updated operator starting stake", "from", from, "to", to)

	i, err = findIndex(doc, types.PathBankBalances, "balance of "+op, containsOperator("address"))
	if err != nil {
		return err
	}
	amountPath, err := coinAmountPath(doc, indexPath(types.PathBankBalances, i, "coins"), k.cfg.MinimalDenom)
	if err != nil {
		return err
	}
	from, to, err = addToAmount(doc, amountPath, k.cfg.BalanceIncrease)
	if err != nil {
		return err
	}
	k.Logger().Info("updated operator balance", "denom", k.cfg.MinimalDenom, "from", from, "to", to)
	return nil
}

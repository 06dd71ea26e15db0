package keeper

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/likecoin/testnetify/x/testnetify/types"
)

// The patches below keep the aggregate ledgers consistent with UpdateValidator and
// UpdateOperator and must use the same increments.

// PatchStakingPower adds the power increase to the last total power
func (k Keeper) PatchStakingPower(doc *types.Document) error {
	from, to, err := addToAmount(doc, types.PathLastTotalPower, k.cfg.PowerIncrease)
	if err != nil {
		return err
	}
	k.Logger().Info("patched last total power", "from", from, "to", to)
	return nil
}

// PatchBondedPool adds the delegation increase to the bonded pool module account balance
func (k Keeper) PatchBondedPool(doc *types.Document) error {
	pool, err := k.GetModuleAccount(doc, types.BondedPoolModuleName)
	if err != nil {
		return err
	}
	i, err := findIndex(doc, types.PathBankBalances, "balance of "+pool.Address, func(v gjson.Result) bool {
		return strings.Contains(v.Get("address").String(), pool.Address)
	})
	if err != nil {
		return err
	}
	amountPath, err := coinAmountPath(doc, indexPath(types.PathBankBalances, i, "coins"), k.cfg.MinimalDenom)
	if err != nil {
		return err
	}
	from, to, err := addToAmount(doc, amountPath, k.cfg.DelegationIncrease)
	if err != nil {
		return err
	}
	k.Logger().Info("patched bonded pool balance", "from", from, "to", to)
	return nil
}

// PatchSupply adds the delegation and balance increases to the total supply of the denom
func (k Keeper) PatchSupply(doc *types.Document) error {
	amountPath, err := coinAmountPath(doc, types.PathBankSupply, k.cfg.MinimalDenom)
	if err != nil {
		return err
	}
	from, to, err := addToAmount(doc, amountPath, k.cfg.DelegationIncrease.Add(k.cfg.BalanceIncrease))
	if err != nil {
		return err
	}
	k.Logger().Info("patched supply", "denom", k.cfg.MinimalDenom, "from", from, "to", to)
	return nil
}

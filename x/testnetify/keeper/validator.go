package keeper

import (
	"github.com/tidwall/gjson"

	"github.com/likecoin/testnetify/x/testnetify/types"
)

// UpdateValidator hands the selected validator over to the operator's consensus key
// and raises its power, tokens and shares. It must run after identity substitution,
// since the consensus-layer entry is located by the operator's hex address.
func (k Keeper) UpdateValidator(doc *types.Document, target types.Validator, operator types.OperatorIdentity) error {
	valIndex, err := findIndex(doc, types.PathStakingValidators, "validator "+target.Moniker, func(v gjson.Result) bool {
		return v.Get("description.moniker").String() == target.Moniker
	})
	if err != nil {
		return err
	}
	validator := types.ValidatorFromJSON(valIndex, doc.Get(elementPath(types.PathStakingValidators, valIndex)))

	if err := doc.SetString(indexPath(types.PathStakingValidators, valIndex, "consensus_pubkey.key"), operator.ConsensusPubKey); err != nil {
		return err
	}

	info, err := k.GetValidatorInfoByAddress(doc, operator.HexAddress)
	if err != nil {
		return err
	}
	if err := doc.SetString(indexPath(types.PathValidatorInfos, info.Index, "pub_key.value"), operator.ConsensusPubKey); err != nil {
		return err
	}
	k.Logger().Info("replaced validator public key", "moniker", validator.Moniker, "pubkey", operator.ConsensusPubKey)

	from, to, err := addToAmount(doc, indexPath(types.PathValidatorInfos, info.Index, "power"), k.cfg.PowerIncrease)
	if err != nil {
		return err
	}
	k.Logger().Info("updated validator power", "from", from, "to", to)

	powerIndex, err := findIndex(doc, types.PathLastValidatorPowers, "last power of "+validator.OperatorAddress, func(v gjson.Result) bool {
		return v.Get("address").String() == validator.OperatorAddress
	})
	if err != nil {
		return err
	}
	from, to, err = addToAmount(doc, indexPath(types.PathLastValidatorPowers, powerIndex, "power"), k.cfg.PowerIncrease)
	if err != nil {
		return err
	}
	k.Logger().Info("updated last validator power", "from", from, "to", to)

	from, to, err = addToShares(doc, indexPath(types.PathStakingValidators, valIndex, "delegator_shares"), k.cfg.DelegationIncrease)
	if err != nil {
		return err
	}
	k.Logger().Info("updated validator delegator shares", "from", from, "to", to)

	from, to, err = addToAmount(doc, indexPath(types.PathStakingValidators, valIndex, "tokens"), k.cfg.DelegationIncrease)
	if err != nil {
		return err
	}
	k.Logger().Info("updated validator tokens", "from", from, "to", to)
	return nil
}

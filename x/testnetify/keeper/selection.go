package keeper

import (
	"strings"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/tidwall/gjson"

	"github.com/likecoin/testnetify/x/testnetify/types"
)

// GetValidators returns every staking validator in document order
func (k Keeper) GetValidators(doc *types.Document) ([]types.Validator, error) {
	var validators []types.Validator
	err := doc.ForEach(types.PathStakingValidators, func(i int, v gjson.Result) bool {
		validators = append(validators, types.ValidatorFromJSON(i, v))
		return true
	})
	return validators, err
}

// GetDelegations returns every delegation in document order
func (k Keeper) GetDelegations(doc *types.Document) ([]types.Delegation, error) {
	var delegations []types.Delegation
	err := doc.ForEach(types.PathStakingDelegations, func(i int, v gjson.Result) bool {
		delegations = append(delegations, types.DelegationFromJSON(i, v))
		return true
	})
	return delegations, err
}

// GetValidatorInfoByName returns the consensus-layer validator entry with the given name
func (k Keeper) GetValidatorInfoByName(doc *types.Document, name string) (types.ValidatorInfo, error) {
	return k.getValidatorInfo(doc, "name", name)
}

// GetValidatorInfoByAddress returns the consensus-layer validator entry with the given hex address
func (k Keeper) GetValidatorInfoByAddress(doc *types.Document, hexAddr string) (types.ValidatorInfo, error) {
	return k.getValidatorInfo(doc, "address", hexAddr)
}

func (k Keeper) getValidatorInfo(doc *types.Document, field, value string) (types.ValidatorInfo, error) {
	var (
		info  types.ValidatorInfo
		found bool
	)
	err := doc.ForEach(types.PathValidatorInfos, func(i int, v gjson.Result) bool {
		if v.Get(field).String() == value {
			info, found = types.ValidatorInfoFromJSON(i, v), true
			return false
		}
		return true
	})
	if err != nil {
		return info, err
	}
	if !found {
		return info, sdkerrors.Wrapf(types.ErrRecordNotFound, "validator with %s %s in %s", field, value, types.PathValidatorInfos)
	}
	return info, nil
}

// GetAccount returns the auth account with exactly the given address
func (k Keeper) GetAccount(doc *types.Document, address string) (types.Account, error) {
	return k.findAccount(doc, "account "+address, func(acc types.Account) bool {
		return acc.Address == address
	})
}

// GetModuleAccount returns the module account with the given name
func (k Keeper) GetModuleAccount(doc *types.Document, name string) (types.Account, error) {
	return k.findAccount(doc, "module account "+name, func(acc types.Account) bool {
		return acc.Name == name
	})
}

func (k Keeper) findAccount(doc *types.Document, what string, match func(types.Account) bool) (types.Account, error) {
	var (
		account types.Account
		found   bool
	)
	err := doc.ForEach(types.PathAuthAccounts, func(i int, v gjson.Result) bool {
		acc, ok := types.AccountFromJSON(i, v)
		if ok && match(acc) {
			account, found = acc, true
			return false
		}
		return true
	})
	if err != nil {
		return account, err
	}
	if !found {
		return account, sdkerrors.Wrapf(types.ErrRecordNotFound, "%s in %s", what, types.PathAuthAccounts)
	}
	return account, nil
}

// SelectCandidate picks the validator and delegator to be taken over.
//
// The first validator (in document order) that is not jailed, has the operator prefix and
// has a delegator whose only delegation in the whole genesis is to that validator is selected.
// Validators without such a delegator are rejected and never revisited; the rejected
// operator addresses are returned alongside the candidate.
func (k Keeper) SelectCandidate(doc *types.Document) (types.Candidate, []string, error) {
	validators, err := k.GetValidators(doc)
	if err != nil {
		return types.Candidate{}, nil, err
	}
	delegations, err := k.GetDelegations(doc)
	if err != nil {
		return types.Candidate{}, nil, err
	}

	// counted over every validator, not just the selected one
	delegationCount := make(map[string]int)
	for _, d := range delegations {
		delegationCount[d.DelegatorAddress]++
	}

	rejected := make(map[string]bool)
	var rejectedList []string
	for {
		validator, ok := k.nextEligibleValidator(validators, rejected)
		if !ok {
			return types.Candidate{}, rejectedList, sdkerrors.Wrapf(types.ErrNoCandidate,
				"%d validators, %d rejected", len(validators), len(rejectedList))
		}

		delegation, ok := singleDelegation(delegations, delegationCount, validator.OperatorAddress)
		if !ok {
			k.Logger().Info("validator has no single-delegation delegator, skipping",
				"validator", validator.OperatorAddress, "moniker", validator.Moniker)
			rejected[validator.OperatorAddress] = true
			rejectedList = append(rejectedList, validator.OperatorAddress)
			continue
		}

		info, err := k.GetValidatorInfoByName(doc, validator.Moniker)
		if err != nil {
			return types.Candidate{}, rejectedList, err
		}
		delegator, err := k.GetAccount(doc, delegation.DelegatorAddress)
		if err != nil {
			return types.Candidate{}, rejectedList, err
		}

		k.Logger().Info("selected validator and delegator",
			"validator", validator.OperatorAddress,
			"moniker", validator.Moniker,
			"delegator", delegator.Address,
		)
		return types.Candidate{
			ValidatorInfo: info,
			Validator:     validator,
			Delegator:     delegator,
		}, rejectedList, nil
	}
}

func (k Keeper) nextEligibleValidator(validators []types.Validator, rejected map[string]bool) (types.Validator, bool) {
	for _, v := range validators {
		if v.Jailed || !strings.HasPrefix(v.OperatorAddress, k.cfg.OperatorPrefix) || rejected[v.OperatorAddress] {
			continue
		}
		return v, true
	}
	return types.Validator{}, false
}

func singleDelegation(delegations []types.Delegation, count map[string]int, valAddr string) (types.Delegation, bool) {
	for _, d := range delegations {
		if d.ValidatorAddress == valAddr && count[d.DelegatorAddress] == 1 {
			return d, true
		}
	}
	return types.Delegation{}, false
}

package keeper

import (
	"github.com/likecoin/testnetify/x/testnetify/types"
)

// Testnetify turns the in-memory mainnet genesis into a testnet genesis controlled by the
// local node and the configured operator account. On error the document may be partially
// edited and must be discarded.
func (k Keeper) Testnetify(doc *types.Document) (types.Report, error) {
	report := types.Report{ChainID: k.cfg.ChainID}

	operator, err := k.converter.LocalValidator()
	if err != nil {
		return report, err
	}
	report.Operator = operator

	candidate, rejected, err := k.SelectCandidate(doc)
	report.RejectedValidators = rejected
	if err != nil {
		return report, err
	}
	report.ValidatorOperator = candidate.Validator.OperatorAddress
	report.ValidatorMoniker = candidate.Validator.Moniker
	report.Delegator = candidate.Delegator.Address

	targetAccAddr, err := k.converter.HexToAccAddress(candidate.ValidatorInfo.Address)
	if err != nil {
		return report, err
	}
	targetConsAddr, err := k.converter.ConvertPrefix(targetAccAddr, k.cfg.ConsensusPrefix)
	if err != nil {
		return report, err
	}

	subs := k.IdentitySubstitutions(candidate, targetConsAddr, operator)
	if _, err := k.SubstituteIdentities(doc, subs); err != nil {
		return report, err
	}

	steps := []func(*types.Document) error{
		k.UpdateChainID,
		func(doc *types.Document) error {
			return k.UpdateValidator(doc, candidate.Validator, operator)
		},
		k.UpdateOperator,
		k.PatchStakingPower,
		k.PatchSupply,
		k.PatchBondedPool,
		k.UpdateVotingPeriod,
	}
	for _, step := range steps {
		if err := step(doc); err != nil {
			return report, err
		}
	}

	report.Changes = doc.Changes()
	return report, nil
}

// TestnetifyFile backs up the genesis file at path, mutates it and writes it back in place.
// With dryRun the mutated genesis is not written. Nothing is written when any step fails.
func (k Keeper) TestnetifyFile(path string, dryRun bool) (types.Report, error) {
	doc, err := k.ReadGenesis(path)
	if err != nil {
		return types.Report{GenesisFile: path}, err
	}
	backup, err := k.BackupGenesis(path)
	if err != nil {
		return types.Report{GenesisFile: path}, err
	}

	report, err := k.Testnetify(doc)
	report.GenesisFile = path
	report.BackupFile = backup
	report.DryRun = dryRun
	if err != nil {
		return report, err
	}

	if dryRun {
		k.Logger().Info("dry run, genesis left untouched", "path", path, "changes", len(report.Changes))
		return report, nil
	}
	if err := k.WriteGenesis(path, doc); err != nil {
		return report, err
	}
	return report, nil
}

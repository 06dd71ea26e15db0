package types

const (
	// ModuleName defines the testnetify module name
	ModuleName = "testnetify"

	// BackupSuffix is appended to the genesis file path to name its pre-mutation copy
	BackupSuffix = ".bak"

	// BondedPoolModuleName is the name of the module account holding bonded tokens
	BondedPoolModuleName = "bonded_tokens_pool"
)

// Genesis document paths, in gjson/sjson syntax.
const (
	PathChainID = "chain_id"

	// consensus-layer validator list
	PathValidatorInfos = "validators"

	PathStakingValidators     = "app_state.staking.validators"
	PathStakingDelegations    = "app_state.staking.delegations"
	PathLastValidatorPowers   = "app_state.staking.last_validator_powers"
	PathLastTotalPower        = "app_state.staking.last_total_power"
	PathAuthAccounts          = "app_state.auth.accounts"
	PathBankBalances          = "app_state.bank.balances"
	PathBankSupply            = "app_state.bank.supply"
	PathDelegatorStartingInfo = "app_state.distribution.delegator_starting_infos"

	// gov v1beta1 layout, and the newer gov v1 layout
	PathGovVotingPeriod       = "app_state.gov.voting_params.voting_period"
	PathGovParamsVotingPeriod = "app_state.gov.params.voting_period"
)

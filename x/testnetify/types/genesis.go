package types

import (
	"github.com/tidwall/gjson"
)

// Validator is a staking module validator record.
type Validator struct {
	// Index is the position in app_state.staking.validators
	Index           int
	OperatorAddress string
	Moniker         string
	Jailed          bool
	DelegatorShares string
	Tokens          string
	ConsensusPubKey string
}

// ValidatorFromJSON reads a validator record
func ValidatorFromJSON(index int, v gjson.Result) Validator {
	return Validator{
		Index:           index,
		OperatorAddress: v.Get("operator_address").String(),
		Moniker:         v.Get("description.moniker").String(),
		Jailed:          v.Get("jailed").Bool(),
		DelegatorShares: v.Get("delegator_shares").String(),
		Tokens:          v.Get("tokens").String(),
		ConsensusPubKey: v.Get("consensus_pubkey.key").String(),
	}
}

// Delegation is a staking module delegation record.
type Delegation struct {
	Index            int
	DelegatorAddress string
	ValidatorAddress string
	Shares           string
}

// DelegationFromJSON reads a delegation record
func DelegationFromJSON(index int, v gjson.Result) Delegation {
	return Delegation{
		Index:            index,
		DelegatorAddress: v.Get("delegator_address").String(),
		ValidatorAddress: v.Get("validator_address").String(),
		Shares:           v.Get("shares").String(),
	}
}

// ValidatorInfo is an entry of the consensus-layer validator list at the top of the genesis.
// It is linked to a Validator by moniker and hex address only.
type ValidatorInfo struct {
	Index   int
	Address string
	Name    string
	Power   string
	PubKey  string
}

// ValidatorInfoFromJSON reads a consensus-layer validator entry
func ValidatorInfoFromJSON(index int, v gjson.Result) ValidatorInfo {
	return ValidatorInfo{
		Index:   index,
		Address: v.Get("address").String(),
		Name:    v.Get("name").String(),
		Power:   v.Get("power").String(),
		PubKey:  v.Get("pub_key.value").String(),
	}
}

// accountBasePaths lists where the base account fields live for the account types found in
// app_state.auth.accounts: plain, module and vesting accounts.
var accountBasePaths = []string{
	"",
	"base_account.",
	"base_vesting_account.base_account.",
}

// Account is an auth module account.
type Account struct {
	Index int
	// BasePath is the path of the base account fields relative to the account entry
	BasePath string
	Address  string
	// PubKey is empty when the account has never signed
	PubKey string
	// Name is only set for module accounts
	Name string
}

// AccountFromJSON reads an account of any known type. ok is false when no address is found.
func AccountFromJSON(index int, v gjson.Result) (acc Account, ok bool) {
	for _, base := range accountBasePaths {
		addr := v.Get(base + "address")
		if addr.Type != gjson.String {
			continue
		}
		return Account{
			Index:    index,
			BasePath: base,
			Address:  addr.String(),
			PubKey:   v.Get(base + "pub_key.key").String(),
			Name:     v.Get("name").String(),
		}, true
	}
	return Account{}, false
}

// Candidate is the validator/delegator pair taken over by the operator.
type Candidate struct {
	ValidatorInfo ValidatorInfo
	Validator     Validator
	Delegator     Account
}

// OperatorIdentity is the identity of the local node that replaces the selected validator.
type OperatorIdentity struct {
	// ConsensusPubKey is the base64 consensus public key
	ConsensusPubKey string
	// HexAddress is the consensus address in upper case hex
	HexAddress string
	// AccountAddress is HexAddress encoded with the account prefix
	AccountAddress string
	// ConsensusAddress is HexAddress encoded with the consensus prefix
	ConsensusAddress string
}

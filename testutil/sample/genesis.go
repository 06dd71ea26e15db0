package sample

import (
	"encoding/json"
)

// Identities used by the sample genesis and the daemon fixtures.
const (
	Denom           = "nanolike"
	OperatorPrefix  = "likevaloper"
	ConsensusPrefix = "likevalcons"

	// local node consensus key: bytes 0x01..0x20
	LocalPubKey      = "AQIDBAUGBwgJCgsMDQ4PEBESExQVFhcYGRobHB0eHyA="
	LocalHexAddress  = "AE216C2EF5247A3782C135EFA279A3E4CDC61094"
	LocalAccAddress  = "like14cskcth4y3ar0qkpxhh6y7drunxuvyy5cfvk2e"
	LocalConsAddress = "likevalcons14cskcth4y3ar0qkpxhh6y7drunxuvyy564f5kt"

	// the validator expected to be selected from DefaultGenesis
	TargetOperator    = "likevaloper1val1"
	TargetMoniker     = "val1"
	TargetHexAddress  = "ABABABABABABABABABABABABABABABABABABABAB"
	TargetAccAddress  = "like14w46h2at4w46h2at4w46h2at4w46h2at0jxhjx"
	TargetConsAddress = "likevalcons14w46h2at4w46h2at4w46h2at4w46h2atdwr4w5"
	TargetPubKey      = "dmFsMSBjb25zZW5zdXMga2V5"

	// the delegator expected to be selected from DefaultGenesis
	Delegator       = "like1delegator"
	DelegatorPubKey = "A2RlbGVnYXRvciBwdWIga2V5"

	BondedPool = "like1bondedpool"
)

type Genesis struct {
	GenesisTime string          `json:"genesis_time"`
	ChainID     string          `json:"chain_id"`
	Validators  []ValidatorInfo `json:"validators"`
	AppState    AppState        `json:"app_state"`
}

type ValidatorInfo struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Power   string `json:"power"`
	PubKey  struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"pub_key"`
}

type AppState struct {
	Auth struct {
		Accounts []json.RawMessage `json:"accounts"`
	} `json:"auth"`
	Bank struct {
		Balances []Balance `json:"balances"`
		Supply   []Coin    `json:"supply"`
	} `json:"bank"`
	Distribution struct {
		DelegatorStartingInfos []StartingInfo `json:"delegator_starting_infos"`
	} `json:"distribution"`
	Gov struct {
		VotingParams struct {
			VotingPeriod string `json:"voting_period"`
		} `json:"voting_params"`
		Proposals []Proposal `json:"proposals"`
	} `json:"gov"`
	Slashing struct {
		SigningInfos []SigningInfo `json:"signing_infos"`
	} `json:"slashing"`
	Staking struct {
		LastTotalPower      string       `json:"last_total_power"`
		LastValidatorPowers []Power      `json:"last_validator_powers"`
		Validators          []Validator  `json:"validators"`
		Delegations         []Delegation `json:"delegations"`
	} `json:"staking"`
}

type Coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

type Balance struct {
	Address string `json:"address"`
	Coins   []Coin `json:"coins"`
}

type StartingInfo struct {
	DelegatorAddress string `json:"delegator_address"`
	ValidatorAddress string `json:"validator_address"`
	StartingInfo     struct {
		PreviousPeriod string `json:"previous_period"`
		Stake          string `json:"stake"`
		Height         string `json:"height"`
	} `json:"starting_info"`
}

type Proposal struct {
	ProposalID string `json:"proposal_id"`
	Content    struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"content"`
}

type SigningInfo struct {
	Address              string `json:"address"`
	ValidatorSigningInfo struct {
		Address     string `json:"address"`
		StartHeight string `json:"start_height"`
	} `json:"validator_signing_info"`
}

type Power struct {
	Address string `json:"address"`
	Power   string `json:"power"`
}

type Validator struct {
	OperatorAddress string `json:"operator_address"`
	ConsensusPubKey struct {
		Type string `json:"@type"`
		Key  string `json:"key"`
	} `json:"consensus_pubkey"`
	Jailed          bool   `json:"jailed"`
	Tokens          string `json:"tokens"`
	DelegatorShares string `json:"delegator_shares"`
	Description     struct {
		Moniker string `json:"moniker"`
	} `json:"description"`
}

type Delegation struct {
	DelegatorAddress string `json:"delegator_address"`
	ValidatorAddress string `json:"validator_address"`
	Shares           string `json:"shares"`
}

// AddValidator adds a staking validator together with its consensus-layer entry and last power
func (g *Genesis) AddValidator(operator, moniker, hexAddr, pubKey string, jailed bool, tokens, power string) {
	v := Validator{
		OperatorAddress: operator,
		Jailed:          jailed,
		Tokens:          tokens,
		DelegatorShares: tokens + ".000000000000000000",
	}
	v.ConsensusPubKey.Type = "/cosmos.crypto.ed25519.PubKey"
	v.ConsensusPubKey.Key = pubKey
	v.Description.Moniker = moniker
	g.AppState.Staking.Validators = append(g.AppState.Staking.Validators, v)

	info := ValidatorInfo{Address: hexAddr, Name: moniker, Power: power}
	info.PubKey.Type = "tendermint/PubKeyEd25519"
	info.PubKey.Value = pubKey
	g.Validators = append(g.Validators, info)

	g.AppState.Staking.LastValidatorPowers = append(g.AppState.Staking.LastValidatorPowers, Power{Address: operator, Power: power})
}

// AddDelegation adds a delegation of whole shares
func (g *Genesis) AddDelegation(delegator, validator, shares string) {
	g.AppState.Staking.Delegations = append(g.AppState.Staking.Delegations, Delegation{
		DelegatorAddress: delegator,
		ValidatorAddress: validator,
		Shares:           shares + ".000000000000000000",
	})
	info := StartingInfo{DelegatorAddress: delegator, ValidatorAddress: validator}
	info.StartingInfo.PreviousPeriod = "1"
	info.StartingInfo.Stake = shares + ".000000000000000000"
	info.StartingInfo.Height = "0"
	g.AppState.Distribution.DelegatorStartingInfos = append(g.AppState.Distribution.DelegatorStartingInfos, info)
}

// AddAccount adds a base account. An empty pubKey leaves pub_key null.
func (g *Genesis) AddAccount(address, pubKey string) {
	g.addAccount(baseAccount(address, pubKey))
}

// AddVestingAccount adds a continuous vesting account
func (g *Genesis) AddVestingAccount(address, pubKey string) {
	acc := map[string]interface{}{
		"@type": "/cosmos.vesting.v1beta1.ContinuousVestingAccount",
		"base_vesting_account": map[string]interface{}{
			"base_account":     baseAccount(address, pubKey),
			"original_vesting": []Coin{{Denom: Denom, Amount: "1"}},
		},
		"start_time": "0",
	}
	g.addAccount(acc)
}

// AddModuleAccount adds a module account
func (g *Genesis) AddModuleAccount(address, name string) {
	acc := map[string]interface{}{
		"@type":        "/cosmos.auth.v1beta1.ModuleAccount",
		"base_account": baseAccount(address, ""),
		"name":         name,
		"permissions":  []string{},
	}
	g.addAccount(acc)
}

func (g *Genesis) addAccount(acc interface{}) {
	bz, err := json.Marshal(acc)
	if err != nil {
		panic(err)
	}
	g.AppState.Auth.Accounts = append(g.AppState.Auth.Accounts, bz)
}

func baseAccount(address, pubKey string) map[string]interface{} {
	var pk interface{}
	if pubKey != "" {
		pk = map[string]string{"@type": "/cosmos.crypto.secp256k1.PubKey", "key": pubKey}
	}
	return map[string]interface{}{
		"@type":          "/cosmos.auth.v1beta1.BaseAccount",
		"address":        address,
		"pub_key":        pk,
		"account_number": "0",
		"sequence":       "0",
	}
}

// AddBalance adds a balance of the sample denom
func (g *Genesis) AddBalance(address, amount string) {
	g.AppState.Bank.Balances = append(g.AppState.Bank.Balances, Balance{
		Address: address,
		Coins: []Coin{
			{Denom: "ibc/27394FB092D2ECCD56123C74F36E4C1F926001CEADA9CA97EA622B25F41E5EB2", Amount: "7"},
			{Denom: Denom, Amount: amount},
		},
	})
}

// Bytes returns the indented JSON document
func (g Genesis) Bytes() []byte {
	bz, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		panic(err)
	}
	return bz
}

// DefaultGenesis returns a small mainnet-like genesis in which:
//   - "jailed" is jailed,
//   - "foreign" does not have the operator prefix,
//   - "shared" is only delegated to by an account that also delegates elsewhere,
//   - "val1" is eligible, with Delegator as its first single-delegation delegator.
func DefaultGenesis() Genesis {
	g := Genesis{
		GenesisTime: "2022-04-01T00:00:00Z",
		ChainID:     "likecoin-mainnet-2",
	}

	g.AddValidator("likevaloper1jailed", "jailed", "1111111111111111111111111111111111111111", "amFpbGVkIGtleQ==", true, "5000000", "5")
	g.AddValidator("cosmosvaloper1foreign", "foreign", "2222222222222222222222222222222222222222", "Zm9yZWlnbiBrZXk=", false, "1000000", "1")
	g.AddValidator("likevaloper1shared", "shared", "3333333333333333333333333333333333333333", "c2hhcmVkIGtleQ==", false, "2000000", "2")
	g.AddValidator(TargetOperator, TargetMoniker, TargetHexAddress, TargetPubKey, false, "3000000", "3")
	g.AppState.Staking.LastTotalPower = "11"

	g.AddDelegation("like1jaileddelegator", "likevaloper1jailed", "5000000")
	g.AddDelegation("like1foreigndelegator", "cosmosvaloper1foreign", "1000000")
	g.AddDelegation("like1multi", "likevaloper1shared", "2000000")
	g.AddDelegation("like1multi", TargetOperator, "1000000")
	g.AddDelegation(Delegator, TargetOperator, "1000000")
	g.AddDelegation("like1late", TargetOperator, "1000000")

	g.AddAccount("like1jaileddelegator", "")
	g.AddAccount("like1foreigndelegator", "")
	g.AddAccount("like1multi", "")
	g.AddAccount(Delegator, DelegatorPubKey)
	g.AddVestingAccount("like1late", "")
	g.AddModuleAccount(BondedPool, "bonded_tokens_pool")
	g.AddModuleAccount("like1notbondedpool", "not_bonded_tokens_pool")

	g.AddBalance("like1multi", "500")
	g.AddBalance(Delegator, "1000000000")
	g.AddBalance(BondedPool, "11000000")
	g.AppState.Bank.Supply = []Coin{{Denom: Denom, Amount: "1000000000000"}}

	g.AppState.Gov.VotingParams.VotingPeriod = "1209600s"
	p := Proposal{ProposalID: "1"}
	p.Content.Title = "Community spend"
	p.Content.Description = "Pay " + Delegator + " for validator " + TargetConsAddress + " uptime"
	g.AppState.Gov.Proposals = []Proposal{p}

	s := SigningInfo{Address: TargetConsAddress}
	s.ValidatorSigningInfo.Address = TargetConsAddress
	s.ValidatorSigningInfo.StartHeight = "0"
	g.AppState.Slashing.SigningInfos = []SigningInfo{s}

	return g
}

package types

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// Default values for the LikeCoin mainnet fork.
const (
	DefaultChainID         = "mainnet-upgrade-test"
	DefaultDaemon          = "liked"
	DefaultMinimalDenom    = "nanolike"
	DefaultAccountPrefix   = "like"
	DefaultOperatorPrefix  = "likevaloper"
	DefaultConsensusPrefix = "likevalcons"
	DefaultVotingPeriod    = 180 * time.Second

	DefaultDelegationIncrease = "60000000000000000000"
	DefaultPowerIncrease      = "60000000000000"
	DefaultBalanceIncrease    = "100000000000000000000000"

	// service people choice joy absurd around pony harsh outdoor forget leaf brown mobile notice ozone shed position van flavor lift organ apart assist muffin
	DefaultOperatorAddress = "like1ukmjl5s6pnw2txkvz2hd2n0f6dulw34h9rw5zn"
	DefaultOperatorPubKey  = "AykpD45ZUhhL7tpcNtOdm4+7fPLQcx4u+9OUkfuzN7KT"
)

// Config holds everything the mutation pipeline needs to know about the target testnet.
type Config struct {
	// ChainID replaces the chain_id of the forked genesis
	ChainID string
	// Daemon is the chain binary used for key and address conversions
	Daemon string
	// Home is passed to the daemon as --home when set
	Home string
	// MinimalDenom is the denom whose balance and supply are inflated
	MinimalDenom string

	AccountPrefix   string
	OperatorPrefix  string
	ConsensusPrefix string

	// VotingPeriod is the shortened governance voting period
	VotingPeriod time.Duration

	// DelegationIncrease is added to the selected validator's tokens and shares,
	// the operator's delegation, its starting info stake and the bonded pool.
	DelegationIncrease sdk.Int
	// PowerIncrease is added to the validator's consensus power and the total power.
	PowerIncrease sdk.Int
	// BalanceIncrease is added to the operator's spendable balance.
	BalanceIncrease sdk.Int

	// OperatorAddress and OperatorPubKey replace the selected delegator's identity
	OperatorAddress string
	OperatorPubKey  string
}

// DefaultConfig returns the configuration used for the LikeCoin mainnet fork.
func DefaultConfig() Config {
	return Config{
		ChainID:            DefaultChainID,
		Daemon:             DefaultDaemon,
		MinimalDenom:       DefaultMinimalDenom,
		AccountPrefix:      DefaultAccountPrefix,
		OperatorPrefix:     DefaultOperatorPrefix,
		ConsensusPrefix:    DefaultConsensusPrefix,
		VotingPeriod:       DefaultVotingPeriod,
		DelegationIncrease: mustNewInt(DefaultDelegationIncrease),
		PowerIncrease:      mustNewInt(DefaultPowerIncrease),
		BalanceIncrease:    mustNewInt(DefaultBalanceIncrease),
		OperatorAddress:    DefaultOperatorAddress,
		OperatorPubKey:     DefaultOperatorPubKey,
	}
}

// Validate performs basic validation of the config
func (c Config) Validate() error {
	for name, value := range map[string]string{
		"chain_id":         c.ChainID,
		"daemon":           c.Daemon,
		"minimal_denom":    c.MinimalDenom,
		"account_prefix":   c.AccountPrefix,
		"operator_prefix":  c.OperatorPrefix,
		"consensus_prefix": c.ConsensusPrefix,
		"operator_address": c.OperatorAddress,
		"operator_pubkey":  c.OperatorPubKey,
	} {
		if strings.TrimSpace(value) == "" {
			return sdkerrors.Wrapf(ErrInvalidConfig, "%s cannot be blank", name)
		}
	}
	if err := sdk.ValidateDenom(c.MinimalDenom); err != nil {
		return sdkerrors.Wrapf(ErrInvalidConfig, "minimal_denom: %s", err)
	}
	if c.VotingPeriod <= 0 {
		return sdkerrors.Wrapf(ErrInvalidConfig, "voting_period must be positive, got %s", c.VotingPeriod)
	}
	for name, amount := range map[string]sdk.Int{
		"delegation_increase": c.DelegationIncrease,
		"power_increase":      c.PowerIncrease,
		"balance_increase":    c.BalanceIncrease,
	} {
		if amount.IsNil() || !amount.IsPositive() {
			return sdkerrors.Wrapf(ErrInvalidConfig, "%s must be a positive integer", name)
		}
	}

	hrp, _, err := bech32.DecodeAndConvert(c.OperatorAddress)
	if err != nil {
		return sdkerrors.Wrapf(ErrInvalidConfig, "operator_address %s: %s", c.OperatorAddress, err)
	}
	if hrp != c.AccountPrefix {
		return sdkerrors.Wrapf(ErrInvalidConfig, "operator_address %s does not have prefix %s", c.OperatorAddress, c.AccountPrefix)
	}
	if _, err := base64.StdEncoding.DecodeString(c.OperatorPubKey); err != nil {
		return sdkerrors.Wrapf(ErrInvalidConfig, "operator_pubkey is not base64: %s", err)
	}
	return nil
}

// VotingPeriodString renders the voting period the way protobuf JSON encodes a Duration.
func (c Config) VotingPeriodString() string {
	return strconv.FormatFloat(c.VotingPeriod.Seconds(), 'f', -1, 64) + "s"
}

// ParseAmount parses an arbitrary-precision integer amount.
func ParseAmount(s string) (sdk.Int, error) {
	amount, ok := sdk.NewIntFromString(strings.TrimSpace(s))
	if !ok {
		return sdk.Int{}, fmt.Errorf("invalid integer amount %q", s)
	}
	return amount, nil
}

func mustNewInt(s string) sdk.Int {
	amount, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return amount
}

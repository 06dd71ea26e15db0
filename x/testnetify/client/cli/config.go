package cli

import (
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/likecoin/testnetify/x/testnetify/types"
)

// EnvPrefix prefixes environment variables overriding config keys, e.g. TESTNETIFY_CHAIN_ID
const EnvPrefix = "TESTNETIFY"

// config keys
const (
	KeyChainID            = "chain_id"
	KeyDaemon             = "daemon"
	KeyHome               = "home"
	KeyMinimalDenom       = "minimal_denom"
	KeyAccountPrefix      = "account_prefix"
	KeyOperatorPrefix     = "operator_prefix"
	KeyConsensusPrefix    = "consensus_prefix"
	KeyVotingPeriod       = "voting_period"
	KeyDelegationIncrease = "delegation_increase"
	KeyPowerIncrease      = "power_increase"
	KeyBalanceIncrease    = "balance_increase"
	KeyOperatorAddress    = "operator_address"
	KeyOperatorPubKey     = "operator_pubkey"
)

func setDefaults(v *viper.Viper) {
	def := types.DefaultConfig()
	v.SetDefault(KeyChainID, def.ChainID)
	v.SetDefault(KeyDaemon, def.Daemon)
	v.SetDefault(KeyHome, def.Home)
	v.SetDefault(KeyMinimalDenom, def.MinimalDenom)
	v.SetDefault(KeyAccountPrefix, def.AccountPrefix)
	v.SetDefault(KeyOperatorPrefix, def.OperatorPrefix)
	v.SetDefault(KeyConsensusPrefix, def.ConsensusPrefix)
	v.SetDefault(KeyVotingPeriod, def.VotingPeriodString())
	v.SetDefault(KeyDelegationIncrease, def.DelegationIncrease.String())
	v.SetDefault(KeyPowerIncrease, def.PowerIncrease.String())
	v.SetDefault(KeyBalanceIncrease, def.BalanceIncrease.String())
	v.SetDefault(KeyOperatorAddress, def.OperatorAddress)
	v.SetDefault(KeyOperatorPubKey, def.OperatorPubKey)
}

// LoadConfig builds the config from defaults, the config file named by the
// --config flag, TESTNETIFY_* environment variables and bound flags, in
// increasing order of precedence.
func LoadConfig(v *viper.Viper) (types.Config, error) {
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString(FlagConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return types.Config{}, sdkerrors.Wrapf(types.ErrInvalidConfig, "read %s: %s", file, err)
		}
	}

	votingPeriod, err := cast.ToDurationE(v.Get(KeyVotingPeriod))
	if err != nil {
		return types.Config{}, sdkerrors.Wrapf(types.ErrInvalidConfig, "%s: %s", KeyVotingPeriod, err)
	}
	cfg := types.Config{
		ChainID:         cast.ToString(v.Get(KeyChainID)),
		Daemon:          cast.ToString(v.Get(KeyDaemon)),
		Home:            cast.ToString(v.Get(KeyHome)),
		MinimalDenom:    cast.ToString(v.Get(KeyMinimalDenom)),
		AccountPrefix:   cast.ToString(v.Get(KeyAccountPrefix)),
		OperatorPrefix:  cast.ToString(v.Get(KeyOperatorPrefix)),
		ConsensusPrefix: cast.ToString(v.Get(KeyConsensusPrefix)),
		VotingPeriod:    votingPeriod,
		OperatorAddress: cast.ToString(v.Get(KeyOperatorAddress)),
		OperatorPubKey:  cast.ToString(v.Get(KeyOperatorPubKey)),
	}

	// increments overflow int64, so they are read as strings
	for key, dst := range map[string]*sdk.Int{
		KeyDelegationIncrease: &cfg.DelegationIncrease,
		KeyPowerIncrease:      &cfg.PowerIncrease,
		KeyBalanceIncrease:    &cfg.BalanceIncrease,
	} {
		amount, err := types.ParseAmount(cast.ToString(v.Get(key)))
		if err != nil {
			return types.Config{}, sdkerrors.Wrapf(types.ErrInvalidConfig, "%s: %s (quote large amounts)", key, err)
		}
		*dst = amount
	}

	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

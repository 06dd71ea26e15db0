package keeper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	testkeeper "github.com/likecoin/testnetify/testutil/keeper"
	"github.com/likecoin/testnetify/testutil/sample"
	"github.com/likecoin/testnetify/x/testnetify/keeper"
	"github.com/likecoin/testnetify/x/testnetify/types"
)

func TestUpdateChainID(t *testing.T) {
	k, _ := testkeeper.GetTestnetifyKeeperWithMocks(t)
	doc := newDocument(t, sample.DefaultGenesis())

	require.NoError(t, k.UpdateChainID(doc))
	require.Equal(t, types.DefaultChainID, doc.Get(types.PathChainID).String())
	require.Equal(t, []types.Change{{Path: "chain_id", Old: "likecoin-mainnet-2", New: types.DefaultChainID}}, doc.Changes())
}

func TestUpdateVotingPeriod(t *testing.T) {
	testCases := []struct {
		name    string
		genesis string
		expPass bool
	}{
		{"gov v1beta1", `{"app_state": {"gov": {"voting_params": {"voting_period": "1209600s"}}}}`, true},
		{"gov v1", `{"app_state": {"gov": {"params": {"voting_period": "1209600s"}}}}`, true},
		{"both", `{"app_state": {"gov": {"voting_params": {"voting_period": "1s"}, "params": {"voting_period": "1s"}}}}`, true},
		{"no gov", `{"app_state": {}}`, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := types.DefaultConfig()
			cfg.VotingPeriod = 90 * time.Second
			k, _ := testkeeper.GetCustomTestnetifyKeeperWithMocks(t, cfg)
			doc, err := types.NewDocument([]byte(tc.genesis))
			require.NoError(t, err)

			err = k.UpdateVotingPeriod(doc)
			if !tc.expPass {
				require.ErrorIs(t, err, types.ErrRecordNotFound)
				return
			}
			require.NoError(t, err)
			for _, path := range []string{types.PathGovVotingPeriod, types.PathGovParamsVotingPeriod} {
				if v := doc.Get(path); v.Exists() {
					require.Equal(t, "90s", v.String())
				}
			}
		})
	}
}

func TestPatchStakingPower(t *testing.T) {
	k, _ := testkeeper.GetTestnetifyKeeperWithMocks(t)

	doc := newDocument(t, sample.DefaultGenesis())
	require.NoError(t, k.PatchStakingPower(doc))
	require.Equal(t, "60000000000011", doc.Get(types.PathLastTotalPower).String())

	// numbers stay numbers
	doc, err := types.NewDocument([]byte(`{"app_state": {"staking": {"last_total_power": 11}}}`))
	require.NoError(t, err)
	require.NoError(t, k.PatchStakingPower(doc))
	require.Equal(t, `{"app_state": {"staking": {"last_total_power": 60000000000011}}}`, string(doc.Bytes()))

	doc, err = types.NewDocument([]byte(`{"app_state": {"staking": {"last_total_power": "eleven"}}}`))
	require.NoError(t, err)
	require.ErrorIs(t, k.PatchStakingPower(doc), types.ErrInvalidGenesis)
}

func TestPatchBondedPool(t *testing.T) {
	k, _ := testkeeper.GetTestnetifyKeeperWithMocks(t)

	doc := newDocument(t, sample.DefaultGenesis())
	require.NoError(t, k.PatchBondedPool(doc))
	require.Equal(t, "60000000000011000000", doc.Get("app_state.bank.balances.2.coins.1.amount").String())
	// other denoms are left alone
	require.Equal(t, "7", doc.Get("app_state.bank.balances.2.coins.0.amount").String())

	g := sample.DefaultGenesis()
	g.AppState.Auth.Accounts = g.AppState.Auth.Accounts[:5]
	doc = newDocument(t, g)
	require.ErrorIs(t, k.PatchBondedPool(doc), types.ErrRecordNotFound)
}

func TestPatchSupply(t *testing.T) {
	k, _ := testkeeper.GetTestnetifyKeeperWithMocks(t)
	doc := newDocument(t, sample.DefaultGenesis())
	require.NoError(t, k.PatchSupply(doc))
	require.Equal(t, "100060000001000000000000", doc.Get("app_state.bank.supply.0.amount").String())

	cfg := types.DefaultConfig()
	cfg.MinimalDenom = "uatom"
	k, _ = testkeeper.GetCustomTestnetifyKeeperWithMocks(t, cfg)
	require.ErrorIs(t, k.PatchSupply(newDocument(t, sample.DefaultGenesis())), types.ErrRecordNotFound)
}

func TestUpdateOperator(t *testing.T) {
	k, _ := testkeeper.GetTestnetifyKeeperWithMocks(t)
	doc := newDocument(t, sample.DefaultGenesis())

	// the operator only appears once the delegator has been substituted
	require.ErrorIs(t, k.UpdateOperator(doc), types.ErrRecordNotFound)

	_, err := k.SubstituteIdentities(doc, []keeper.Substitution{
		{Name: "delegator address", From: sample.Delegator, To: types.DefaultOperatorAddress},
	})
	require.NoError(t, err)
	require.NoError(t, k.UpdateOperator(doc))

	require.Equal(t, "60000000000001000000.000000000000000000", doc.Get("app_state.staking.delegations.4.shares").String())
	require.Equal(t, "60000000000001000000.000000000000000000",
		doc.Get("app_state.distribution.delegator_starting_infos.4.starting_info.stake").String())
	require.Equal(t, "100000000000001000000000", doc.Get("app_state.bank.balances.1.coins.1.amount").String())

	// the other delegations to the validator are untouched
	require.Equal(t, "1000000.000000000000000000", doc.Get("app_state.staking.delegations.3.shares").String())
	require.Equal(t, "1000000.000000000000000000", doc.Get("app_state.staking.delegations.5.shares").String())
}

func TestUpdateOperatorTruncatesShares(t *testing.T) {
	k, _ := testkeeper.GetTestnetifyKeeperWithMocks(t)
	op := types.DefaultOperatorAddress
	doc, err := types.NewDocument([]byte(`{"app_state": {
  "staking": {"delegations": [{"delegator_address": "` + op + `", "shares": "999.999999999999999999"}]},
  "distribution": {"delegator_starting_infos": [{"delegator_address": "` + op + `", "starting_info": {"stake": "999.5"}}]},
  "bank": {"balances": [{"address": "` + op + `", "coins": [{"denom": "nanolike", "amount": "0"}]}]}
}}`))
	require.NoError(t, err)

	require.NoError(t, k.UpdateOperator(doc))
	require.Equal(t, "60000000000000000999.000000000000000000", doc.Get("app_state.staking.delegations.0.shares").String())
	require.Equal(t, "60000000000000000999.000000000000000000",
		doc.Get("app_state.distribution.delegator_starting_infos.0.starting_info.stake").String())
	require.Equal(t, types.DefaultBalanceIncrease, doc.Get("app_state.bank.balances.0.coins.0.amount").String())
}

func TestUpdateValidator(t *testing.T) {
	k, _ := testkeeper.GetTestnetifyKeeperWithMocks(t)
	doc := newDocument(t, sample.DefaultGenesis())
	operator := testkeeper.LocalIdentity()

	target, err := k.GetValidators(doc)
	require.NoError(t, err)
	val1 := target[3]
	require.Equal(t, sample.TargetMoniker, val1.Moniker)

	// the consensus-layer entry is located by the operator's hex address
	require.ErrorIs(t, k.UpdateValidator(doc, val1, operator), types.ErrRecordNotFound)

	_, err = k.SubstituteIdentities(doc, []keeper.Substitution{
		{Name: "validator hex address", From: sample.TargetHexAddress, To: operator.HexAddress},
	})
	require.NoError(t, err)
	require.NoError(t, k.UpdateValidator(doc, val1, operator))

	staking := doc.Get("app_state.staking.validators.3")
	require.Equal(t, sample.LocalPubKey, staking.Get("consensus_pubkey.key").String())
	require.Equal(t, "60000000000003000000", staking.Get("tokens").String())
	require.Equal(t, "60000000000003000000.000000000000000000", staking.Get("delegator_shares").String())

	info := doc.Get("validators.3")
	require.Equal(t, sample.LocalHexAddress, info.Get("address").String())
	require.Equal(t, sample.LocalPubKey, info.Get("pub_key.value").String())
	require.Equal(t, "60000000000003", info.Get("power").String())

	require.Equal(t, "60000000000003", doc.Get("app_state.staking.last_validator_powers.3.power").String())
	require.Equal(t, gjson.String, doc.Get("app_state.staking.last_validator_powers.3.power").Type)

	// other validators keep their power
	require.Equal(t, "2", doc.Get("app_state.staking.last_validator_powers.2.power").String())
}

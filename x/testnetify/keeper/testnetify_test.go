package keeper_test

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/golang/mock/gomock"
	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	testkeeper "github.com/likecoin/testnetify/testutil/keeper"
	"github.com/likecoin/testnetify/testutil/sample"
	"github.com/likecoin/testnetify/x/testnetify/types"
)

func sumAmounts(t *testing.T, bz []byte, path string) sdk.Int {
	t.Helper()
	sum := sdk.ZeroInt()
	for _, v := range gjson.GetBytes(bz, path).Array() {
		amount, err := types.ParseAmount(v.String())
		require.NoError(t, err)
		sum = sum.Add(amount)
	}
	return sum
}

func sumBalances(t *testing.T, bz []byte, denom string) sdk.Int {
	t.Helper()
	sum := sdk.ZeroInt()
	for _, balance := range gjson.GetBytes(bz, types.PathBankBalances).Array() {
		for _, coin := range balance.Get("coins").Array() {
			if coin.Get("denom").String() != denom {
				continue
			}
			amount, err := types.ParseAmount(coin.Get("amount").String())
			require.NoError(t, err)
			sum = sum.Add(amount)
		}
	}
	return sum
}

func TestTestnetify(t *testing.T) {
	k, mocks := testkeeper.GetTestnetifyKeeperWithMocks(t)
	gomock.InOrder(testkeeper.GetMocksForTestnetify(mocks)...)

	original := sample.DefaultGenesis().Bytes()
	doc, err := types.NewDocument(original)
	require.NoError(t, err)

	report, err := k.Testnetify(doc)
	require.NoError(t, err)
	require.Equal(t, types.DefaultChainID, report.ChainID)
	require.Equal(t, sample.TargetOperator, report.ValidatorOperator)
	require.Equal(t, sample.TargetMoniker, report.ValidatorMoniker)
	require.Equal(t, sample.Delegator, report.Delegator)
	require.Equal(t, testkeeper.LocalIdentity(), report.Operator)
	require.Equal(t, []string{"likevaloper1shared"}, report.RejectedValidators)
	require.Equal(t, doc.Changes(), report.Changes)

	updated := doc.Bytes()
	op := types.DefaultOperatorAddress

	// identities
	require.Equal(t, types.DefaultChainID, gjson.GetBytes(updated, "chain_id").String())
	require.Equal(t, sample.LocalHexAddress, gjson.GetBytes(updated, "validators.3.address").String())
	require.Equal(t, sample.LocalPubKey, gjson.GetBytes(updated, "validators.3.pub_key.value").String())
	require.Equal(t, sample.LocalPubKey, gjson.GetBytes(updated, "app_state.staking.validators.3.consensus_pubkey.key").String())
	require.Equal(t, sample.LocalConsAddress, gjson.GetBytes(updated, "app_state.slashing.signing_infos.0.address").String())
	require.Equal(t, sample.LocalConsAddress,
		gjson.GetBytes(updated, "app_state.slashing.signing_infos.0.validator_signing_info.address").String())
	require.Equal(t, op, gjson.GetBytes(updated, "app_state.auth.accounts.3.address").String())
	require.Equal(t, types.DefaultOperatorPubKey, gjson.GetBytes(updated, "app_state.auth.accounts.3.pub_key.key").String())
	require.Equal(t, op, gjson.GetBytes(updated, "app_state.staking.delegations.4.delegator_address").String())
	require.Equal(t, op, gjson.GetBytes(updated, "app_state.distribution.delegator_starting_infos.4.delegator_address").String())
	require.Equal(t, op, gjson.GetBytes(updated, "app_state.bank.balances.1.address").String())

	// free text only mentioning the identities is left alone
	require.Equal(t,
		gjson.GetBytes(original, "app_state.gov.proposals.0.content.description").String(),
		gjson.GetBytes(updated, "app_state.gov.proposals.0.content.description").String())

	// amounts
	require.Equal(t, "60000000000003", gjson.GetBytes(updated, "validators.3.power").String())
	require.Equal(t, "60000000000003", gjson.GetBytes(updated, "app_state.staking.last_validator_powers.3.power").String())
	require.Equal(t, "60000000000011", gjson.GetBytes(updated, "app_state.staking.last_total_power").String())
	require.Equal(t, "60000000000003000000", gjson.GetBytes(updated, "app_state.staking.validators.3.tokens").String())
	require.Equal(t, "60000000000003000000.000000000000000000",
		gjson.GetBytes(updated, "app_state.staking.validators.3.delegator_shares").String())
	require.Equal(t, "60000000000001000000.000000000000000000",
		gjson.GetBytes(updated, "app_state.staking.delegations.4.shares").String())
	require.Equal(t, "100000000000001000000000", gjson.GetBytes(updated, "app_state.bank.balances.1.coins.1.amount").String())
	require.Equal(t, "60000000000011000000", gjson.GetBytes(updated, "app_state.bank.balances.2.coins.1.amount").String())
	require.Equal(t, "100060000001000000000000", gjson.GetBytes(updated, "app_state.bank.supply.0.amount").String())
	require.Equal(t, "180s", gjson.GetBytes(updated, types.PathGovVotingPeriod).String())

	// the aggregates move by as much as their parts
	cfg := k.Config()
	powers := types.PathLastValidatorPowers + ".#.power"
	require.Equal(t,
		sumAmounts(t, updated, powers).Sub(sumAmounts(t, original, powers)).String(),
		sumAmounts(t, updated, types.PathLastTotalPower).Sub(sumAmounts(t, original, types.PathLastTotalPower)).String())
	require.Equal(t, cfg.PowerIncrease.String(),
		sumAmounts(t, updated, powers).Sub(sumAmounts(t, original, powers)).String())

	tokens := types.PathStakingValidators + ".#.tokens"
	pool := "app_state.bank.balances.2.coins.1.amount"
	require.Equal(t,
		sumAmounts(t, updated, tokens).Sub(sumAmounts(t, original, tokens)).String(),
		sumAmounts(t, updated, pool).Sub(sumAmounts(t, original, pool)).String())

	supply := "app_state.bank.supply.0.amount"
	require.Equal(t,
		sumBalances(t, updated, sample.Denom).Sub(sumBalances(t, original, sample.Denom)).String(),
		sumAmounts(t, updated, supply).Sub(sumAmounts(t, original, supply)).String())

	// nothing else changed
	var changed []string
	for _, c := range types.DiffDocuments(original, updated) {
		changed = append(changed, c.Path)
	}
	expected := []string{
		"app_state.auth.accounts.3.address",
		"app_state.auth.accounts.3.pub_key.key",
		"app_state.bank.balances.1.address",
		"app_state.bank.balances.1.coins.1.amount",
		"app_state.bank.balances.2.coins.1.amount",
		"app_state.bank.supply.0.amount",
		"app_state.distribution.delegator_starting_infos.4.delegator_address",
		"app_state.distribution.delegator_starting_infos.4.starting_info.stake",
		"app_state.gov.voting_params.voting_period",
		"app_state.slashing.signing_infos.0.address",
		"app_state.slashing.signing_infos.0.validator_signing_info.address",
		"app_state.staking.delegations.4.delegator_address",
		"app_state.staking.delegations.4.shares",
		"app_state.staking.last_total_power",
		"app_state.staking.last_validator_powers.3.power",
		"app_state.staking.validators.3.consensus_pubkey.key",
		"app_state.staking.validators.3.delegator_shares",
		"app_state.staking.validators.3.tokens",
		"chain_id",
		"validators.3.address",
		"validators.3.power",
		"validators.3.pub_key.value",
	}
	sort.Strings(expected)
	if diff := pretty.Compare(expected, changed); diff != "" {
		t.Errorf("changed paths (-want +got):\n%s", diff)
	}
}

func TestTestnetifyNeverSelectsJailed(t *testing.T) {
	k, mocks := testkeeper.GetTestnetifyKeeperWithMocks(t)
	gomock.InOrder(testkeeper.GetMocksForTestnetify(mocks)...)

	doc := newDocument(t, sample.DefaultGenesis())
	_, err := k.Testnetify(doc)
	require.NoError(t, err)

	jailed := doc.Get("app_state.staking.validators.0")
	require.True(t, jailed.Get("jailed").Bool())
	require.Equal(t, "5000000", jailed.Get("tokens").String())
	require.Equal(t, "5", doc.Get("validators.0.power").String())
}

func TestTestnetifyDaemonError(t *testing.T) {
	k, mocks := testkeeper.GetTestnetifyKeeperWithMocks(t)
	mocks.MockAddressConverter.EXPECT().LocalValidator().
		Return(types.OperatorIdentity{}, sdkerrors.Wrap(types.ErrDaemonExec, "liked: not found"))

	doc := newDocument(t, sample.DefaultGenesis())
	before := string(doc.Bytes())
	_, err := k.Testnetify(doc)
	require.ErrorIs(t, err, types.ErrDaemonExec)
	require.Equal(t, before, string(doc.Bytes()))
}

func writeGenesis(t *testing.T, bz []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "genesis.json")
	require.NoError(t, os.WriteFile(path, bz, 0o600))
	return path
}

func TestTestnetifyFile(t *testing.T) {
	for _, dryRun := range []bool{false, true} {
		k, mocks := testkeeper.GetTestnetifyKeeperWithMocks(t)
		gomock.InOrder(testkeeper.GetMocksForTestnetify(mocks)...)

		original := sample.DefaultGenesis().Bytes()
		path := writeGenesis(t, original)

		report, err := k.TestnetifyFile(path, dryRun)
		require.NoError(t, err)
		require.Equal(t, path, report.GenesisFile)
		require.Equal(t, path+types.BackupSuffix, report.BackupFile)
		require.Equal(t, dryRun, report.DryRun)

		backup, err := os.ReadFile(report.BackupFile)
		require.NoError(t, err)
		require.Equal(t, original, backup)

		written, err := os.ReadFile(path)
		require.NoError(t, err)
		if dryRun {
			require.Equal(t, original, written)
			continue
		}
		require.Equal(t, types.DefaultChainID, gjson.GetBytes(written, "chain_id").String())
		require.Len(t, types.DiffDocuments(original, written), 22)

		fi, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
	}
}

func TestTestnetifyFileNoCandidate(t *testing.T) {
	k, mocks := testkeeper.GetTestnetifyKeeperWithMocks(t)
	gomock.InOrder(testkeeper.GetMocksForLocalValidator(mocks)...)

	g := twoValidatorGenesis()
	g.AddDelegation("like1both", "likevaloper1a", "1000")
	g.AddDelegation("like1both", "likevaloper1b", "1000")
	g.AddAccount("like1both", "")
	original := g.Bytes()
	path := writeGenesis(t, original)

	report, err := k.TestnetifyFile(path, false)
	require.ErrorIs(t, err, types.ErrNoCandidate)
	require.Equal(t, []string{"likevaloper1a"}, report.RejectedValidators)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, original, written)
	require.FileExists(t, path+types.BackupSuffix)
}

func TestTestnetifyFileErrors(t *testing.T) {
	k, _ := testkeeper.GetTestnetifyKeeperWithMocks(t)

	_, err := k.TestnetifyFile(filepath.Join(t.TempDir(), "missing.json"), false)
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))

	path := writeGenesis(t, []byte(`{"chain_id": `))
	_, err = k.TestnetifyFile(path, false)
	require.ErrorIs(t, err, types.ErrInvalidGenesis)
	require.NoFileExists(t, path+types.BackupSuffix)
}

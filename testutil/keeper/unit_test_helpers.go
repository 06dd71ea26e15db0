package keeper

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/likecoin/testnetify/testutil/mocks"
	"github.com/likecoin/testnetify/testutil/sample"
	"github.com/likecoin/testnetify/x/testnetify/keeper"
	"github.com/likecoin/testnetify/x/testnetify/types"
)

// MockedDaemon holds the mocks a testnetify keeper or converter is built on
type MockedDaemon struct {
	MockAddressConverter *mocks.MockAddressConverter
	MockRunner           *mocks.MockRunner
}

// NewMockedDaemon instantiates all daemon mocks
func NewMockedDaemon(ctrl *gomock.Controller) MockedDaemon {
	return MockedDaemon{
		MockAddressConverter: mocks.NewMockAddressConverter(ctrl),
		MockRunner:           mocks.NewMockRunner(ctrl),
	}
}

// Constructs a testnetify keeper with the default config and a mocked address converter.
func GetTestnetifyKeeperWithMocks(t testing.TB) (keeper.Keeper, MockedDaemon) {
	return GetCustomTestnetifyKeeperWithMocks(t, types.DefaultConfig())
}

// Constructs a testnetify keeper with a custom config and a mocked address converter.
func GetCustomTestnetifyKeeperWithMocks(t testing.TB, cfg types.Config) (keeper.Keeper, MockedDaemon) {
	ctrl := gomock.NewController(t)
	daemonMocks := NewMockedDaemon(ctrl)
	k := keeper.NewKeeper(cfg, daemonMocks.MockAddressConverter, log.NewNopLogger())
	return k, daemonMocks
}

// LocalIdentity is the identity of the node key in the sample daemon outputs
func LocalIdentity() types.OperatorIdentity {
	return types.OperatorIdentity{
		ConsensusPubKey:  sample.LocalPubKey,
		HexAddress:       sample.LocalHexAddress,
		AccountAddress:   sample.LocalAccAddress,
		ConsensusAddress: sample.LocalConsAddress,
	}
}

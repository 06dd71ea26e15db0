package keeper

import (
	"github.com/golang/mock/gomock"

	"github.com/likecoin/testnetify/testutil/sample"
)

//
// A file containing groups of commonly used mock expectations.
// Note: Each group of mock expectations is associated with a single method
// that may be called during unit tests.
//

// GetMocksForLocalValidator returns mock expectations needed to call LocalValidator().
func GetMocksForLocalValidator(mocks MockedDaemon) []*gomock.Call {
	return []*gomock.Call{
		mocks.MockAddressConverter.EXPECT().LocalValidator().Return(LocalIdentity(), nil).Times(1),
	}
}

// GetMocksForTestnetify returns mock expectations needed to call Testnetify() on the sample genesis.
func GetMocksForTestnetify(mocks MockedDaemon) []*gomock.Call {
	expectations := GetMocksForLocalValidator(mocks)
	return append(expectations,
		mocks.MockAddressConverter.EXPECT().HexToAccAddress(sample.TargetHexAddress).
			Return(sample.TargetAccAddress, nil).Times(1),
		mocks.MockAddressConverter.EXPECT().ConvertPrefix(sample.TargetAccAddress, sample.ConsensusPrefix).
			Return(sample.TargetConsAddress, nil).Times(1),
	)
}

// GetMocksForDaemonLocalValidator returns the daemon calls a Converter makes to resolve the
// local node identity. home is the expected --home value, empty if none.
func GetMocksForDaemonLocalValidator(mocks MockedDaemon, daemon, home string) []*gomock.Call {
	return []*gomock.Call{
		mocks.MockRunner.EXPECT().Run(daemon, withHome(home, "tendermint", "show-validator")...).
			Return([]byte(sample.ShowValidatorOutput+"\n"), nil, nil).Times(1),
		mocks.MockRunner.EXPECT().Run(daemon, withHome(home, "debug", "pubkey", sample.ShowValidatorOutput)...).
			Return(nil, []byte(sample.PubKeyOutput(sample.LocalHexAddress)), nil).Times(1),
		mocks.MockRunner.EXPECT().Run(daemon, withHome(home, "debug", "addr", sample.LocalHexAddress)...).
			Return(nil, []byte(sample.AddrOutput(sample.LocalHexAddress, sample.LocalAccAddress)), nil).Times(1),
		mocks.MockRunner.EXPECT().Run(daemon, withHome(home, "debug", "convert-prefix", sample.LocalAccAddress, "-p", sample.ConsensusPrefix)...).
			Return(nil, []byte(sample.ConvertPrefixOutput(sample.LocalConsAddress)), nil).Times(1),
	}
}

// GetMocksForDaemonTestnetify returns every daemon call made when testnetifying the sample genesis.
func GetMocksForDaemonTestnetify(mocks MockedDaemon, daemon, home string) []*gomock.Call {
	expectations := GetMocksForDaemonLocalValidator(mocks, daemon, home)
	return append(expectations,
		mocks.MockRunner.EXPECT().Run(daemon, withHome(home, "debug", "addr", sample.TargetHexAddress)...).
			Return(nil, []byte(sample.AddrOutput(sample.TargetHexAddress, sample.TargetAccAddress)), nil).Times(1),
		mocks.MockRunner.EXPECT().Run(daemon, withHome(home, "debug", "convert-prefix", sample.TargetAccAddress, "-p", sample.ConsensusPrefix)...).
			Return(nil, []byte(sample.ConvertPrefixOutput(sample.TargetConsAddress)), nil).Times(1),
	)
}

func withHome(home string, args ...string) []interface{} {
	if home != "" {
		args = append(args, "--home", home)
	}
	matchers := make([]interface{}, len(args))
	for i, a := range args {
		matchers[i] = a
	}
	return matchers
}

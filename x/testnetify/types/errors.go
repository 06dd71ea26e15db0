package types

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// testnetify sentinel errors
var (
	ErrNoCandidate      = sdkerrors.Register(ModuleName, 2, "no suitable validator and delegator")
	ErrUnparsableOutput = sdkerrors.Register(ModuleName, 3, "unparsable daemon output")
	ErrRecordNotFound   = sdkerrors.Register(ModuleName, 4, "genesis record not found")
	ErrInvalidGenesis   = sdkerrors.Register(ModuleName, 5, "invalid genesis document")
	ErrInvalidConfig    = sdkerrors.Register(ModuleName, 6, "invalid testnetify config")
	ErrDaemonExec       = sdkerrors.Register(ModuleName, 7, "daemon command failed")
)

package keeper

import (
	"github.com/tendermint/tendermint/libs/log"

	"github.com/likecoin/testnetify/x/testnetify/types"
)

// Keeper applies the testnetify mutations to a genesis document.
type Keeper struct {
	cfg       types.Config
	converter types.AddressConverter
	logger    log.Logger
}

// NewKeeper creates a new testnetify Keeper instance
func NewKeeper(cfg types.Config, converter types.AddressConverter, logger log.Logger) Keeper {
	return Keeper{
		cfg:       cfg,
		converter: converter,
		logger:    logger,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", "x/"+types.ModuleName)
}

// Config returns the configuration the keeper was created with
func (k Keeper) Config() types.Config {
	return k.cfg
}

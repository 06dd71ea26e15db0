package cli

import (
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/likecoin/testnetify/x/testnetify/daemon"
)

// Context carries what the commands share: the config source, the logger
// (set once flags are parsed) and the runner used to call the daemon.
type Context struct {
	Viper  *viper.Viper
	Logger log.Logger
	Runner daemon.Runner
}

// NewContext returns a Context calling the real daemon and logging nowhere
func NewContext() *Context {
	return &Context{
		Viper:  viper.New(),
		Logger: log.NewNopLogger(),
		Runner: daemon.ExecRunner{},
	}
}

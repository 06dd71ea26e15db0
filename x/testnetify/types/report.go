package types

// Change is a single value edited in the genesis document
type Change struct {
	Path string `yaml:"path" json:"path"`
	Old  string `yaml:"old,omitempty" json:"old,omitempty"`
	New  string `yaml:"new,omitempty" json:"new,omitempty"`
}

// Report summarizes a testnetify run
type Report struct {
	GenesisFile string `yaml:"genesis_file"`
	BackupFile  string `yaml:"backup_file"`
	DryRun      bool   `yaml:"dry_run"`
	ChainID     string `yaml:"chain_id"`

	ValidatorOperator string `yaml:"validator_operator"`
	ValidatorMoniker  string `yaml:"validator_moniker"`
	Delegator         string `yaml:"delegator"`

	Operator OperatorIdentity `yaml:"operator"`

	// RejectedValidators lists validators skipped for lack of a single-delegation delegator
	RejectedValidators []string `yaml:"rejected_validators,omitempty"`

	Changes []Change `yaml:"changes"`
}

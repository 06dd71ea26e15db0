package types

// AddressConverter resolves keys and addresses through the chain binary.
type AddressConverter interface {
	// LocalValidator resolves the identity of the local node's consensus key
	LocalValidator() (OperatorIdentity, error)
	// HexToAccAddress encodes a hex address with the account prefix
	HexToAccAddress(hex string) (string, error)
	// ConvertPrefix re-encodes a bech32 address with the given prefix
	ConvertPrefix(address, prefix string) (string, error)
}

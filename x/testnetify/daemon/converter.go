package daemon

import (
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/cosmos/cosmos-sdk/types/bech32"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/tendermint/tendermint/crypto/ed25519"
	"github.com/tendermint/tendermint/libs/log"
	"github.com/tidwall/gjson"

	"github.com/likecoin/testnetify/x/testnetify/types"
)

const (
	pubKeyAddressMarker = "Address: "
	accAddressMarker    = "Acc: "
	valAddressMarker    = "Bech32 Val"
)

// ed25519 key type names printed by show-validator across SDK versions
var ed25519KeyTypes = map[string]bool{
	"/cosmos.crypto.ed25519.PubKey": true,
	"tendermint/PubKeyEd25519":      true,
}

// Converter derives keys and addresses by calling the chain binary.
// Every call is synchronous and output formats are assumed stable:
// anything unexpected is reported as ErrUnparsableOutput.
type Converter struct {
	runner          Runner
	daemon          string
	home            string
	accountPrefix   string
	consensusPrefix string
	logger          log.Logger
}

var _ types.AddressConverter = (*Converter)(nil)

// NewConverter returns a Converter calling the daemon configured in cfg
func NewConverter(runner Runner, cfg types.Config, logger log.Logger) *Converter {
	return &Converter{
		runner:          runner,
		daemon:          cfg.Daemon,
		home:            cfg.Home,
		accountPrefix:   cfg.AccountPrefix,
		consensusPrefix: cfg.ConsensusPrefix,
		logger:          logger.With("module", "daemon"),
	}
}

func (c *Converter) run(args ...string) (stdout, stderr string, err error) {
	if c.home != "" {
		args = append(args, "--home", c.home)
	}
	c.logger.Debug("running daemon", "daemon", c.daemon, "args", strings.Join(args, " "))

	outBz, errBz, err := c.runner.Run(c.daemon, args...)
	if err != nil {
		return "", "", sdkerrors.Wrapf(types.ErrDaemonExec, "%s %s: %s: %s",
			c.daemon, strings.Join(args, " "), err, strings.TrimSpace(string(errBz)))
	}
	return string(outBz), string(errBz), nil
}

// debug commands print through cobra's Println, which writes to stderr
func (c *Converter) runDebug(args ...string) (string, error) {
	stdout, stderr, err := c.run(append([]string{"debug"}, args...)...)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(stderr) != "" {
		return stderr, nil
	}
	return stdout, nil
}

// ShowValidator returns the raw `tendermint show-validator` output and the base64 key in it.
func (c *Converter) ShowValidator() (output, key, keyType string, err error) {
	stdout, stderr, err := c.run("tendermint", "show-validator")
	if err != nil {
		return "", "", "", err
	}
	output = strings.TrimSpace(stdout)
	if output == "" {
		output = strings.TrimSpace(stderr)
	}
	if !gjson.Valid(output) {
		return "", "", "", sdkerrors.Wrapf(types.ErrUnparsableOutput, "show-validator: %q", output)
	}
	fields := gjson.Parse(output).Map()
	key = fields["key"].String()
	if key == "" {
		return "", "", "", sdkerrors.Wrapf(types.ErrUnparsableOutput, "show-validator: no key in %q", output)
	}
	return output, key, fields["@type"].String(), nil
}

// PubKeyAddress returns the upper case hex address of a public key as printed by show-validator.
func (c *Converter) PubKeyAddress(pubKeyJSON string) (string, error) {
	out, err := c.runDebug("pubkey", pubKeyJSON)
	if err != nil {
		return "", err
	}
	line := firstLine(out)
	if !strings.HasPrefix(line, pubKeyAddressMarker) {
		return "", sdkerrors.Wrapf(types.ErrUnparsableOutput, "debug pubkey: %q", line)
	}
	addr := strings.ToUpper(strings.TrimSpace(line[len(pubKeyAddressMarker):]))
	if bz, err := hex.DecodeString(addr); err != nil || len(bz) == 0 {
		return "", sdkerrors.Wrapf(types.ErrUnparsableOutput, "debug pubkey: %q is not a hex address", addr)
	}
	return addr, nil
}

// HexToAccAddress implements types.AddressConverter
func (c *Converter) HexToAccAddress(hexAddr string) (string, error) {
	out, err := c.runDebug("addr", hexAddr)
	if err != nil {
		return "", err
	}
	start := strings.Index(out, accAddressMarker)
	end := strings.Index(out, valAddressMarker)
	if start < 0 || end < start+len(accAddressMarker) {
		return "", sdkerrors.Wrapf(types.ErrUnparsableOutput, "debug addr: %q", out)
	}
	addr := strings.TrimSpace(out[start+len(accAddressMarker) : end])
	if err := checkPrefix(addr, c.accountPrefix); err != nil {
		return "", sdkerrors.Wrapf(err, "debug addr %s", hexAddr)
	}
	return addr, nil
}

// ConvertPrefix implements types.AddressConverter
func (c *Converter) ConvertPrefix(address, prefix string) (string, error) {
	out, err := c.runDebug("convert-prefix", address, "-p", prefix)
	if err != nil {
		return "", err
	}
	converted := firstLine(out)
	if err := checkPrefix(converted, prefix); err != nil {
		return "", sdkerrors.Wrapf(err, "debug convert-prefix %s", address)
	}
	return converted, nil
}

// LocalValidator resolves the identity of the node's own consensus key.
func (c *Converter) LocalValidator() (types.OperatorIdentity, error) {
	output, key, keyType, err := c.ShowValidator()
	if err != nil {
		return types.OperatorIdentity{}, err
	}
	hexAddr, err := c.PubKeyAddress(output)
	if err != nil {
		return types.OperatorIdentity{}, err
	}
	if ed25519KeyTypes[keyType] {
		if err := checkEd25519Address(key, hexAddr); err != nil {
			return types.OperatorIdentity{}, err
		}
	}
	accAddr, err := c.HexToAccAddress(hexAddr)
	if err != nil {
		return types.OperatorIdentity{}, err
	}
	consAddr, err := c.ConvertPrefix(accAddr, c.consensusPrefix)
	if err != nil {
		return types.OperatorIdentity{}, err
	}

	identity := types.OperatorIdentity{
		ConsensusPubKey:  key,
		HexAddress:       hexAddr,
		AccountAddress:   accAddr,
		ConsensusAddress: consAddr,
	}
	c.logger.Info("resolved local validator", "hex", hexAddr, "consensus_address", consAddr)
	return identity, nil
}

func checkEd25519Address(key, hexAddr string) error {
	bz, err := base64.StdEncoding.DecodeString(key)
	if err != nil || len(bz) != ed25519.PubKeySize {
		return sdkerrors.Wrapf(types.ErrUnparsableOutput, "show-validator: %q is not an ed25519 key", key)
	}
	derived := ed25519.PubKey(bz).Address().String()
	if !strings.EqualFold(derived, hexAddr) {
		return sdkerrors.Wrapf(types.ErrUnparsableOutput,
			"debug pubkey reported address %s, key %s has address %s", hexAddr, key, derived)
	}
	return nil
}

func checkPrefix(addr, prefix string) error {
	hrp, _, err := bech32.DecodeAndConvert(addr)
	if err != nil {
		return sdkerrors.Wrapf(types.ErrUnparsableOutput, "%q is not a bech32 address: %s", addr, err)
	}
	if hrp != prefix {
		return sdkerrors.Wrapf(types.ErrUnparsableOutput, "%s has prefix %s, expected %s", addr, hrp, prefix)
	}
	return nil
}

func firstLine(s string) string {
	s = strings.TrimLeft(s, "\r\n")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

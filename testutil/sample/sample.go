package sample

import (
	"fmt"
	"strings"
)

// ShowValidatorOutput is what `tendermint show-validator` prints for the local node key
const ShowValidatorOutput = `{"@type":"/cosmos.crypto.ed25519.PubKey","key":"` + LocalPubKey + `"}`

// PubKeyOutput mimics `debug pubkey` for a key with the given hex address
func PubKeyOutput(hexAddr string) string {
	return fmt.Sprintf("Address: %s\nPubKey Hex: 1624de6420%s\n", hexAddr, strings.Repeat("0", 64))
}

// AddrOutput mimics `debug addr` for a hex address
func AddrOutput(hexAddr, accAddr string) string {
	return fmt.Sprintf("Address: [%d bytes]\nAddress (hex): %s\nBech32 Acc: %s\nBech32 Val: %s\n",
		len(hexAddr)/2, hexAddr, accAddr, strings.Replace(accAddr, "like1", "likevaloper1", 1))
}

// ConvertPrefixOutput mimics `debug convert-prefix`
func ConvertPrefixOutput(addr string) string {
	return addr + "\n"
}

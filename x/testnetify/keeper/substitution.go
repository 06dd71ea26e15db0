package keeper

import (
	"github.com/likecoin/testnetify/x/testnetify/types"
)

// Substitution replaces one identity string with another everywhere in the genesis.
type Substitution struct {
	Name string
	From string
	To   string
}

// IdentitySubstitutions lists the identity strings of the candidate to be replaced
// by the operator's. targetConsAddr is the candidate's consensus bech32 address.
func (k Keeper) IdentitySubstitutions(
	candidate types.Candidate,
	targetConsAddr string,
	operator types.OperatorIdentity,
) []Substitution {
	subs := []Substitution{
		{Name: "validator consensus address", From: targetConsAddr, To: operator.ConsensusAddress},
		{Name: "validator hex address", From: candidate.ValidatorInfo.Address, To: operator.HexAddress},
		{Name: "delegator address", From: candidate.Delegator.Address, To: k.cfg.OperatorAddress},
	}
	if candidate.Delegator.PubKey != "" {
		subs = append(subs, Substitution{Name: "delegator public key", From: candidate.Delegator.PubKey, To: k.cfg.OperatorPubKey})
	}
	return subs
}

// SubstituteIdentities replaces every string value of the document equal to a
// substitution's From with its To. Values that only contain an identity as a
// substring are left alone. It returns the number of replaced values per substitution name.
func (k Keeper) SubstituteIdentities(doc *types.Document, subs []Substitution) (map[string]int, error) {
	replacements := make(map[string]Substitution, len(subs))
	for _, s := range subs {
		if s.From == "" || s.From == s.To {
			continue
		}
		replacements[s.From] = s
	}

	type edit struct {
		path string
		sub  Substitution
	}
	var edits []edit
	doc.WalkStrings(func(path, value string) {
		if s, ok := replacements[value]; ok {
			edits = append(edits, edit{path: path, sub: s})
		}
	})

	counts := make(map[string]int, len(subs))
	for _, e := range edits {
		if err := doc.SetString(e.path, e.sub.To); err != nil {
			return counts, err
		}
		counts[e.sub.Name]++
		k.Logger().Debug("replaced identity", "kind", e.sub.Name, "path", e.path)
	}

	for _, s := range subs {
		k.Logger().Info("replaced "+s.Name, "from", s.From, "to", s.To, "occurrences", counts[s.Name])
	}
	return counts, nil
}

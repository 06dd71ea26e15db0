package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/tidwall/gjson"

	"github.com/likecoin/testnetify/x/testnetify/types"
)

// addToAmount adds inc to the integer amount at path and returns the old and new values.
func addToAmount(doc *types.Document, path string, inc sdk.Int) (string, string, error) {
	cur, err := doc.MustGet(path)
	if err != nil {
		return "", "", err
	}
	amount, err := types.ParseAmount(cur.String())
	if err != nil {
		return "", "", sdkerrors.Wrapf(types.ErrInvalidGenesis, "%s: %s", path, err)
	}
	updated := amount.Add(inc).String()
	if err := doc.SetAmount(path, updated); err != nil {
		return "", "", err
	}
	return cur.String(), updated, nil
}

// addToShares truncates the decimal amount at path to an integer, adds inc,
// and stores it back with 18 fractional digits.
func addToShares(doc *types.Document, path string, inc sdk.Int) (string, string, error) {
	cur, err := doc.MustGet(path)
	if err != nil {
		return "", "", err
	}
	shares, err := sdk.NewDecFromStr(cur.String())
	if err != nil {
		return "", "", sdkerrors.Wrapf(types.ErrInvalidGenesis, "%s: %s", path, err)
	}
	updated := sdk.NewDecFromInt(shares.TruncateInt().Add(inc)).String()
	if err := doc.SetAmount(path, updated); err != nil {
		return "", "", err
	}
	return cur.String(), updated, nil
}

// findIndex returns the index of the first element of the array at path matching fn.
func findIndex(doc *types.Document, path, what string, fn func(v gjson.Result) bool) (int, error) {
	found := -1
	err := doc.ForEach(path, func(i int, v gjson.Result) bool {
		if fn(v) {
			found = i
			return false
		}
		return true
	})
	if err != nil {
		return -1, err
	}
	if found < 0 {
		return -1, sdkerrors.Wrapf(types.ErrRecordNotFound, "%s in %s", what, path)
	}
	return found, nil
}

// coinAmountPath returns the path of the amount of denom in the coin list at coinsPath
func coinAmountPath(doc *types.Document, coinsPath, denom string) (string, error) {
	i, err := findIndex(doc, coinsPath, "denom "+denom, func(v gjson.Result) bool {
		return v.Get("denom").String() == denom
	})
	if err != nil {
		return "", err
	}
	return indexPath(coinsPath, i, "amount"), nil
}

func elementPath(path string, i int) string {
	return fmt.Sprintf("%s.%d", path, i)
}

func indexPath(path string, i int, field string) string {
	return elementPath(path, i) + "." + field
}

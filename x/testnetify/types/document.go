package types

import (
	"sort"
	"strconv"
	"strings"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Document is a genesis JSON document edited in place by path.
// Edits keep every byte outside of the edited values untouched.
type Document struct {
	bz      []byte
	changes []Change
}

// NewDocument wraps raw genesis bytes after checking they are valid JSON
func NewDocument(bz []byte) (*Document, error) {
	if !gjson.ValidBytes(bz) {
		return nil, sdkerrors.Wrap(ErrInvalidGenesis, "not a valid JSON document")
	}
	if !gjson.ParseBytes(bz).IsObject() {
		return nil, sdkerrors.Wrap(ErrInvalidGenesis, "top level value is not an object")
	}
	return &Document{bz: bz}, nil
}

// Bytes returns the current document
func (d *Document) Bytes() []byte {
	return d.bz
}

// Changes returns every edit applied so far, in order
func (d *Document) Changes() []Change {
	return d.changes
}

// Get returns the value at path
func (d *Document) Get(path string) gjson.Result {
	return gjson.GetBytes(d.bz, path)
}

// MustGet returns the value at path, or ErrRecordNotFound if there is none
func (d *Document) MustGet(path string) (gjson.Result, error) {
	res := d.Get(path)
	if !res.Exists() {
		return res, sdkerrors.Wrapf(ErrRecordNotFound, "%s", path)
	}
	return res, nil
}

// ForEach calls fn with the index and value of every element of the array at path.
// Iteration stops when fn returns false.
func (d *Document) ForEach(path string, fn func(i int, v gjson.Result) bool) error {
	arr, err := d.MustGet(path)
	if err != nil {
		return err
	}
	if !arr.IsArray() {
		return sdkerrors.Wrapf(ErrInvalidGenesis, "%s is not an array", path)
	}
	i := 0
	arr.ForEach(func(_, v gjson.Result) bool {
		cont := fn(i, v)
		i++
		return cont
	})
	return nil
}

// SetString sets the existing value at path to a JSON string.
func (d *Document) SetString(path, value string) error {
	cur, err := d.MustGet(path)
	if err != nil {
		return err
	}
	bz, err := sjson.SetBytes(d.bz, path, value)
	if err != nil {
		return sdkerrors.Wrapf(ErrInvalidGenesis, "set %s: %s", path, err)
	}
	d.record(path, cur.String(), value)
	d.bz = bz
	return nil
}

// SetAmount sets the existing value at path to an integer or decimal amount,
// keeping the JSON type of the current value.
func (d *Document) SetAmount(path, amount string) error {
	cur, err := d.MustGet(path)
	if err != nil {
		return err
	}
	if cur.Type != gjson.Number {
		return d.SetString(path, amount)
	}
	bz, err := sjson.SetRawBytes(d.bz, path, []byte(amount))
	if err != nil {
		return sdkerrors.Wrapf(ErrInvalidGenesis, "set %s: %s", path, err)
	}
	d.record(path, cur.String(), amount)
	d.bz = bz
	return nil
}

func (d *Document) record(path, old, updated string) {
	d.changes = append(d.changes, Change{Path: path, Old: old, New: updated})
}

// WalkStrings calls fn with the escaped path and value of every string value in the document.
func (d *Document) WalkStrings(fn func(path, value string)) {
	walkLeaves(gjson.ParseBytes(d.bz), "", func(path string, v gjson.Result) {
		if v.Type == gjson.String {
			fn(path, v.String())
		}
	})
}

func walkLeaves(r gjson.Result, path string, fn func(path string, v gjson.Result)) {
	switch {
	case r.IsObject():
		r.ForEach(func(k, v gjson.Result) bool {
			walkLeaves(v, joinPath(path, EscapePathComponent(k.String())), fn)
			return true
		})
	case r.IsArray():
		i := 0
		r.ForEach(func(_, v gjson.Result) bool {
			walkLeaves(v, joinPath(path, strconv.Itoa(i)), fn)
			i++
			return true
		})
	default:
		fn(path, r)
	}
}

func joinPath(parent, comp string) string {
	if parent == "" {
		return comp
	}
	return parent + "." + comp
}

// EscapePathComponent escapes an object key so it can be used as a single gjson/sjson path component.
func EscapePathComponent(comp string) string {
	var sb strings.Builder
	for i := 0; i < len(comp); i++ {
		switch comp[i] {
		case '\\', '.', '*', '?', '|', '#', '@', '!', '=', '<', '>', '%', ':', '"':
			sb.WriteByte('\\')
		}
		sb.WriteByte(comp[i])
	}
	return sb.String()
}

// DiffDocuments lists every leaf whose raw value differs between a and b, sorted by path.
// Leaves only present on one side are reported with the other side empty.
func DiffDocuments(a, b []byte) []Change {
	left := flatten(a)
	right := flatten(b)

	var changes []Change
	for path, l := range left {
		r, ok := right[path]
		switch {
		case !ok:
			changes = append(changes, Change{Path: path, Old: l.Raw})
		case l.Raw != r.Raw:
			changes = append(changes, Change{Path: path, Old: l.Raw, New: r.Raw})
		}
	}
	for path, r := range right {
		if _, ok := left[path]; !ok {
			changes = append(changes, Change{Path: path, New: r.Raw})
		}
	}
	sort.Slice(changes, func(i, j int) bool {
		return changes[i].Path < changes[j].Path
	})
	return changes
}

func flatten(bz []byte) map[string]gjson.Result {
	leaves := make(map[string]gjson.Result)
	walkLeaves(gjson.ParseBytes(bz), "", func(path string, v gjson.Result) {
		leaves[path] = v
	})
	return leaves
}

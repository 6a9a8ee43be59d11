// Package record decodes share records into types.ShareSet and encodes them
// back. A record looks like:
//
//	{
//	  "keys": {"n": 4, "k": 3},
//	  "1": {"base": "10", "value": "4"},
//	  "2": {"base": "2", "value": "111"},
//	  ...
//	}
package record

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"go.dedis.ch/sssrecon/types"
	"golang.org/x/xerrors"
)

// KeysField is the name of the field holding n and k.
const KeysField = "keys"

type keysEntry struct {
	N *int `json:"n" yaml:"n"`
	K *int `json:"k" yaml:"k"`
}

type shareEntry struct {
	Base  *baseValue   `json:"base" yaml:"base"`
	Value *digitsValue `json:"value" yaml:"value"`
}

// ParseFile reads a record from disk. Files ending in .yaml or .yml are
// decoded as YAML, anything else as JSON.
func ParseFile(path string) (types.ShareSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ShareSet{}, xerrors.Errorf("failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Parse(data)
	}
}

// build turns the decoded entries into a ShareSet. keys may be nil when the
// document has no keys field.
func build(keys *keysEntry, entries map[string]shareEntry) (types.ShareSet, error) {
	if keys == nil {
		return types.ShareSet{}, malformed("missing %q object", KeysField)
	}

	set := types.ShareSet{Shares: make(map[int]types.Share, len(entries))}
	if keys.N != nil {
		set.N = *keys.N
	}
	// an absent k is left to 0 and reported as MissingThreshold by the pipeline
	if keys.K != nil {
		set.K = *keys.K
	}

	for field, entry := range entries {
		key, err := parseKey(field)
		if err != nil {
			return types.ShareSet{}, err
		}
		if _, ok := set.Shares[key]; ok {
			return types.ShareSet{}, malformed("share key %d appears more than once", key).WithKey(key)
		}
		if entry.Base == nil {
			return types.ShareSet{}, malformed("missing base").WithKey(key)
		}
		if entry.Value == nil {
			return types.ShareSet{}, malformed("missing value").WithKey(key)
		}

		set.Shares[key] = types.Share{
			Key:    key,
			Base:   int(*entry.Base),
			Digits: string(*entry.Value),
		}
	}

	log.Debug().Msgf("decoded record %s", set)

	return set, nil
}

// parseKey accepts positive base-10 integers only.
func parseKey(field string) (int, error) {
	if field == "" {
		return 0, malformed("empty share key")
	}
	for _, c := range field {
		if c < '0' || c > '9' {
			return 0, malformed("share key %q is not a positive integer", field)
		}
	}

	key, err := strconv.Atoi(field)
	if err != nil {
		return 0, malformed("share key %q is out of range", field)
	}
	if key <= 0 {
		return 0, malformed("share key %q is not a positive integer", field)
	}
	return key, nil
}

func malformed(format string, a ...interface{}) *types.Error {
	return types.NewError(types.KindMalformedRecord, format, a...)
}

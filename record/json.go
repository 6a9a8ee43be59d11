package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"go.dedis.ch/sssrecon/types"
	"golang.org/x/xerrors"
)

// baseValue is a radix written either as a JSON string or a JSON number.
type baseValue int

// UnmarshalJSON implements json.Unmarshaler.
func (b *baseValue) UnmarshalJSON(data []byte) error {
	text := string(data)
	if len(data) > 0 && data[0] == '"' {
		err := json.Unmarshal(data, &text)
		if err != nil {
			return malformed("base %s is not a valid string", data)
		}
	}

	v, err := strconv.Atoi(text)
	if err != nil {
		return malformed("base %s is not an integer", data)
	}
	*b = baseValue(v)
	return nil
}

// digitsValue is a digit string. JSON requires it to be quoted.
type digitsValue string

// UnmarshalJSON implements json.Unmarshaler.
func (d *digitsValue) UnmarshalJSON(data []byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return malformed("value %s is not a string", data)
	}
	*d = digitsValue(s)
	return nil
}

// Parse decodes a JSON record.
func Parse(data []byte) (types.ShareSet, error) {
	var raw map[string]json.RawMessage
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return types.ShareSet{}, malformed("not a JSON object: %v", err)
	}

	var keys *keysEntry
	entries := make(map[string]shareEntry, len(raw))
	for field, msg := range raw {
		if field == KeysField {
			// "keys": null counts as no keys at all
			if bytes.Equal(bytes.TrimSpace(msg), []byte("null")) {
				continue
			}
			keys = &keysEntry{}
			err = json.Unmarshal(msg, keys)
			if err != nil {
				return types.ShareSet{}, malformed("invalid %q object: %v", KeysField, err)
			}
			continue
		}

		var entry shareEntry
		err = json.Unmarshal(msg, &entry)
		if err != nil {
			return types.ShareSet{}, malformedEntry(field, err)
		}
		entries[field] = entry
	}

	return build(keys, entries)
}

// Marshal encodes a record as JSON with "keys" first and shares in ascending
// key order.
func Marshal(set types.ShareSet) ([]byte, error) {
	var buf bytes.Buffer

	keys, err := json.Marshal(keysEntry{N: &set.N, K: &set.K})
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(&buf, "{\n  %q: %s", KeysField, keys)

	for _, key := range set.Keys() {
		share := set.Shares[key]
		entry, err := json.Marshal(struct {
			Base  string `json:"base"`
			Value string `json:"value"`
		}{
			Base:  strconv.Itoa(share.Base),
			Value: share.Digits,
		})
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, ",\n  \"%d\": %s", key, entry)
	}
	buf.WriteString("\n}\n")

	return buf.Bytes(), nil
}

// malformedEntry keeps the typed error raised by the field decoders and
// attaches the share key when it can be parsed.
func malformedEntry(field string, err error) error {
	var e *types.Error
	if !xerrors.As(err, &e) {
		e = malformed("invalid share entry: %v", err)
	}
	if key, kerr := parseKey(field); kerr == nil {
		return e.WithKey(key)
	}
	return e
}

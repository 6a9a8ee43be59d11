package record

import (
	"strconv"
	"strings"

	"go.dedis.ch/sssrecon/types"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

const nullTag = "!!null"

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *baseValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return malformed("base at line %d is not a scalar", node.Line)
	}
	v, err := strconv.Atoi(strings.TrimSpace(node.Value))
	if err != nil {
		return malformed("base %q is not an integer", node.Value)
	}
	*b = baseValue(v)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The raw scalar text is kept so
// that unquoted digits such as 0777 keep their leading zeros.
func (d *digitsValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return malformed("value at line %d is not a scalar", node.Line)
	}
	*d = digitsValue(node.Value)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler. A value written with nothing
// after the colon is read as an empty digit string, like "".
func (e *shareEntry) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Base  *baseValue `yaml:"base"`
		Value yaml.Node  `yaml:"value"`
	}
	err := node.Decode(&raw)
	if err != nil {
		return err
	}

	e.Base = raw.Base
	switch {
	case raw.Value.Kind == 0:
		e.Value = nil
	case raw.Value.ShortTag() == nullTag:
		empty := digitsValue("")
		e.Value = &empty
	default:
		e.Value = new(digitsValue)
		err = raw.Value.Decode(e.Value)
		if err != nil {
			return err
		}
	}
	return nil
}

// ParseYAML decodes a record written in YAML.
func ParseYAML(data []byte) (types.ShareSet, error) {
	var raw map[string]yaml.Node
	err := yaml.Unmarshal(data, &raw)
	if err != nil {
		return types.ShareSet{}, malformed("not a YAML mapping: %v", err)
	}
	if raw == nil {
		return types.ShareSet{}, malformed("empty document")
	}

	var keys *keysEntry
	entries := make(map[string]shareEntry, len(raw))
	for field, node := range raw {
		if field == KeysField {
			if node.ShortTag() == nullTag {
				continue
			}
			keys = &keysEntry{}
			err = node.Decode(keys)
			if err != nil {
				return types.ShareSet{}, malformed("invalid %q object: %v", KeysField, err)
			}
			continue
		}

		var entry shareEntry
		err = node.Decode(&entry)
		if err != nil {
			return types.ShareSet{}, malformedEntry(field, err)
		}
		entries[field] = entry
	}

	return build(keys, entries)
}

// MarshalYAML encodes a record as YAML with "keys" first and shares in
// ascending key order.
func MarshalYAML(set types.ShareSet) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}

	keys := &yaml.Node{Kind: yaml.MappingNode}
	keys.Content = append(keys.Content,
		scalar("n", "!!str"), scalar(strconv.Itoa(set.N), "!!int"),
		scalar("k", "!!str"), scalar(strconv.Itoa(set.K), "!!int"),
	)
	root.Content = append(root.Content, scalar(KeysField, "!!str"), keys)

	for _, key := range set.Keys() {
		share := set.Shares[key]
		entry := &yaml.Node{Kind: yaml.MappingNode}
		entry.Content = append(entry.Content,
			scalar("base", "!!str"), scalar(strconv.Itoa(share.Base), "!!str"),
			scalar("value", "!!str"), scalar(share.Digits, "!!str"),
		)
		root.Content = append(root.Content, scalar(strconv.Itoa(key), "!!str"), entry)
	}

	out, err := yaml.Marshal(root)
	if err != nil {
		return nil, xerrors.Errorf("failed to encode record: %w", err)
	}
	return out, nil
}

func scalar(value, tag string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

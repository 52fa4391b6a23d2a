// Package yamlserde binds the serde contract to gopkg.in/yaml.v3 nodes. YAML
// is a human-readable format. Raw byte values are written with the !!binary tag,
// the encoding YAML itself defines for binary data.
package yamlserde

import (
	"encoding/base64"
	"github.com/ValentinKolb/dBytes/lib/serde"
	"gopkg.in/yaml.v3"
	"strconv"
)

const (
	strTag    = "!!str"
	binaryTag = "!!binary"
	nullTag   = "!!null"
)

// Marshal writes m as a single YAML node
func Marshal(m serde.Marshaler) (*yaml.Node, error) {
	s := &serializer{}
	if err := m.MarshalSerde(s); err != nil {
		return nil, err
	}
	if s.node == nil {
		return nil, serde.Custom("yaml: marshaler wrote no value")
	}
	return s.node, nil
}

// Unmarshal reads node into u
func Unmarshal(node *yaml.Node, u serde.Unmarshaler) error {
	// documents wrap the actual value
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	return u.UnmarshalSerde(&deserializer{node: node})
}

// --------------------------------------------------------------------------
// Serializer
// --------------------------------------------------------------------------

type serializer struct {
	node *yaml.Node
}

func (s *serializer) IsHumanReadable() bool {
	return true
}

func (s *serializer) SerializeString(v string) error {
	s.node = &yaml.Node{Kind: yaml.ScalarNode, Tag: strTag, Value: v}
	return nil
}

func (s *serializer) SerializeBytes(v []byte) error {
	s.node = &yaml.Node{Kind: yaml.ScalarNode, Tag: binaryTag, Value: base64.StdEncoding.EncodeToString(v)}
	return nil
}

func (s *serializer) SerializeNone() error {
	s.node = &yaml.Node{Kind: yaml.ScalarNode, Tag: nullTag, Value: "null"}
	return nil
}

func (s *serializer) SerializeSome(v serde.Marshaler) error {
	return v.MarshalSerde(s)
}

// --------------------------------------------------------------------------
// Deserializer
// --------------------------------------------------------------------------

type deserializer struct {
	node *yaml.Node
}

func (d *deserializer) IsHumanReadable() bool {
	return true
}

// DeserializeString accepts any plain scalar, so unquoted values such as 010203
// (which YAML resolves to an integer) are still read as text.
func (d *deserializer) DeserializeString() (string, error) {
	if d.node.Kind != yaml.ScalarNode {
		return "", serde.InvalidType("a string", d.describe())
	}
	switch d.node.ShortTag() {
	case nullTag, binaryTag:
		return "", serde.InvalidType("a string", d.describe())
	}
	return d.node.Value, nil
}

func (d *deserializer) DeserializeBytes() ([]byte, error) {
	switch {
	case d.node.Kind == yaml.ScalarNode && d.node.ShortTag() == binaryTag:
		return d.binary()
	case d.node.Kind == yaml.SequenceNode:
		return serde.CollectBytes(&nodeSeq{nodes: d.node.Content})
	default:
		return nil, serde.InvalidType("binary data", d.describe())
	}
}

func (d *deserializer) DeserializeBorrowedBytes() ([]byte, error) {
	return nil, serde.Errorf("%w: yaml values are always decoded into new memory", serde.ErrBorrowUnavailable)
}

func (d *deserializer) DeserializeArray(dst []byte) error {
	b, err := d.DeserializeBytes()
	if err != nil {
		return err
	}
	if len(b) != len(dst) {
		return serde.Errorf("%w: expected %d bytes of binary data, found %d", serde.ErrInvalidLength, len(dst), len(b))
	}
	copy(dst, b)
	return nil
}

func (d *deserializer) DeserializeOption() (bool, error) {
	return d.node.ShortTag() != nullTag, nil
}

func (d *deserializer) DeserializeContent() (serde.Content, error) {
	switch {
	case d.node.Kind == yaml.ScalarNode && d.node.ShortTag() == binaryTag:
		b, err := d.binary()
		if err != nil {
			return serde.Content{}, err
		}
		return serde.Content{Kind: serde.KindBytes, Bytes: b}, nil
	case d.node.Kind == yaml.SequenceNode:
		return serde.Content{Kind: serde.KindSeq, Seq: &nodeSeq{nodes: d.node.Content}}, nil
	default:
		s, err := d.DeserializeString()
		if err != nil {
			return serde.Content{}, err
		}
		return serde.Content{Kind: serde.KindString, String: s}, nil
	}
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func (d *deserializer) binary() ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(d.node.Value)
	if err != nil {
		return nil, serde.Errorf("%w: yaml line %d: malformed !!binary value: %w", serde.ErrInvalidValue, d.node.Line, err)
	}
	return b, nil
}

// describe names the YAML node for error messages
func (d *deserializer) describe() string {
	switch d.node.Kind {
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.MappingNode:
		return "a mapping"
	case yaml.AliasNode:
		return "an alias"
	case yaml.ScalarNode:
		return d.node.ShortTag() + " scalar"
	default:
		return "nothing"
	}
}

// nodeSeq iterates the scalar elements of a YAML sequence
type nodeSeq struct {
	nodes []*yaml.Node
	pos   int
}

func (s *nodeSeq) SizeHint() (int, bool) {
	return len(s.nodes), true
}

func (s *nodeSeq) Next() (uint64, bool, error) {
	if s.pos >= len(s.nodes) {
		return 0, false, nil
	}
	n := s.nodes[s.pos]
	if n.Kind != yaml.ScalarNode {
		return 0, false, serde.InvalidType("an unsigned integer", "a nested collection")
	}
	v, err := strconv.ParseUint(n.Value, 0, 64)
	if err != nil {
		return 0, false, serde.Errorf("%w: sequence element %q at index %d is not an unsigned integer", serde.ErrInvalidValue, n.Value, s.pos)
	}
	s.pos++
	return v, true, nil
}

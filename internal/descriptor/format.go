package descriptor

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format controls how documents are rendered.
// Callers construct one per run and pass it to the writers that need it.
type Format struct {
	// Indent is repeated once per nesting level
	Indent string

	// KeySeparator goes between an object key and its value
	KeySeparator string

	// ArrayPerLine puts each array element on its own line;
	// otherwise arrays render inline as [ a, b ]
	ArrayPerLine bool

	// YAMLIndent is the number of spaces per YAML nesting level
	YAMLIndent int
}

// DefaultFormat returns the layout used for generated descriptors:
// two-space indent, "key" : value pairs, one array element per line.
func DefaultFormat() Format {
	return Format{
		Indent:       "  ",
		KeySeparator: " : ",
		ArrayPerLine: true,
		YAMLIndent:   2,
	}
}

// Marshal renders doc as pretty-printed JSON without a trailing newline.
func (f Format) Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if doc == nil {
		doc = New()
	}
	if err := f.writeObject(&buf, doc, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalYAML renders doc as a YAML document preceded by a "---" marker.
func (f Format) MarshalYAML(doc *Document) ([]byte, error) {
	if doc == nil {
		doc = New()
	}
	node, err := ToNode(doc)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	enc := yaml.NewEncoder(&buf)
	indent := f.YAMLIndent
	if indent <= 0 {
		indent = 2
	}
	enc.SetIndent(indent)
	if err := enc.Encode(node); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	return buf.Bytes(), nil
}

func (f Format) newline(buf *bytes.Buffer, level int) {
	buf.WriteByte('\n')
	for i := 0; i < level; i++ {
		buf.WriteString(f.Indent)
	}
}

func (f Format) writeObject(buf *bytes.Buffer, doc *Document, level int) error {
	if doc.Len() == 0 {
		buf.WriteString("{ }")
		return nil
	}
	buf.WriteByte('{')
	for i, key := range doc.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		f.newline(buf, level+1)
		if err := writeString(buf, key); err != nil {
			return err
		}
		buf.WriteString(f.KeySeparator)
		if err := f.writeValue(buf, doc.values[key], level+1); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	f.newline(buf, level)
	buf.WriteByte('}')
	return nil
}

func (f Format) writeArray(buf *bytes.Buffer, items []any, level int) error {
	if len(items) == 0 {
		buf.WriteString("[ ]")
		return nil
	}
	buf.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			buf.WriteByte(',')
		}
		if f.ArrayPerLine {
			f.newline(buf, level+1)
		} else {
			buf.WriteByte(' ')
		}
		if err := f.writeValue(buf, item, level+1); err != nil {
			return err
		}
	}
	if f.ArrayPerLine {
		f.newline(buf, level)
	} else {
		buf.WriteByte(' ')
	}
	buf.WriteByte(']')
	return nil
}

func (f Format) writeValue(buf *bytes.Buffer, v any, level int) error {
	switch val := v.(type) {
	case nil:
		buf.WriteString("null")
	case string:
		return writeString(buf, val)
	case bool:
		buf.WriteString(strconv.FormatBool(val))
	case Number:
		buf.WriteString(string(val))
	case *Document:
		if val == nil {
			buf.WriteString("null")
			return nil
		}
		return f.writeObject(buf, val, level)
	case []any:
		return f.writeArray(buf, val, level)
	default:
		out, err := json.MarshalNoEscape(val)
		if err != nil {
			return fmt.Errorf("unsupported value %T: %w", v, err)
		}
		buf.Write(out)
	}
	return nil
}

func writeString(buf *bytes.Buffer, s string) error {
	out, err := json.MarshalNoEscape(s)
	if err != nil {
		return err
	}
	buf.Write(out)
	return nil
}

// ToNode converts doc into a yaml.Node mapping that keeps the document's key order.
func ToNode(doc *Document) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range doc.keys {
		valueNode, err := valueToNode(doc.values[key])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			valueNode,
		)
	}
	return node, nil
}

func valueToNode(v any) (*yaml.Node, error) {
	switch val := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: val}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(val)}, nil
	case Number:
		tag := "!!float"
		if _, err := strconv.ParseInt(string(val), 10, 64); err == nil {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: string(val)}, nil
	case *Document:
		if val == nil {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
		}
		return ToNode(val)
	case []any:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range val {
			child, err := valueToNode(item)
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, child)
		}
		return seq, nil
	default:
		node := &yaml.Node{}
		if err := node.Encode(val); err != nil {
			return nil, fmt.Errorf("unsupported value %T: %w", v, err)
		}
		return node, nil
	}
}

package descriptor

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

const objectHint = "The descriptor must be a single JSON object, for example:\n" +
	"  {\n" +
	"    \"name\" : \"My Extension\",\n" +
	"    \"metadata\" : { \"keywords\" : [ \"web\" ] }\n" +
	"  }"

// Decode parses content as a JSON object.
// path is only used for error reporting.
//
// Content is checked with a strict JSON parser first; the document is then
// built from the decoder's token stream, which yields object keys in source order.
func Decode(content []byte, path string) (*Document, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, &DescriptorError{Path: path, Message: "descriptor is empty", Hint: objectHint}
	}

	var probe any
	if err := json.Unmarshal(content, &probe); err != nil {
		return nil, syntaxError(content, path, err)
	}
	if _, ok := probe.(map[string]any); !ok {
		return nil, &DescriptorError{
			Path:    path,
			Message: fmt.Sprintf("root must be a JSON object, got %s", jsonKind(probe)),
			Hint:    objectHint,
		}
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, syntaxError(content, path, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, &DescriptorError{Path: path, Message: "root must be a JSON object", Hint: objectHint}
	}

	doc, err := decodeObject(dec)
	if err != nil {
		return nil, syntaxError(content, path, err)
	}
	return doc, nil
}

func syntaxError(content []byte, path string, err error) error {
	descErr := &DescriptorError{
		Path:    path,
		Message: err.Error(),
		Hint:    "Check for missing commas, unquoted keys, or trailing commas.",
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		descErr.Line, descErr.Column = lineColumn(content, syntaxErr.Offset)
	}
	return descErr
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "an array"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	default:
		return "a number"
	}
}

// decodeObject reads members up to and including the closing brace.
func decodeObject(dec *json.Decoder) (*Document, error) {
	doc := New()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object keys must be strings, got %v", tok)
		}
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		// Duplicate keys: the last value wins, the first position is kept.
		doc.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return doc, nil
}

// decodeArray reads elements up to and including the closing bracket.
func decodeArray(dec *json.Decoder) ([]any, error) {
	items := []any{}
	for dec.More() {
		item, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return items, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected %q", rune(v))
		}
	case json.Number:
		return Number(v.String()), nil
	case float64:
		return Number(strconv.FormatFloat(v, 'g', -1, 64)), nil
	case string, bool, nil:
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported value %v", tok)
	}
}

// Package propsfile renders flat key/value records in Java properties format.
package propsfile

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/magiconair/properties"
)

// Record is an ordered set of properties preceded by a header comment.
type Record struct {
	header string
	props  *properties.Properties
}

// New returns an empty record. An empty header writes no comment line.
func New(header string) *Record {
	p := properties.NewProperties()
	p.DisableExpansion = true
	return &Record{header: header, props: p}
}

// Set stores value under key, keeping the first insertion position of key.
func (r *Record) Set(key, value string) error {
	if key == "" {
		return fmt.Errorf("property key must not be empty")
	}
	if _, _, err := r.props.Set(key, value); err != nil {
		return fmt.Errorf("failed to set property %s: %w", key, err)
	}
	return nil
}

// Bytes renders the record: "#<header>" on the first line, then one "key = value" line per entry.
func (r *Record) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if r.header != "" {
		for _, line := range strings.Split(r.header, "\n") {
			buf.WriteString("#" + line + "\n")
		}
	}
	if _, err := r.props.Write(&buf, properties.UTF8); err != nil {
		return nil, fmt.Errorf("failed to render properties: %w", err)
	}
	return buf.Bytes(), nil
}

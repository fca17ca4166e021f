package codec

import (
	"bytes"

	gojson "github.com/goccy/go-json"
)

// GoJSON encodes snapshots with github.com/goccy/go-json. It is the default.
type GoJSON struct{}

func (GoJSON) Marshal(v any) ([]byte, error) { return gojson.Marshal(v) }

// Unmarshal decodes data into v, rejecting unknown fields.
func (GoJSON) Unmarshal(data []byte, v any) error {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func (GoJSON) Name() string { return NameGoJSON }

package codec

import (
	"bytes"
	"encoding/json"
)

// JSON encodes snapshots with encoding/json. Its output is read by tools
// outside this module without extra dependencies.
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes data into v, rejecting unknown fields.
func (JSON) Unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func (JSON) Name() string { return NameJSON }

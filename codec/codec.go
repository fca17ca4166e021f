// Package codec encodes the payload of interaction snapshots.
//
// A snapshot header records the name of the codec that wrote it, and only
// the built-in codecs listed here can be named there. Changing Default
// therefore only affects newly written snapshots. Decoding is strict:
// payloads with fields the snapshot types do not know are rejected.
package codec

import (
	"errors"
	"fmt"
)

// Codec names as recorded in snapshot headers.
const (
	NameJSON   = "json"
	NameGoJSON = "go-json"
)

// ErrUnknownCodec is returned for codec names without a built-in codec.
var ErrUnknownCodec = errors.New("codec: unknown codec")

// Codec encodes/decodes snapshot payloads.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Default is the codec used for new snapshots.
var Default Codec = GoJSON{}

// Lookup returns the built-in codec registered under name.
func Lookup(name string) (Codec, error) {
	switch name {
	case NameJSON:
		return JSON{}, nil
	case NameGoJSON:
		return GoJSON{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
}

// Names lists the built-in codecs, the default first.
func Names() []string {
	return []string{NameGoJSON, NameJSON}
}

// MustMarshal is a helper for tests and benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}

package codec

import (
	"testing"

	"github.com/hupe1980/hybridize/testutil"
)

func benchmarkCodecMarshal(b *testing.B, c Codec, v any) {
	b.Helper()
	b.ReportAllocs()

	warm, err := c.Marshal(v)
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(warm)))

	var sink []byte
	for b.Loop() {
		out, err := c.Marshal(v)
		if err != nil {
			b.Fatal(err)
		}
		sink = out
	}
	_ = sink
}

func benchmarkCodecUnmarshal[T any](b *testing.B, c Codec, data []byte) {
	b.Helper()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	for b.Loop() {
		var v T
		if err := c.Unmarshal(data, &v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCodec_Interactions(b *testing.B) {
	payload := testutil.NewRNG(4711).Interactions(256, 200, 200)

	b.Run("Marshal/stdlib", func(b *testing.B) { benchmarkCodecMarshal(b, JSON{}, payload) })
	b.Run("Marshal/go-json", func(b *testing.B) { benchmarkCodecMarshal(b, GoJSON{}, payload) })

	data := MustMarshal(JSON{}, payload)
	b.Run("Unmarshal/stdlib", func(b *testing.B) {
		benchmarkCodecUnmarshal[[]map[string]any](b, JSON{}, data)
	})
	b.Run("Unmarshal/go-json", func(b *testing.B) {
		benchmarkCodecUnmarshal[[]map[string]any](b, GoJSON{}, data)
	})
}

package benchmarks

import (
	"context"
	"testing"

	"github.com/zoobzio/kneeboard"
	"github.com/zoobzio/kneeboard/convert"
	kbtest "github.com/zoobzio/kneeboard/testing"
)

func benchmarkEncode(b *testing.B, format kneeboard.Format, doc *kneeboard.Document) {
	b.Helper()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := convert.Encode(ctx, doc, format); err != nil {
			b.Fatalf("Encode error: %v", err)
		}
	}
}

func benchmarkDecode(b *testing.B, format kneeboard.Format, doc *kneeboard.Document) {
	b.Helper()
	ctx := context.Background()
	data, err := convert.Encode(ctx, doc, format)
	if err != nil {
		b.Fatalf("Encode error: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := convert.Decode(ctx, data, format); err != nil {
			b.Fatalf("Decode error: %v", err)
		}
	}
}

func BenchmarkEncode_Native(b *testing.B) {
	benchmarkEncode(b, kneeboard.FormatNative, kbtest.Sample())
}

func BenchmarkEncode_Binder(b *testing.B) {
	benchmarkEncode(b, kneeboard.FormatBinder, kbtest.Sample())
}

func BenchmarkEncode_Markup(b *testing.B) {
	benchmarkEncode(b, kneeboard.FormatMarkup, kbtest.Sample())
}

func BenchmarkEncode_YAML(b *testing.B) {
	benchmarkEncode(b, kneeboard.FormatYAML, kbtest.Sample())
}

func BenchmarkEncode_Compact(b *testing.B) {
	benchmarkEncode(b, kneeboard.FormatCompact, kbtest.CompactSafe())
}

func BenchmarkDecode_Native(b *testing.B) {
	benchmarkDecode(b, kneeboard.FormatNative, kbtest.Sample())
}

func BenchmarkDecode_Binder(b *testing.B) {
	benchmarkDecode(b, kneeboard.FormatBinder, kbtest.Sample())
}

func BenchmarkDecode_Markup(b *testing.B) {
	benchmarkDecode(b, kneeboard.FormatMarkup, kbtest.Sample())
}

func BenchmarkDecode_YAML(b *testing.B) {
	benchmarkDecode(b, kneeboard.FormatYAML, kbtest.Sample())
}

func BenchmarkDecode_Compact(b *testing.B) {
	benchmarkDecode(b, kneeboard.FormatCompact, kbtest.CompactSafe())
}

func BenchmarkDetect(b *testing.B) {
	ctx := context.Background()
	samples := make([][]byte, 0, 4)
	for _, f := range []kneeboard.Format{
		kneeboard.FormatCompact,
		kneeboard.FormatBinder,
		kneeboard.FormatMarkup,
		kneeboard.FormatNative,
	} {
		data, err := convert.Encode(ctx, kbtest.CompactSafe(), f)
		if err != nil {
			b.Fatalf("Encode error: %v", err)
		}
		samples = append(samples, data)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := convert.Detect(samples[i%len(samples)]); err != nil {
			b.Fatalf("Detect error: %v", err)
		}
	}
}

func BenchmarkValidate(b *testing.B) {
	doc := kbtest.Sample()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if vs := kneeboard.Validate(doc); len(vs) > 0 {
			b.Fatalf("unexpected violations: %v", vs)
		}
	}
}

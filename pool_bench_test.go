//go:build bench

package mdexport

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

func benchDocument(sections int) string {
	var b strings.Builder
	for i := 0; i < sections; i++ {
		fmt.Fprintf(&b, "## Section %d\n\nSome **bold** text, `inline.code`, and ==mark==.\n\n", i)
		b.WriteString("```go\nfunc main() { println(\"hi\") }\n```\n\n")
		b.WriteString("| a | b |\n|---|---|\n| 1 | 2 |\n| 3 | 4 |\n\n")
	}
	return b.String()
}

// BenchmarkRender compares local, cached and uncached rendering.
func BenchmarkRender(b *testing.B) {
	md := benchDocument(20)

	cases := []struct {
		name string
		opts []Option
	}{
		{"cached", nil},
		{"uncached", []Option{WithCacheSize(0)}},
	}

	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			conv, err := NewConverter(c.opts...)
			if err != nil {
				b.Fatalf("NewConverter() error = %v", err)
			}
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := conv.Render(context.Background(), RenderRequest{Markdown: md}); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkRenderPool measures pool throughput at several sizes.
func BenchmarkRenderPool(b *testing.B) {
	md := benchDocument(5)

	for _, size := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("size_%d", size), func(b *testing.B) {
			conv, err := NewConverter(WithCacheSize(0))
			if err != nil {
				b.Fatalf("NewConverter() error = %v", err)
			}
			pool := NewRenderPool(conv, size)
			defer pool.Close()

			b.ReportAllocs()
			b.ResetTimer()

			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					if _, err := pool.Render(context.Background(), RenderRequest{Markdown: md}); err != nil {
						b.Error(err)
					}
				}
			})
		})
	}
}

// BenchmarkExportContent benchmarks each platform adapter.
func BenchmarkExportContent(b *testing.B) {
	conv, err := NewConverter()
	if err != nil {
		b.Fatalf("NewConverter() error = %v", err)
	}
	md := benchDocument(10) + "\n- [x] done\n\n$$x^2$$\n\n![img](https://example.com/a.png)\n"
	html := conv.ParseMarkdown(md)

	for _, id := range conv.PlatformIDs() {
		if id == "wechat" {
			continue
		}
		b.Run(id, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := conv.ExportContent(id, md, html, nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

package mdexport

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"testing"
	"time"
)

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	gomaxprocs := runtime.GOMAXPROCS(0)

	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{"explicit takes priority", 4, 4},
		{"explicit=1 for sequential", 1, 1},
		{"explicit can exceed max", 16, 16},
		{"zero uses auto calculation", 0, min(max(gomaxprocs/cpuDivisor, MinPoolSize), MaxPoolSize)},
		{"negative uses auto calculation", -3, min(max(gomaxprocs/cpuDivisor, MinPoolSize), MaxPoolSize)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ResolvePoolSize(tt.workers); got != tt.want {
				t.Errorf("ResolvePoolSize(%d) = %d, want %d", tt.workers, got, tt.want)
			}
		})
	}
}

func TestNewRenderer(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t)

	t.Run("one worker is local", func(t *testing.T) {
		t.Parallel()

		r := NewRenderer(conv, 1)
		defer r.Close()
		if _, ok := r.(*LocalRenderer); !ok {
			t.Errorf("NewRenderer(1) = %T, want *LocalRenderer", r)
		}
	})

	t.Run("several workers is a pool", func(t *testing.T) {
		t.Parallel()

		r := NewRenderer(conv, 3)
		defer r.Close()
		pool, ok := r.(*RenderPool)
		if !ok {
			t.Fatalf("NewRenderer(3) = %T, want *RenderPool", r)
		}
		if pool.Size() != 3 {
			t.Errorf("Size() = %d, want 3", pool.Size())
		}
	})
}

func TestRenderPool_Size(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t)

	tests := []struct {
		name string
		size int
		want int
	}{
		{"size 1", 1, 1},
		{"size 4", 4, 4},
		{"size 0 becomes 1", 0, 1},
		{"negative becomes 1", -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pool := NewRenderPool(conv, tt.size)
			defer pool.Close()
			if got := pool.Size(); got != tt.want {
				t.Errorf("Size() = %d, want %d", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Output equality between transports
// ---------------------------------------------------------------------------

func TestRenderPool_MatchesLocal(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t, WithCacheSize(0))
	local := NewLocalRenderer(conv)
	pool := NewRenderPool(conv, 4)
	defer pool.Close()

	inputs := []string{
		"",
		"# Hello\n\nWorld",
		"| a | b |\n|---|---|\n| 1 | 2 |\n| 3 | 4 |",
		"```python\nprint('hi')\n```",
		"text with ==mark== and `a.b,c`",
		"<script>alert(1)</script>",
	}

	for _, md := range inputs {
		want, err := local.Render(context.Background(), RenderRequest{Markdown: md})
		if err != nil {
			t.Fatalf("local Render(%q) error = %v", md, err)
		}
		got, err := pool.Render(context.Background(), RenderRequest{Markdown: md})
		if err != nil {
			t.Fatalf("pool Render(%q) error = %v", md, err)
		}
		if got != want {
			t.Errorf("pool output differs from local for %q", md)
		}
	}
}

func TestRenderPool_Concurrent(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t)
	pool := NewRenderPool(conv, 3)
	defer pool.Close()

	const n = 40
	var wg sync.WaitGroup
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			md := fmt.Sprintf("# Doc %d\n\nbody %d", i, i)
			got, err := pool.Render(context.Background(), RenderRequest{Markdown: md})
			if err != nil {
				errs <- err
				return
			}
			want := conv.InlineStyles(conv.ParseMarkdown(md), nil, nil)
			if got != want {
				errs <- fmt.Errorf("request %d got another request's reply", i)
			}
		}(i)
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

// ---------------------------------------------------------------------------
// Close and fallback
// ---------------------------------------------------------------------------

func TestRenderPool_FallbackAfterClose(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t)
	pool := NewRenderPool(conv, 2)

	if err := pool.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := pool.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	got, err := pool.Render(context.Background(), RenderRequest{Markdown: "# after"})
	if err != nil {
		t.Fatalf("Render() after Close error = %v", err)
	}
	want, _ := NewLocalRenderer(conv).Render(context.Background(), RenderRequest{Markdown: "# after"})
	if got != want {
		t.Error("fallback output differs from local output")
	}
}

func TestRenderPool_CloseWhileRendering(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t)
	pool := NewRenderPool(conv, 2)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := pool.Render(context.Background(), RenderRequest{Markdown: fmt.Sprintf("p%d", i)}); err != nil {
				t.Errorf("Render() error = %v", err)
			}
		}(i)
	}

	_ = pool.Close()
	wg.Wait()
}

func TestRenderPool_ContextDone(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t)
	pool := NewRenderPool(conv, 1)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := pool.Render(ctx, RenderRequest{Markdown: "x"}); !errors.Is(err, context.Canceled) {
		t.Errorf("Render() error = %v, want context.Canceled", err)
	}

	ctx, cancel = context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if _, err := pool.Render(ctx, RenderRequest{Markdown: "still works"}); err != nil {
		t.Errorf("Render() after cancelled request error = %v", err)
	}

	pool.pendingMu.Lock()
	left := len(pool.pending)
	pool.pendingMu.Unlock()
	if left != 0 {
		t.Errorf("pending = %d, want 0", left)
	}
}

func TestLocalRenderer_Close(t *testing.T) {
	t.Parallel()

	r := NewLocalRenderer(newTestConverter(t))
	if err := r.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if _, err := r.Render(context.Background(), RenderRequest{Markdown: "x"}); err != nil {
		t.Errorf("Render() after Close error = %v", err)
	}
}

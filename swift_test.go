package swiftsym

import (
	"context"
	"errors"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/google/go-cmp/cmp"

	"github.com/appsworld/swiftsym/pkg/swift/node"
	"github.com/appsworld/swiftsym/pkg/swift/symbolic"
)

func TestDecodeAll(t *testing.T) {
	cache, _, _ := testCache()
	h := memory.New()
	f := NewCacheImage(cache, "libFoo.dylib", nil,
		WithLogger(&log.Logger{Handler: h, Level: log.WarnLevel}),
		WithConcurrency(2),
	)

	addrs := []uint64{cacheBase + 0x10, cacheBase + 0x20, cacheBase + 0xf0}
	names, err := f.DecodeAll(context.Background(), addrs)
	if err != nil {
		t.Fatalf("DecodeAll failed: %v", err)
	}
	var got []string
	for i, n := range names {
		if n.Addr != addrs[i] {
			t.Fatalf("names out of order: got %#x at %d, want %#x", n.Addr, i, addrs[i])
		}
		got = append(got, n.Name)
	}
	if diff := cmp.Diff([]string{"Cached", "Swift.Int", ""}, got); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if names[0].Err != nil || names[1].Err != nil {
		t.Fatalf("unexpected errors: %v, %v", names[0].Err, names[1].Err)
	}
	if !errors.Is(names[2].Err, symbolic.ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", names[2].Err)
	}
	if len(h.Entries) != 1 || h.Entries[0].Level != log.WarnLevel {
		t.Fatalf("expected one warning, got %d entries", len(h.Entries))
	}
}

func TestDecodeAllSequential(t *testing.T) {
	cache, _, _ := testCache()
	f := NewCacheImage(cache, "libFoo.dylib", nil, WithExclusivePool(), WithConcurrency(8))
	if f.opts.concurrency != 1 {
		t.Fatalf("an exclusive pool should force sequential decoding, got concurrency %d", f.opts.concurrency)
	}
	names, err := f.DecodeAll(context.Background(), []uint64{cacheBase + 0x10, cacheBase + 0x10})
	if err != nil {
		t.Fatalf("DecodeAll failed: %v", err)
	}
	if names[0].Name != "Cached" || names[1].Name != "Cached" {
		t.Fatalf("unexpected names: %+v", names)
	}
}

func TestDecodeAllCancelled(t *testing.T) {
	cache, _, _ := testCache()
	f := NewCacheImage(cache, "libFoo.dylib", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := f.DecodeAll(ctx, []uint64{cacheBase + 0x10}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestDecodeSymbolicNode(t *testing.T) {
	cache, _, _ := testCache()
	pool := node.NewPool()
	f := NewCacheImage(cache, "libFoo.dylib", nil, WithPool(pool))

	n, err := f.DecodeSymbolicNode(cacheBase + 0x20)
	if err != nil {
		t.Fatalf("DecodeSymbolicNode failed: %v", err)
	}
	want := node.New(node.KindTypeMangling, node.None(), node.NewText(node.KindIdentifier, "Si"))
	if !n.Equal(want) {
		t.Fatalf("tree mismatch:\ngot:\n%s\nwant:\n%s", n, want)
	}
	if !pool.Contains(n.Child(0)) {
		t.Fatal("identifier should be interned in the file's pool")
	}
	if f.Pool() != pool {
		t.Fatal("Pool should return the configured pool")
	}
}

func TestReadMangledName(t *testing.T) {
	cache, _, _ := testCache()
	f := NewCacheImage(cache, "libFoo.dylib", nil, WithQualifiedNames())

	m, err := f.ReadMangledName(cacheBase + 0x20)
	if err != nil {
		t.Fatalf("ReadMangledName failed: %v", err)
	}
	if m.Start != cacheBase+0x20 || m.End != cacheBase+0x28 {
		t.Fatalf("bounds mismatch: got [%#x, %#x)", m.Start, m.End)
	}
	if len(m.Fragments) != 2 || m.Fragments[0].Resolved() || m.Fragments[1].Literal != "Si" {
		t.Fatalf("unexpected fragments: %v", m.Fragments)
	}
}

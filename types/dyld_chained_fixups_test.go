package types

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeChainedPointer(t *testing.T) {
	tests := []struct {
		name   string
		format DCPtrKind
		raw    uint64
		want   ChainedPointer
	}{
		{
			name:   "arm64e auth rebase",
			format: DYLD_CHAINED_PTR_ARM64E_USERLAND,
			raw:    1<<63 | 2<<49 | 1<<48 | 0x1234<<32 | 0x4000,
			want: ChainedPointer{
				Target:         0x4000,
				TargetIsOffset: true,
				Auth:           true,
				Key:            2,
				Diversity:      0x1234,
				AddrDiv:        true,
			},
		},
		{
			name:   "arm64e bind",
			format: DYLD_CHAINED_PTR_ARM64E,
			raw:    1<<62 | 5<<32 | 3,
			want:   ChainedPointer{Bind: true, Ordinal: 3, Addend: 5},
		},
		{
			name:   "arm64e bind negative addend",
			format: DYLD_CHAINED_PTR_ARM64E,
			raw:    1<<62 | 0x7ffff<<32 | 1,
			want:   ChainedPointer{Bind: true, Ordinal: 1, Addend: -1},
		},
		{
			name:   "arm64e plain rebase is vmaddr",
			format: DYLD_CHAINED_PTR_ARM64E,
			raw:    0x12<<43 | 0x100008000,
			want:   ChainedPointer{Target: 0x100008000, High8: 0x12},
		},
		{
			name:   "ptr64 rebase",
			format: DYLD_CHAINED_PTR_64,
			raw:    0xab<<36 | 0x100004000,
			want:   ChainedPointer{Target: 0x100004000, High8: 0xab},
		},
		{
			name:   "ptr64 offset rebase",
			format: DYLD_CHAINED_PTR_64_OFFSET,
			raw:    0x4010,
			want:   ChainedPointer{Target: 0x4010, TargetIsOffset: true},
		},
		{
			name:   "ptr64 bind",
			format: DYLD_CHAINED_PTR_64,
			raw:    1<<63 | 7<<24 | 42,
			want:   ChainedPointer{Bind: true, Ordinal: 42, Addend: 7},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeChainedPointer(tt.format, tt.raw)
			if err != nil {
				t.Fatalf("DecodeChainedPointer() error = %v", err)
			}
			tt.want.Raw = tt.raw
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DecodeChainedPointer() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeChainedPointerUnsupported(t *testing.T) {
	_, err := DecodeChainedPointer(DCPtrKind(5), 0)
	if !errors.Is(err, ErrUnsupportedPointerFormat) {
		t.Fatalf("expected ErrUnsupportedPointerFormat, got %v", err)
	}
}

func TestStripPAC(t *testing.T) {
	if got, want := StripPAC(0x8010_0001_0000_4000), uint64(0x1_0000_4000); got != want {
		t.Fatalf("StripPAC mismatch: got %#x, want %#x", got, want)
	}
	if got, want := KeyName(3), "DB"; got != want {
		t.Fatalf("KeyName mismatch: got %q, want %q", got, want)
	}
}

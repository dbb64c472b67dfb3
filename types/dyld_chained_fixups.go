package types

import (
	"errors"
	"fmt"
)

// ErrUnsupportedPointerFormat is returned for chained pointer formats that are not decoded.
var ErrUnsupportedPointerFormat = errors.New("unsupported chained pointer format")

// DCPtrKind are values for dyld_chained_starts_in_segment.pointer_format
type DCPtrKind uint16

const (
	DYLD_CHAINED_PTR_ARM64E            DCPtrKind = 1 // stride 8, unauth target is vmaddr
	DYLD_CHAINED_PTR_64                DCPtrKind = 2 // target is vmaddr
	DYLD_CHAINED_PTR_32                DCPtrKind = 3
	DYLD_CHAINED_PTR_64_OFFSET         DCPtrKind = 6  // target is vm offset
	DYLD_CHAINED_PTR_ARM64E_USERLAND   DCPtrKind = 9  // stride 8, unauth target is vm offset
	DYLD_CHAINED_PTR_ARM64E_USERLAND24 DCPtrKind = 12 // stride 8, unauth target is vm offset, 24-bit bind
)

func (k DCPtrKind) String() string {
	switch k {
	case DYLD_CHAINED_PTR_ARM64E:
		return "arm64e"
	case DYLD_CHAINED_PTR_64:
		return "ptr64"
	case DYLD_CHAINED_PTR_32:
		return "ptr32"
	case DYLD_CHAINED_PTR_64_OFFSET:
		return "ptr64_offset"
	case DYLD_CHAINED_PTR_ARM64E_USERLAND:
		return "arm64e_userland"
	case DYLD_CHAINED_PTR_ARM64E_USERLAND24:
		return "arm64e_userland24"
	}
	return fmt.Sprintf("DCPtrKind(%d)", uint16(k))
}

// Stride is the distance in bytes between chain links of this format.
func (k DCPtrKind) Stride() uint64 {
	switch k {
	case DYLD_CHAINED_PTR_ARM64E, DYLD_CHAINED_PTR_ARM64E_USERLAND, DYLD_CHAINED_PTR_ARM64E_USERLAND24:
		return 8
	}
	return 4
}

// PointerSize is the size of one slot of this format.
func (k DCPtrKind) PointerSize() int {
	if k == DYLD_CHAINED_PTR_32 {
		return 4
	}
	return 8
}

// PACMask keeps the virtual address bits of a userland pointer.
const PACMask uint64 = 0x0000_7fff_ffff_ffff

// ExtractBits returns numBits bits of x starting at firstBit.
func ExtractBits(x uint64, firstBit, numBits uint32) uint64 {
	return (x >> firstBit) & ((uint64(1) << numBits) - 1)
}

// StripPAC removes pointer authentication bits (key, diversity and signature) from ptr.
func StripPAC(ptr uint64) uint64 {
	return ptr & PACMask
}

func DcpArm64eIsBind(ptr uint64) bool {
	return ExtractBits(ptr, 62, 1) != 0
}

func DcpArm64eIsAuth(ptr uint64) bool {
	return ExtractBits(ptr, 63, 1) != 0
}

func Generic64IsBind(ptr uint64) bool {
	return ExtractBits(ptr, 63, 1) != 0
}

func Generic32IsBind(ptr uint32) bool {
	return ExtractBits(uint64(ptr), 31, 1) != 0
}

// KeyName returns the chained pointer's key name
func KeyName(key uint64) string {
	name := []string{"IA", "IB", "DA", "DB"}
	if key >= 4 {
		return "ERROR"
	}
	return name[key]
}

// DYLD_CHAINED_PTR_ARM64E
type DyldChainedPtrArm64eRebase uint64

func (d DyldChainedPtrArm64eRebase) Target() uint64 {
	return ExtractBits(uint64(d), 0, 43) // runtimeOffset
}
func (d DyldChainedPtrArm64eRebase) High8() uint64 {
	return ExtractBits(uint64(d), 43, 8)
}

// DYLD_CHAINED_PTR_ARM64E
type DyldChainedPtrArm64eBind uint64

func (d DyldChainedPtrArm64eBind) Ordinal() uint64 {
	return ExtractBits(uint64(d), 0, 16)
}
func (d DyldChainedPtrArm64eBind) SignExtendedAddend() int64 {
	addend19 := ExtractBits(uint64(d), 32, 19) // +/-256K
	if (addend19 & 0x40000) != 0 {
		return int64(addend19 | 0xFFFFFFFFFFFC0000)
	}
	return int64(addend19)
}

// DYLD_CHAINED_PTR_ARM64E_USERLAND24
type DyldChainedPtrArm64eBind24 uint64

func (d DyldChainedPtrArm64eBind24) Ordinal() uint64 {
	return ExtractBits(uint64(d), 0, 24)
}
func (d DyldChainedPtrArm64eBind24) SignExtendedAddend() int64 {
	addend19 := ExtractBits(uint64(d), 32, 19)
	if (addend19 & 0x40000) != 0 {
		return int64(addend19 | 0xFFFFFFFFFFFC0000)
	}
	return int64(addend19)
}

// DYLD_CHAINED_PTR_ARM64E
type DyldChainedPtrArm64eAuthRebase uint64

func (d DyldChainedPtrArm64eAuthRebase) Target() uint64 {
	return ExtractBits(uint64(d), 0, 32) // vm offset
}
func (d DyldChainedPtrArm64eAuthRebase) Diversity() uint64 {
	return ExtractBits(uint64(d), 32, 16)
}
func (d DyldChainedPtrArm64eAuthRebase) AddrDiv() bool {
	return ExtractBits(uint64(d), 48, 1) == 1
}
func (d DyldChainedPtrArm64eAuthRebase) Key() uint64 {
	return ExtractBits(uint64(d), 49, 2)
}

// DYLD_CHAINED_PTR_ARM64E
type DyldChainedPtrArm64eAuthBind uint64

func (d DyldChainedPtrArm64eAuthBind) Ordinal() uint64 {
	return ExtractBits(uint64(d), 0, 16)
}
func (d DyldChainedPtrArm64eAuthBind) Diversity() uint64 {
	return ExtractBits(uint64(d), 32, 16)
}
func (d DyldChainedPtrArm64eAuthBind) AddrDiv() bool {
	return ExtractBits(uint64(d), 48, 1) == 1
}
func (d DyldChainedPtrArm64eAuthBind) Key() uint64 {
	return ExtractBits(uint64(d), 49, 2)
}

// DYLD_CHAINED_PTR_64, DYLD_CHAINED_PTR_64_OFFSET
type DyldChainedPtr64Rebase uint64

func (d DyldChainedPtr64Rebase) Target() uint64 {
	return ExtractBits(uint64(d), 0, 36) // 64GB max image size
}
func (d DyldChainedPtr64Rebase) High8() uint64 {
	return ExtractBits(uint64(d), 36, 8)
}

// DYLD_CHAINED_PTR_64
type DyldChainedPtr64Bind uint64

func (d DyldChainedPtr64Bind) Ordinal() uint64 {
	return ExtractBits(uint64(d), 0, 24)
}
func (d DyldChainedPtr64Bind) Addend() int64 {
	return int64(ExtractBits(uint64(d), 24, 8)) // 0 thru 255
}

// ChainedPointer is the decoded form of one chained fixup slot.
type ChainedPointer struct {
	Raw     uint64
	Next    uint64
	Bind    bool
	Ordinal uint64
	Addend  int64
	// Target is the rebase target with tag bits removed. It is a vm offset
	// from the image base when TargetIsOffset is set, a vmaddr otherwise.
	Target         uint64
	TargetIsOffset bool
	High8          uint64
	Auth           bool
	Key            uint64
	Diversity      uint64
	AddrDiv        bool
}

func (p ChainedPointer) String() string {
	if p.Bind {
		s := fmt.Sprintf("bind ordinal: %d, addend: %d", p.Ordinal, p.Addend)
		if p.Auth {
			s += fmt.Sprintf(", key: %s, diversity: 0x%04x, addr_div: %t", KeyName(p.Key), p.Diversity, p.AddrDiv)
		}
		return s
	}
	s := fmt.Sprintf("rebase target: %#x", p.Target)
	if p.Auth {
		s += fmt.Sprintf(", key: %s, diversity: 0x%04x, addr_div: %t", KeyName(p.Key), p.Diversity, p.AddrDiv)
	}
	return s
}

// DecodeChainedPointer decodes the raw contents of a chained fixup slot.
// Authentication fields are split out so Target is usable as an address as is.
func DecodeChainedPointer(format DCPtrKind, raw uint64) (ChainedPointer, error) {
	p := ChainedPointer{Raw: raw}
	switch format {
	case DYLD_CHAINED_PTR_ARM64E, DYLD_CHAINED_PTR_ARM64E_USERLAND, DYLD_CHAINED_PTR_ARM64E_USERLAND24:
		p.Auth = DcpArm64eIsAuth(raw)
		p.Bind = DcpArm64eIsBind(raw)
		p.Next = ExtractBits(raw, 51, 11)
		switch {
		case p.Bind && p.Auth:
			b := DyldChainedPtrArm64eAuthBind(raw)
			p.Ordinal = b.Ordinal()
			if format == DYLD_CHAINED_PTR_ARM64E_USERLAND24 {
				p.Ordinal = ExtractBits(raw, 0, 24)
			}
			p.Key, p.Diversity, p.AddrDiv = b.Key(), b.Diversity(), b.AddrDiv()
		case p.Bind:
			if format == DYLD_CHAINED_PTR_ARM64E_USERLAND24 {
				b := DyldChainedPtrArm64eBind24(raw)
				p.Ordinal, p.Addend = b.Ordinal(), b.SignExtendedAddend()
			} else {
				b := DyldChainedPtrArm64eBind(raw)
				p.Ordinal, p.Addend = b.Ordinal(), b.SignExtendedAddend()
			}
		case p.Auth:
			r := DyldChainedPtrArm64eAuthRebase(raw)
			p.Target = r.Target()
			p.TargetIsOffset = true
			p.Key, p.Diversity, p.AddrDiv = r.Key(), r.Diversity(), r.AddrDiv()
		default:
			r := DyldChainedPtrArm64eRebase(raw)
			p.Target = r.Target()
			p.High8 = r.High8()
			p.TargetIsOffset = format != DYLD_CHAINED_PTR_ARM64E
		}
	case DYLD_CHAINED_PTR_64, DYLD_CHAINED_PTR_64_OFFSET:
		p.Bind = Generic64IsBind(raw)
		p.Next = ExtractBits(raw, 51, 12)
		if p.Bind {
			b := DyldChainedPtr64Bind(raw)
			p.Ordinal, p.Addend = b.Ordinal(), b.Addend()
		} else {
			r := DyldChainedPtr64Rebase(raw)
			p.Target = r.Target()
			p.High8 = r.High8()
			p.TargetIsOffset = format == DYLD_CHAINED_PTR_64_OFFSET
		}
	case DYLD_CHAINED_PTR_32:
		p.Bind = Generic32IsBind(uint32(raw))
		p.Next = ExtractBits(raw, 26, 5)
		if p.Bind {
			p.Ordinal = ExtractBits(raw, 0, 20)
			p.Addend = int64(ExtractBits(raw, 20, 6))
		} else {
			p.Target = ExtractBits(raw, 0, 26)
		}
	default:
		return p, fmt.Errorf("%w: %s", ErrUnsupportedPointerFormat, format)
	}
	return p, nil
}

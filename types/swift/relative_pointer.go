package swift

import (
	"encoding/binary"
	"fmt"
	"io"
)

// RelativeDirectPointer is a signed 32-bit offset from its own address.
type RelativeDirectPointer struct {
	Address uint64
	RelOff  int32
}

func (r RelativeDirectPointer) GetAddress() uint64 {
	return uint64(int64(r.Address) + int64(r.RelOff))
}
func (r RelativeDirectPointer) IsSet() bool {
	return r.RelOff != 0
}
func (p *RelativeDirectPointer) Read(r io.Reader, bo binary.ByteOrder, addr uint64) error {
	p.Address = addr
	return binary.Read(r, bo, &p.RelOff)
}
func (r RelativeDirectPointer) String() string {
	return fmt.Sprintf("addr: %#x, off: %d -> %#x", r.Address, r.RelOff, r.GetAddress())
}

// RelativeIndirectablePointer is a relative offset whose low bit selects
// between the target itself and a pointer slot holding the target.
type RelativeIndirectablePointer struct {
	Address uint64
	RelOff  int32
}

func (ri RelativeIndirectablePointer) IsSet() bool {
	return ri.RelOff != 0
}
func (ri RelativeIndirectablePointer) IsIndirect() bool {
	return ri.RelOff&1 == 1
}

// GetRelPtrAddress returns the direct target, or the slot address for indirect pointers.
func (ri RelativeIndirectablePointer) GetRelPtrAddress() uint64 {
	return uint64(int64(ri.Address)+int64(ri.RelOff)) &^ 1
}
func (ri RelativeIndirectablePointer) GetAddress(readPtr func(uint64) (uint64, error)) (uint64, error) {
	addr := ri.GetRelPtrAddress()
	if ri.IsIndirect() {
		return readPtr(addr)
	}
	return addr, nil
}
func (p *RelativeIndirectablePointer) Read(r io.Reader, bo binary.ByteOrder, addr uint64) error {
	p.Address = addr
	return binary.Read(r, bo, &p.RelOff)
}
func (ri RelativeIndirectablePointer) String() string {
	return fmt.Sprintf("addr: %#x, off: %d, indirect: %t -> %#x", ri.Address, ri.RelOff, ri.IsIndirect(), ri.GetRelPtrAddress())
}

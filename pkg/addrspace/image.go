package addrspace

import (
	"encoding/binary"
)

// FlatImage is a standalone file whose logical offsets are file offsets.
type FlatImage struct {
	File  File
	Order binary.ByteOrder
	// PtrSize defaults to 8.
	PtrSize int
}

// NewFlatImage returns a little endian 64-bit FlatImage over f.
func NewFlatImage(f File) *FlatImage {
	return &FlatImage{File: f, Order: binary.LittleEndian, PtrSize: 8}
}

func (i *FlatImage) Name() string        { return i.File.Name() }
func (i *FlatImage) RegionStart() uint64 { return 0 }

func (i *FlatImage) ByteOrder() binary.ByteOrder { return byteOrder(i.Order) }
func (i *FlatImage) PointerSize() int            { return pointerSize(i.PtrSize) }

func (i *FlatImage) Resolve(logical uint64) (Location, error) {
	if logical >= uint64(i.File.Size()) {
		return Location{}, &OutOfRangeError{Image: i.Name(), Logical: logical}
	}
	return Location{File: i.File, Offset: logical}, nil
}

// MappedImage is a standalone image addressed by virtual address, where each
// file backed segment contributes one region.
type MappedImage struct {
	ImageName string
	// Base is the unslid load address of the image.
	Base    uint64
	Regions []Region
	Order   binary.ByteOrder
	PtrSize int
}

func (i *MappedImage) Name() string        { return i.ImageName }
func (i *MappedImage) RegionStart() uint64 { return i.Base }

func (i *MappedImage) ByteOrder() binary.ByteOrder { return byteOrder(i.Order) }
func (i *MappedImage) PointerSize() int            { return pointerSize(i.PtrSize) }

func (i *MappedImage) Resolve(logical uint64) (Location, error) {
	if loc, ok := firstMatch(i.Regions, logical); ok {
		return loc, nil
	}
	return Location{}, &OutOfRangeError{Image: i.ImageName, Logical: logical}
}

// SlidImage is an image mapped in a live process: File holds the bytes that
// were mapped at Base, and the image was loaded with Slide.
type SlidImage struct {
	ImageName string
	File      File
	Base      uint64
	Slide     uint64
	Order     binary.ByteOrder
	PtrSize   int
}

func (i *SlidImage) Name() string { return i.ImageName }

// RegionStart is the unslid address that lands on the first mapped byte.
func (i *SlidImage) RegionStart() uint64 { return i.Base - i.Slide }

func (i *SlidImage) ByteOrder() binary.ByteOrder { return byteOrder(i.Order) }
func (i *SlidImage) PointerSize() int            { return pointerSize(i.PtrSize) }

// Resolve adds the runtime slide and subtracts the mapping base.
func (i *SlidImage) Resolve(logical uint64) (Location, error) {
	runtime := logical + i.Slide
	if runtime < i.Base || runtime-i.Base >= uint64(i.File.Size()) {
		return Location{}, &OutOfRangeError{Image: i.ImageName, Logical: logical}
	}
	return Location{File: i.File, Offset: runtime - i.Base}, nil
}

func byteOrder(bo binary.ByteOrder) binary.ByteOrder {
	if bo == nil {
		return binary.LittleEndian
	}
	return bo
}

func pointerSize(n int) int {
	if n == 0 {
		return 8
	}
	return n
}

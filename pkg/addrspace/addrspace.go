// Package addrspace maps logical offsets inside a binary image to concrete
// file offsets, whether the image is a flat file, part of a split dyld shared
// cache or a slid image mapped in a live process.
package addrspace

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrOutOfRange is matched by every *OutOfRangeError.
	ErrOutOfRange = errors.New("logical offset not within any region")
	// ErrTruncated is returned when a read would run past the end of the backing file.
	ErrTruncated = errors.New("read past end of file")
)

// OutOfRangeError reports a logical offset that no region claims.
type OutOfRangeError struct {
	Image   string
	Logical uint64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: logical offset %#x not within any region", e.Image, e.Logical)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// File is the backing store of an image or a shared cache file.
type File interface {
	io.ReaderAt
	Name() string
	Size() int64
}

type readerFile struct {
	name string
	size int64
	io.ReaderAt
}

func (f readerFile) Name() string { return f.name }
func (f readerFile) Size() int64  { return f.size }

// NewBytesFile returns a File over an in-memory buffer.
func NewBytesFile(name string, data []byte) File {
	return readerFile{name: name, size: int64(len(data)), ReaderAt: bytes.NewReader(data)}
}

// NewFile wraps r as a File of the given size.
func NewFile(name string, r io.ReaderAt, size int64) File {
	return readerFile{name: name, size: size, ReaderAt: r}
}

// Location is a concrete position inside a backing file.
type Location struct {
	File   File
	Offset uint64
}

func (l Location) String() string {
	if l.File == nil {
		return fmt.Sprintf("<nil>:%#x", l.Offset)
	}
	return fmt.Sprintf("%s:%#x", l.File.Name(), l.Offset)
}

// Image is one binary image as seen through its address space.
type Image interface {
	Name() string
	// Resolve maps a logical offset to the file and file offset holding its bytes.
	Resolve(logical uint64) (Location, error)
	// RegionStart is the logical origin used by offsets that are relative to
	// the start of the shared region rather than to a file.
	RegionStart() uint64
	ByteOrder() binary.ByteOrder
	PointerSize() int
}

// ResolveFromRegionStart resolves an offset expressed relative to the image's region start.
func ResolveFromRegionStart(img Image, delta uint64) (Location, error) {
	return img.Resolve(img.RegionStart() + delta)
}

// Region maps the logical range [Start, Start+Size) onto File at FileOffset.
type Region struct {
	File       File
	Start      uint64
	Size       uint64
	FileOffset uint64
}

// Contains reports whether logical falls inside the region.
func (r Region) Contains(logical uint64) bool {
	return logical >= r.Start && logical-r.Start < r.Size
}

func (r Region) String() string {
	name := "<nil>"
	if r.File != nil {
		name = r.File.Name()
	}
	return fmt.Sprintf("%s [%#x-%#x) -> %#x", name, r.Start, r.Start+r.Size, r.FileOffset)
}

// firstMatch returns the location in the first region, in declaration order, that claims logical.
func firstMatch(regions []Region, logical uint64) (Location, bool) {
	for _, r := range regions {
		if r.Contains(logical) {
			return Location{File: r.File, Offset: logical - r.Start + r.FileOffset}, true
		}
	}
	return Location{}, false
}

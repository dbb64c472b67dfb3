package addrspace

import (
	"bytes"
	"fmt"
)

// ReadAt resolves logical and fills buf from the backing file.
func ReadAt(img Image, logical uint64, buf []byte) error {
	loc, err := img.Resolve(logical)
	if err != nil {
		return err
	}
	return readLocation(loc, buf)
}

func readLocation(loc Location, buf []byte) error {
	if loc.Offset > uint64(loc.File.Size()) || uint64(len(buf)) > uint64(loc.File.Size())-loc.Offset {
		return fmt.Errorf("%w: %d bytes at %s", ErrTruncated, len(buf), loc)
	}
	n, err := loc.File.ReadAt(buf, int64(loc.Offset))
	if n == len(buf) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %d bytes at %s: %v", ErrTruncated, len(buf), loc, err)
	}
	return fmt.Errorf("%w: %d bytes at %s", ErrTruncated, len(buf), loc)
}

// ReadUint8 reads the byte at logical.
func ReadUint8(img Image, logical uint64) (uint8, error) {
	var b [1]byte
	if err := ReadAt(img, logical, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadUint32 reads a 32-bit value at logical in the image byte order.
func ReadUint32(img Image, logical uint64) (uint32, error) {
	var b [4]byte
	if err := ReadAt(img, logical, b[:]); err != nil {
		return 0, err
	}
	return img.ByteOrder().Uint32(b[:]), nil
}

// ReadInt32 reads a signed 32-bit value at logical.
func ReadInt32(img Image, logical uint64) (int32, error) {
	v, err := ReadUint32(img, logical)
	return int32(v), err
}

// ReadUint64 reads a 64-bit value at logical in the image byte order.
func ReadUint64(img Image, logical uint64) (uint64, error) {
	var b [8]byte
	if err := ReadAt(img, logical, b[:]); err != nil {
		return 0, err
	}
	return img.ByteOrder().Uint64(b[:]), nil
}

// ReadPointer reads a pointer-sized slot at logical.
func ReadPointer(img Image, logical uint64) (uint64, error) {
	if img.PointerSize() == 4 {
		v, err := ReadUint32(img, logical)
		return uint64(v), err
	}
	return ReadUint64(img, logical)
}

// ReadCString reads a NUL terminated string starting at logical.
func ReadCString(img Image, logical uint64) (string, error) {
	loc, err := img.Resolve(logical)
	if err != nil {
		return "", err
	}
	var out []byte
	chunk := make([]byte, 64)
	for {
		remaining := uint64(loc.File.Size()) - min(loc.Offset, uint64(loc.File.Size()))
		if remaining == 0 {
			return "", fmt.Errorf("%w: unterminated string at %#x", ErrTruncated, logical)
		}
		buf := chunk[:min(uint64(len(chunk)), remaining)]
		if err := readLocation(loc, buf); err != nil {
			return "", err
		}
		if i := bytes.IndexByte(buf, 0); i >= 0 {
			return string(append(out, buf[:i]...)), nil
		}
		out = append(out, buf...)
		loc.Offset += uint64(len(buf))
	}
}

package addrspace

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"
)

// SubCache is one numbered sub-cache file of a split shared cache.
type SubCache struct {
	Name    string
	Regions []Region
}

// SharedCache is a dyld shared cache split across a main cache and numbered
// sub-caches that share one logical address space.
type SharedCache struct {
	// RegionStart is the base load address of the cache if not slid.
	RegionStart uint64
	Main        []Region
	Subs        []SubCache
	Order       binary.ByteOrder
	PtrSize     int
}

// Resolve maps logical using the main regions then each sub-cache in order.
func (c *SharedCache) Resolve(logical uint64) (Location, error) {
	if loc, ok := c.resolve(logical); ok {
		return loc, nil
	}
	return Location{}, &OutOfRangeError{Image: "dyld_shared_cache", Logical: logical}
}

func (c *SharedCache) resolve(logical uint64) (Location, bool) {
	if loc, ok := firstMatch(c.Main, logical); ok {
		return loc, true
	}
	for _, sub := range c.Subs {
		if loc, ok := firstMatch(sub.Regions, logical); ok {
			return loc, true
		}
	}
	return Location{}, false
}

// Image returns a view of one image living in the cache. own are the ranges
// the image itself claims; they are searched before the cache wide regions.
func (c *SharedCache) Image(name string, own ...Region) *CacheImage {
	return &CacheImage{ImageName: name, Own: own, Cache: c}
}

// CacheImage is an image pre-loaded from a shared cache.
type CacheImage struct {
	ImageName string
	Own       []Region
	Cache     *SharedCache
}

func (i *CacheImage) Name() string        { return i.ImageName }
func (i *CacheImage) RegionStart() uint64 { return i.Cache.RegionStart }

func (i *CacheImage) ByteOrder() binary.ByteOrder { return byteOrder(i.Cache.Order) }
func (i *CacheImage) PointerSize() int            { return pointerSize(i.Cache.PtrSize) }

// Resolve tries the image's own ranges, then the main cache, then each
// sub-cache in declaration order. The first region claiming logical wins.
func (i *CacheImage) Resolve(logical uint64) (Location, error) {
	if loc, ok := firstMatch(i.Own, logical); ok {
		return loc, nil
	}
	if loc, ok := i.Cache.resolve(logical); ok {
		return loc, nil
	}
	return Location{}, &OutOfRangeError{Image: i.ImageName, Logical: logical}
}

// CacheMappingInfo is a dyld_cache_mapping_info entry.
type CacheMappingInfo struct {
	Address    uint64
	Size       uint64
	FileOffset uint64
	MaxProt    uint32
	InitProt   uint32
}

type cacheHeader struct {
	Magic             [16]byte
	MappingOffset     uint32
	MappingCount      uint32
	_                 [0xe0 - 0x18]byte
	SharedRegionStart uint64
	SharedRegionSize  uint64
}

// CacheHeader is the part of a dyld_cache_header needed to address the file.
type CacheHeader struct {
	Magic             string
	SharedRegionStart uint64
	SharedRegionSize  uint64
	Mappings          []CacheMappingInfo
}

// ParseCacheHeader reads the header and mapping table of a shared cache file.
func ParseCacheHeader(f File) (*CacheHeader, error) {
	var raw cacheHeader
	if err := binary.Read(io.NewSectionReader(f, 0, f.Size()), binary.LittleEndian, &raw); err != nil {
		return nil, fmt.Errorf("failed to read %s cache header: %w", f.Name(), err)
	}
	magic := strings.TrimRight(string(raw.Magic[:]), "\x00")
	if !strings.HasPrefix(magic, "dyld_v") {
		return nil, fmt.Errorf("%s: invalid shared cache magic %q", f.Name(), magic)
	}
	hdr := &CacheHeader{
		Magic:             magic,
		SharedRegionStart: raw.SharedRegionStart,
		SharedRegionSize:  raw.SharedRegionSize,
		Mappings:          make([]CacheMappingInfo, raw.MappingCount),
	}
	r := io.NewSectionReader(f, 0, f.Size())
	if _, err := r.Seek(int64(raw.MappingOffset), io.SeekStart); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, hdr.Mappings); err != nil {
		return nil, fmt.Errorf("failed to read %s cache mappings: %w", f.Name(), err)
	}
	return hdr, nil
}

// Regions converts the header mappings into regions backed by f.
func (h *CacheHeader) Regions(f File) []Region {
	regions := make([]Region, 0, len(h.Mappings))
	for _, m := range h.Mappings {
		regions = append(regions, Region{File: f, Start: m.Address, Size: m.Size, FileOffset: m.FileOffset})
	}
	return regions
}

// OpenSharedCache builds a SharedCache from a main cache file and its sub-cache files, in order.
func OpenSharedCache(main File, subs ...File) (*SharedCache, error) {
	hdr, err := ParseCacheHeader(main)
	if err != nil {
		return nil, err
	}
	c := &SharedCache{
		RegionStart: hdr.SharedRegionStart,
		Main:        hdr.Regions(main),
		Order:       binary.LittleEndian,
		PtrSize:     8,
	}
	for _, sf := range subs {
		shdr, err := ParseCacheHeader(sf)
		if err != nil {
			return nil, err
		}
		c.Subs = append(c.Subs, SubCache{Name: sf.Name(), Regions: shdr.Regions(sf)})
	}
	return c, nil
}

// Package swiftsym recovers Swift type names from symbolic mangled names
// embedded in Mach-O images, dyld shared caches and slid memory images.
package swiftsym

import (
	"io"
	"os"

	"github.com/apex/log"
	"github.com/blacktop/go-macho"
	mfixups "github.com/blacktop/go-macho/pkg/fixupchains"
	mtypes "github.com/blacktop/go-macho/types"
	"github.com/pkg/errors"

	"github.com/appsworld/swiftsym/pkg/addrspace"
	"github.com/appsworld/swiftsym/pkg/fixupchains"
	"github.com/appsworld/swiftsym/pkg/reference"
	"github.com/appsworld/swiftsym/pkg/swift/node"
	"github.com/appsworld/swiftsym/pkg/swift/symbolic"
	"github.com/appsworld/swiftsym/types"
)

// File is one image whose symbolic names can be decoded.
type File struct {
	Image addrspace.Image
	// Fixups is nil for images without chained fixups.
	Fixups *fixupchains.Table

	dec    *symbolic.Decoder
	opts   options
	closer io.Closer
}

// Open opens the named Mach-O file.
func Open(name string, opts ...Option) (*File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "failed to stat %s", name)
	}
	ff, err := NewFile(addrspace.NewFile(name, f, fi.Size()), opts...)
	if err != nil {
		f.Close()
		return nil, err
	}
	ff.closer = f
	return ff, nil
}

// NewFile parses the Mach-O in r.
func NewFile(r addrspace.File, opts ...Option) (*File, error) {
	m, err := macho.NewFile(r)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse Mach-O %s", r.Name())
	}
	return FromMachO(m, r, opts...)
}

// FromMachO wraps an already parsed Mach-O whose bytes are read from r.
func FromMachO(m *macho.File, r addrspace.File, opts ...Option) (*File, error) {
	img := &addrspace.MappedImage{
		ImageName: r.Name(),
		Base:      m.GetBaseAddress(),
		Order:     m.ByteOrder,
		PtrSize:   8,
	}
	if m.Magic != mtypes.Magic64 {
		img.PtrSize = 4
	}
	for _, seg := range m.Segments() {
		if seg.Filesz == 0 {
			continue
		}
		img.Regions = append(img.Regions, addrspace.Region{
			File:       r,
			Start:      seg.Addr,
			Size:       min(seg.Filesz, seg.Memsz),
			FileOffset: seg.Offset,
		})
	}

	cfg := buildOptions(opts...)
	var table *fixupchains.Table
	if m.HasDyldChainedFixups() {
		var err error
		if table, err = readFixups(m, img, cfg.logger); err != nil {
			return nil, errors.Wrapf(err, "failed to read fixups of %s", r.Name())
		}
	}
	return newFile(img, table, cfg), nil
}

// readFixups walks every chain named by the image's LC_DYLD_CHAINED_FIXUPS
// starts. Segments in a pointer format we cannot decode are skipped.
func readFixups(m *macho.File, img addrspace.Image, logger log.Interface) (*fixupchains.Table, error) {
	dcf, err := m.DyldChainedFixups()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(dcf.Imports))
	for _, imp := range dcf.Imports {
		names = append(names, imp.Name)
	}
	table := fixupchains.NewTable(m.GetBaseAddress(), names)
	table.Format = types.DCPtrKind(dcf.PointerFormat)

	segs := m.Segments()
	for idx, start := range dcf.Starts {
		if start.PageStarts == nil || idx >= len(segs) {
			continue
		}
		format := types.DCPtrKind(start.PointerFormat)
		base := segs[idx].Addr
		err := eachChainStart(start.PageStarts, int(start.PageCount), func(page int, off uint16) error {
			slot := base + uint64(page)*uint64(start.PageSize) + uint64(off)
			return table.WalkChain(img, format, slot)
		})
		if errors.Is(err, types.ErrUnsupportedPointerFormat) {
			logger.WithFields(log.Fields{
				"segment": segs[idx].Name,
				"format":  format,
			}).Warn("skipping chained fixups")
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "segment %s", segs[idx].Name)
		}
	}
	return table, nil
}

// eachChainStart calls fn with the page index and in-page offset of every
// chain start in a segment's page_start table.
func eachChainStart(starts []mfixups.DCPtrStart, count int, fn func(page int, off uint16) error) error {
	count = min(count, len(starts))
	for page := range count {
		ps := starts[page]
		if ps == mfixups.DYLD_CHAINED_PTR_START_NONE {
			continue
		}
		if ps&mfixups.DYLD_CHAINED_PTR_START_MULTI == 0 {
			if err := fn(page, uint16(ps)); err != nil {
				return err
			}
			continue
		}
		for i := int(ps &^ mfixups.DYLD_CHAINED_PTR_START_MULTI); i < len(starts); i++ {
			cs := starts[i]
			if err := fn(page, uint16(cs&^mfixups.DYLD_CHAINED_PTR_START_LAST)); err != nil {
				return err
			}
			if cs&mfixups.DYLD_CHAINED_PTR_START_LAST != 0 {
				break
			}
		}
	}
	return nil
}

// NewImage wraps any image, such as a shared cache image or a slid memory
// image. fixups may be nil.
func NewImage(img addrspace.Image, fixups *fixupchains.Table, opts ...Option) *File {
	return newFile(img, fixups, buildOptions(opts...))
}

// NewCacheImage wraps the image called name in cache. own lists the image's
// own mappings, searched before the rest of the cache.
func NewCacheImage(cache *addrspace.SharedCache, name string, own []addrspace.Region, opts ...Option) *File {
	return NewImage(cache.Image(name, own...), nil, opts...)
}

func newFile(img addrspace.Image, table *fixupchains.Table, cfg options) *File {
	ctx := reference.Context{Image: img, Log: cfg.logger}
	if table != nil {
		ctx.Fixups = table
	}
	f := &File{Image: img, Fixups: table, opts: cfg}
	f.dec = symbolic.New(ctx, cfg.decoderOptions()...)
	cfg.logger.WithFields(log.Fields{
		"image":  img.Name(),
		"fixups": table.Len(),
	}).Debug("opened image")
	return f
}

// Close closes the underlying file when it was opened with Open.
func (f *File) Close() error {
	var err error
	if f.closer != nil {
		err = f.closer.Close()
		f.closer = nil
	}
	return err
}

// Pool returns the pool decoded trees are interned in.
func (f *File) Pool() *node.Pool { return f.opts.pool }

// FileOffsetFor maps a logical address of the image to the file holding it.
func (f *File) FileOffsetFor(addr uint64) (addrspace.Location, error) {
	return f.Image.Resolve(addr)
}

func (f *File) context() reference.Context {
	ctx := reference.Context{Image: f.Image, Log: f.opts.logger}
	if f.Fixups != nil {
		ctx.Fixups = f.Fixups
	}
	return ctx
}

package swiftsym

import (
	"context"

	"github.com/apex/log"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/appsworld/swiftsym/pkg/addrspace"
	"github.com/appsworld/swiftsym/pkg/reference"
	"github.com/appsworld/swiftsym/pkg/swift/node"
	"github.com/appsworld/swiftsym/pkg/swift/symbolic"
)

// DecodeSymbolicName returns the readable form of the symbolic mangled name at addr.
func (f *File) DecodeSymbolicName(addr uint64) (string, error) {
	return f.dec.Decode(addr)
}

// DecodeSymbolicNode returns the symbolic mangled name at addr as a tree.
func (f *File) DecodeSymbolicNode(addr uint64) (*node.Node, error) {
	return f.dec.DecodeNode(addr)
}

// ReadMangledName returns the fragments of the symbolic mangled name at addr.
func (f *File) ReadMangledName(addr uint64) (*symbolic.MangledName, error) {
	return f.dec.ReadName(addr)
}

// ResolveReference follows the 32-bit reference stored at field. The result
// holds either the location of the target or the name of an imported symbol.
func (f *File) ResolveReference(shape reference.Shape, field uint64) (reference.Resolved[addrspace.Location], error) {
	return reference.ResolveAt(f.context(), shape, field, func(_ uint64, loc addrspace.Location) (addrspace.Location, error) {
		return loc, nil
	})
}

// Name is the outcome of decoding one symbolic mangled name.
type Name struct {
	Addr uint64
	Name string
	Err  error
}

// DecodeAll decodes the names at addrs, at most WithConcurrency of them at a
// time. A name that fails to decode carries its own error; the returned
// error is only set when ctx is done.
func (f *File) DecodeAll(ctx context.Context, addrs []uint64) ([]Name, error) {
	names := make([]Name, len(addrs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.opts.concurrency)
	for i, addr := range addrs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			name, err := f.dec.Decode(addr)
			if err != nil {
				f.opts.logger.WithFields(log.Fields{
					"image": f.Image.Name(),
					"addr":  addr,
				}).WithError(err).Warn("failed to decode symbolic name")
			}
			names[i] = Name{Addr: addr, Name: name, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return names, errors.Wrapf(err, "decoding %d names of %s", len(addrs), f.Image.Name())
	}
	return names, nil
}

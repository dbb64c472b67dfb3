package symbolic

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/apex/log"

	"github.com/appsworld/swiftsym/pkg/addrspace"
	"github.com/appsworld/swiftsym/pkg/reference"
	"github.com/appsworld/swiftsym/types/swift"
)

const maxContextDepth = 32

// Context is a context descriptor reached through a symbolic reference.
type Context struct {
	Address uint64
	Flags   swift.ContextDescriptorFlags
	Name    string
	Parent  *Context
}

func (c *Context) Kind() swift.ContextDescriptorKind { return c.Flags.Kind() }

// QualifiedName joins the names of c and its named parents with ".".
// Extension and anonymous parents are skipped.
func (c *Context) QualifiedName() string {
	var parts []string
	for p := c; p != nil; p = p.Parent {
		if !p.Kind().HasName() || p.Name == "" {
			continue
		}
		parts = append(parts, p.Name)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ".")
}

func (c *Context) String() string {
	return fmt.Sprintf("%s %q @ %#x", c.Kind(), c.Name, c.Address)
}

// readContext decodes the context descriptor at addr and, as far as it can,
// its parent chain.
func (d *Decoder) readContext(addr uint64, depth int) (*Context, error) {
	img := d.ctx.Image
	bo := img.ByteOrder()
	hdr := make([]byte, swift.SizeOfContextDescriptor+4)
	if err := addrspace.ReadAt(img, addr, hdr[:swift.SizeOfContextDescriptor]); err != nil {
		return nil, fmt.Errorf("failed to read context descriptor at %#x: %w", addr, err)
	}
	var desc swift.TargetNamedContextDescriptor
	if desc.Flags = swift.ContextDescriptorFlags(bo.Uint32(hdr)); desc.Flags.Kind().HasName() {
		if err := addrspace.ReadAt(img, addr+swift.SizeOfContextDescriptor, hdr[swift.SizeOfContextDescriptor:]); err != nil {
			return nil, fmt.Errorf("failed to read context name offset at %#x: %w", addr, err)
		}
	} else {
		hdr = hdr[:swift.SizeOfContextDescriptor]
	}
	if err := desc.Read(bytes.NewReader(hdr), bo, addr); err != nil {
		return nil, fmt.Errorf("failed to parse context descriptor at %#x: %w", addr, err)
	}

	ctx := &Context{Address: addr, Flags: desc.Flags}
	if desc.NameOffset.IsSet() {
		name, err := addrspace.ReadCString(img, desc.NameOffset.GetAddress())
		if err != nil {
			return nil, fmt.Errorf("failed to read name of %s context at %#x: %w", desc.Flags.Kind(), addr, err)
		}
		ctx.Name = name
	}

	if !desc.ParentOffset.IsSet() || depth >= maxContextDepth {
		return ctx, nil
	}
	ref, err := reference.ReadIndirectable(img, desc.ParentOffset.Address)
	if err != nil {
		return ctx, nil
	}
	parent, err := reference.Resolve(d.ctx, ref, func(paddr uint64, _ addrspace.Location) (*Context, error) {
		return d.readContext(paddr, depth+1)
	})
	switch {
	case err != nil:
		d.log.WithFields(log.Fields{
			"context": fmt.Sprintf("%#x", addr),
			"parent":  ref.String(),
		}).WithError(err).Debug("parent context not resolved")
	case parent.IsSymbol():
		d.log.WithFields(log.Fields{
			"context": fmt.Sprintf("%#x", addr),
			"symbol":  parent.Symbol,
		}).Debug("parent context is imported")
	default:
		ctx.Parent = parent.Element
	}
	return ctx, nil
}

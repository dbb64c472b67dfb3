package node

import "strconv"

// ContentsKind says which payload a node carries.
type ContentsKind uint8

const (
	NoContents ContentsKind = iota
	IndexContents
	TextContents
)

// Contents is the payload of a node: nothing, an index or a text.
// It is comparable and can be used as part of a map key.
type Contents struct {
	kind  ContentsKind
	index uint64
	text  string
}

// None returns empty contents.
func None() Contents { return Contents{} }

// Index returns index contents.
func Index(i uint64) Contents { return Contents{kind: IndexContents, index: i} }

// Text returns text contents.
func Text(s string) Contents { return Contents{kind: TextContents, text: s} }

func (c Contents) Kind() ContentsKind { return c.kind }

// Index returns the index payload.
func (c Contents) Index() (uint64, bool) {
	return c.index, c.kind == IndexContents
}

// Text returns the text payload.
func (c Contents) Text() (string, bool) {
	return c.text, c.kind == TextContents
}

func (c Contents) String() string {
	switch c.kind {
	case IndexContents:
		return strconv.FormatUint(c.index, 10)
	case TextContents:
		return strconv.Quote(c.text)
	}
	return ""
}

// Package header holds the metadata found at the start of a stream of
// map features (nodes, ways, relations).
//
// A Header can contain any number of bounding boxes, although usually
// there is only one, or none. Some formats allow only a single box, so
// creating headers with several boxes is discouraged.
//
// The header also carries a flag telling whether the stream may contain
// multiple versions of the same object. This is the case for history and
// change streams but not for ordinary snapshots. Not every format can
// express the difference, so the flag is advisory only.
//
// Finally a Header carries free-form key-value options, for example the
// "generator" that produced the stream. Format readers and writers may
// treat some keys specially; Header itself does not.
package header

import (
	"slices"
	"strconv"
	"strings"

	"github.com/gogama/streamheader/box"
	"github.com/gogama/streamheader/options"
)

// Header is stream header metadata. The zero value is an empty header
// with no boxes, the multi-version flag unset, and no options.
//
// The option accessors (Get, Set, All, ...) are promoted from the
// embedded options.Options.
//
// All setters return the header itself so calls can be chained:
//
//	h := header.New().AddBox(b1).AddBox(b2).SetHasMultipleObjectVersions(true)
//
// Header is not safe for concurrent use. A Header can be copied by
// assignment. Adding, removing or setting boxes and options on either
// value is not seen by the other. The exception is writes made through the
// slice returned by Boxes on the value the copy was taken from. Use Clone
// when that matters.
type Header struct {
	options.Options
	boxes []box.Box
	// owner is the address of the value that may append to boxes in
	// place. Any other address is a copy and must take its own storage.
	owner *Header
	// hasMultipleObjectVersions is true if the stream may contain more
	// than one version of the same object.
	hasMultipleObjectVersions bool
}

// New returns a header whose options are initialised from pairs, as by
// options.New.
func New(pairs ...options.Pair) *Header {
	return &Header{Options: *options.New(pairs...)}
}

// Boxes returns the bounding boxes in the order they were added.
//
// The returned slice is the header's own storage, so writing to its
// elements changes the header. To add or remove boxes use AddBox,
// SetBoxes or ClearBoxes.
func (h *Header) Boxes() []box.Box {
	h.own()
	return h.boxes
}

// SetBoxes replaces all the bounding boxes with a copy of boxes.
func (h *Header) SetBoxes(boxes []box.Box) *Header {
	h.boxes = append(h.boxes[:0:0], boxes...)
	h.owner = h
	return h
}

// AddBox appends b to the bounding boxes. Invalid boxes are kept as is.
func (h *Header) AddBox(b box.Box) *Header {
	h.own()
	h.boxes = append(h.boxes, b)
	return h
}

// AddBoxes appends boxes, in order, to the bounding boxes.
func (h *Header) AddBoxes(boxes ...box.Box) *Header {
	h.own()
	h.boxes = append(h.boxes, boxes...)
	return h
}

// ClearBoxes removes all bounding boxes. Boxes then returns nil.
func (h *Header) ClearBoxes() *Header {
	h.boxes = nil
	h.owner = h
	return h
}

func (h *Header) own() {
	if h.owner != h {
		h.boxes = slices.Clone(h.boxes)
		h.owner = h
	}
}

// Box returns the first bounding box, or an invalid box if there is none.
// It does not look at any further boxes; see JoinedBoxes.
func (h *Header) Box() box.Box {
	if len(h.boxes) == 0 {
		return box.Box{}
	}
	return h.boxes[0]
}

// JoinedBoxes returns the smallest box enclosing all the bounding boxes.
// This is usually what you want unless you handle several boxes yourself.
//
// Invalid boxes do not contribute. If there are no valid boxes the result
// is invalid.
func (h *Header) JoinedBoxes() box.Box {
	var joined box.Box
	for _, b := range h.boxes {
		joined.Extend(b)
	}
	return joined
}

// HasMultipleObjectVersions reports whether the stream may contain
// multiple versions of the same object.
func (h *Header) HasMultipleObjectVersions() bool {
	return h.hasMultipleObjectVersions
}

// SetHasMultipleObjectVersions sets the multiple object versions flag.
func (h *Header) SetHasMultipleObjectVersions(value bool) *Header {
	h.hasMultipleObjectVersions = value
	return h
}

// Clone returns a deep copy of h.
func (h *Header) Clone() *Header {
	c := &Header{
		Options:                   *h.Options.Clone(),
		boxes:                     slices.Clone(h.boxes),
		hasMultipleObjectVersions: h.hasMultipleObjectVersions,
	}
	c.owner = c
	return c
}

func (h *Header) String() string {
	var sb strings.Builder
	sb.WriteString("boxes=[")
	for i, b := range h.boxes {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(b.String())
	}
	sb.WriteString("] multiple_object_versions=")
	sb.WriteString(strconv.FormatBool(h.hasMultipleObjectVersions))
	if !h.Options.Empty() {
		sb.WriteString(" options=[")
		sb.WriteString(h.Options.String())
		sb.WriteByte(']')
	}
	return sb.String()
}

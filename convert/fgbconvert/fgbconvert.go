// Package fgbconvert converts between FlatGeobuf header tables and stream
// headers.
//
// A FlatGeobuf header carries a single optional envelope, a handful of
// descriptive strings, a feature count and a coordinate reference system.
// The envelope becomes the stream header's only bounding box. Everything
// else becomes an option under the Key* constants of this package and
// package crs. FlatGeobuf has no notion of object history, so headers read
// from it never have multiple object versions.
package fgbconvert

import (
	"strconv"

	"github.com/gogama/flatgeobuf/flatgeobuf/flat"
	"github.com/gogama/streamheader/box"
	"github.com/gogama/streamheader/crs"
	"github.com/gogama/streamheader/header"
	"github.com/gogama/streamheader/interop"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/paulmach/orb"
)

// Option keys for FlatGeobuf header fields.
const (
	KeyName          = "name"
	KeyTitle         = "title"
	KeyDescription   = "description"
	KeyMetadata      = "metadata"
	KeyFeaturesCount = "features_count"
)

var stringFields = []struct {
	key string
	get func(*flat.Header) []byte
	add func(*flatbuffers.Builder, flatbuffers.UOffsetT)
}{
	{KeyName, (*flat.Header).Name, flat.HeaderAddName},
	{KeyTitle, (*flat.Header).Title, flat.HeaderAddTitle},
	{KeyDescription, (*flat.Header).Description, flat.HeaderAddDescription},
	{KeyMetadata, (*flat.Header).Metadata, flat.HeaderAddMetadata},
}

var knownKeys = map[string]bool{
	KeyName:            true,
	KeyTitle:           true,
	KeyDescription:     true,
	KeyMetadata:        true,
	KeyFeaturesCount:   true,
	crs.KeyOrg:         true,
	crs.KeyCode:        true,
	crs.KeyName:        true,
	crs.KeyDescription: true,
	crs.KeyWKT:         true,
	crs.KeyCodeString:  true,
}

// FromFlat converts a FlatGeobuf header table. Corrupt tables produce an
// error rather than a panic.
func FromFlat(hdr *flat.Header, opts ...Option) (*header.Header, error) {
	if hdr == nil {
		textPanic("nil header")
	}
	c := newConfig(opts)
	h := header.New()
	err := interop.FlatBufferSafe(func() error {
		b, ok, err := envelopeBox(hdr)
		if err != nil {
			return err
		} else if ok {
			if !b.Valid() {
				c.logger.Debug("FlatGeobuf envelope is not a valid box", "box", b)
			}
			h.AddBox(b)
		}
		for _, f := range stringFields {
			if v := f.get(hdr); len(v) > 0 {
				h.Set(f.key, string(v))
			}
		}
		// Zero means the count is unknown.
		if n := hdr.FeaturesCount(); n > 0 {
			h.Set(KeyFeaturesCount, strconv.FormatUint(n, 10))
		}
		var obj flat.Crs
		if hdr.Crs(&obj) != nil {
			ref, err := crs.FromFlat(&obj)
			if err != nil {
				return err
			}
			for _, p := range ref.Pairs() {
				h.Set(p.Key, p.Value)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.logger.Debug("read FlatGeobuf header", "header", h)
	return h, nil
}

// FromBytes converts a size-prefixed FlatGeobuf header, as found after the
// magic bytes at the start of a FlatGeobuf file.
func FromBytes(buf []byte, opts ...Option) (*header.Header, error) {
	if len(buf) < flatbuffers.SizeUint32 {
		return nil, ErrTruncated
	}
	n := uint64(flatbuffers.GetUint32(buf))
	if n > uint64(len(buf)-flatbuffers.SizeUint32) {
		return nil, fmtErr("size prefix %d, %d bytes available: %w", n, len(buf)-flatbuffers.SizeUint32, ErrTruncated)
	}
	table := buf[flatbuffers.SizeUint32 : flatbuffers.SizeUint32+n]
	hdr, err := interop.FlatBufferValue(func() (*flat.Header, error) {
		return flat.GetRootAsHeader(table, 0), nil
	})
	if err != nil {
		return nil, err
	}
	return FromFlat(hdr, opts...)
}

// envelopeBox reads the 2D extent from the envelope. Envelopes with Z or
// M dimensions list all minimums first, then all maximums.
func envelopeBox(hdr *flat.Header) (box.Box, bool, error) {
	n := hdr.EnvelopeLength()
	if n == 0 {
		return box.Box{}, false, nil
	} else if n < 4 || n%2 != 0 {
		return box.Box{}, false, fmtErr("envelope of length %d: %w", n, ErrInvalidEnvelope)
	}
	d := n / 2
	lo := orb.Point{hdr.Envelope(0), hdr.Envelope(1)}
	hi := orb.Point{hdr.Envelope(d), hdr.Envelope(d + 1)}
	return box.New(lo, hi), true, nil
}

// ToBuilder writes h as a FlatGeobuf header table and returns its offset.
//
// A header with more than one bounding box fails with ErrMultipleBoxes
// unless WithJoinBoxes is given. Options that have no FlatGeobuf field, or
// whose value would not read back (an empty string, a zero feature count),
// are logged at debug level and skipped. A set multiple object versions flag
// is logged at warn level and skipped.
func ToBuilder(b *flatbuffers.Builder, h *header.Header, opts ...Option) (flatbuffers.UOffsetT, error) {
	c := newConfig(opts)

	env, err := envelope(h, &c)
	if err != nil {
		return 0, err
	}
	var featuresCount uint64
	if s, ok := h.Get(KeyFeaturesCount); ok {
		if featuresCount, err = strconv.ParseUint(s, 10, 64); err != nil {
			return 0, fmtErr("%s %q: %w", KeyFeaturesCount, s, ErrInvalidOption)
		} else if featuresCount == 0 {
			c.logger.Debug("FlatGeobuf reads a zero feature count as unknown, skipping", "key", KeyFeaturesCount)
		}
	}
	ref, err := crs.FromOptions(&h.Options)
	if err != nil {
		return 0, fmtErr("%w: %w", ErrInvalidOption, err)
	}
	if h.HasMultipleObjectVersions() {
		c.logger.Warn("FlatGeobuf cannot mark multiple object versions, dropping flag")
	}
	for k := range h.All() {
		if !knownKeys[k] {
			c.logger.Debug("option has no FlatGeobuf header field, skipping", "key", k)
		}
	}

	// Strings, vectors and nested tables must precede HeaderStart.
	offsets := make([]flatbuffers.UOffsetT, len(stringFields))
	for i, f := range stringFields {
		v, ok := h.Get(f.key)
		switch {
		case !ok:
		case v == "":
			c.logger.Debug("FlatGeobuf reads an empty string as absent, skipping", "key", f.key)
		default:
			offsets[i] = b.CreateString(v)
		}
	}
	var envOffset flatbuffers.UOffsetT
	if env != nil {
		flat.HeaderStartEnvelopeVector(b, len(env))
		for i := len(env) - 1; i >= 0; i-- {
			b.PrependFloat64(env[i])
		}
		envOffset = b.EndVector(len(env))
	}
	var crsOffset flatbuffers.UOffsetT
	if ref != nil {
		crsOffset = ref.ToBuilder(b)
	}

	flat.HeaderStart(b)
	for i, f := range stringFields {
		if offsets[i] != 0 {
			f.add(b, offsets[i])
		}
	}
	if envOffset != 0 {
		flat.HeaderAddEnvelope(b, envOffset)
	}
	flat.HeaderAddFeaturesCount(b, featuresCount)
	if crsOffset != 0 {
		flat.HeaderAddCrs(b, crsOffset)
	}
	return flat.HeaderEnd(b), nil
}

// ToBytes returns h as a size-prefixed FlatGeobuf header.
func ToBytes(h *header.Header, opts ...Option) ([]byte, error) {
	b := flatbuffers.NewBuilder(256)
	offset, err := ToBuilder(b, h, opts...)
	if err != nil {
		return nil, err
	}
	b.FinishSizePrefixed(offset)
	return b.FinishedBytes(), nil
}

// envelope returns the envelope values for h, or nil if there is no valid
// bounding box to write.
func envelope(h *header.Header, c *config) ([]float64, error) {
	var bb box.Box
	switch n := len(h.Boxes()); {
	case n == 0:
		return nil, nil
	case n == 1:
		bb = h.Box()
	case c.joinBoxes:
		bb = h.JoinedBoxes()
		c.logger.Debug("joined bounding boxes for FlatGeobuf envelope", "count", n, "joined", bb)
	default:
		return nil, fmtErr("header has %d boxes: %w", n, ErrMultipleBoxes)
	}
	if !bb.Valid() {
		return nil, nil
	}
	lo, hi := bb.Min(), bb.Max()
	return []float64{lo[0], lo[1], hi[0], hi[1]}, nil
}

// Package crs describes the coordinate reference system carried in a
// FlatGeobuf header and maps it onto stream header options.
package crs

import (
	"strconv"

	"github.com/gogama/flatgeobuf/flatgeobuf/flat"
	"github.com/gogama/streamheader/interop"
	"github.com/gogama/streamheader/options"
	flatbuffers "github.com/google/flatbuffers/go"
)

// Option keys used by Pairs and FromOptions.
const (
	KeyOrg         = "crs_org"
	KeyCode        = "crs_code"
	KeyName        = "crs_name"
	KeyDescription = "crs_description"
	KeyWKT         = "crs_wkt"
	KeyCodeString  = "crs_code_string"
)

type CRS struct {
	Org         string
	Code        int32
	Name        string
	Description string
	WKT         string
	CodeString  string
}

// WGS84 returns the World Geodetic System 1984 reference system
// (EPSG:4326), the one used by OpenStreetMap data.
func WGS84() *CRS {
	return &CRS{
		Org:  "EPSG",
		Code: 4326,
		Name: "WGS 84",
	}
}

func FromFlat(obj *flat.Crs) (*CRS, error) {
	var result CRS
	err := interop.FlatBufferSafe(func() error {
		result.Org = string(obj.Org())
		result.Code = obj.Code()
		result.Name = string(obj.Name())
		result.Description = string(obj.Description())
		result.WKT = string(obj.Wkt())
		result.CodeString = string(obj.CodeString())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ToBuilder writes c as a Crs table and returns its offset. It must not be
// called while another table is being built.
func (c *CRS) ToBuilder(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	func() {
		if c.Org != "" {
			offset := b.CreateString(c.Org)
			defer flat.CrsAddOrg(b, offset)
		}
		defer flat.CrsAddCode(b, c.Code)
		if c.Name != "" {
			offset := b.CreateString(c.Name)
			defer flat.CrsAddName(b, offset)
		}
		if c.Description != "" {
			offset := b.CreateString(c.Description)
			defer flat.CrsAddDescription(b, offset)
		}
		if c.WKT != "" {
			offset := b.CreateString(c.WKT)
			defer flat.CrsAddWkt(b, offset)
		}
		// CodeString has its own table field, distinct from Wkt.
		if c.CodeString != "" {
			offset := b.CreateString(c.CodeString)
			defer flat.CrsAddCodeString(b, offset)
		}
		flat.CrsStart(b)
	}()
	return flat.CrsEnd(b)
}

// Pairs returns c as header options. Empty string fields are omitted; the
// code is always present.
func (c *CRS) Pairs() []options.Pair {
	pairs := make([]options.Pair, 0, 6)
	add := func(key, value string) {
		if value != "" {
			pairs = append(pairs, options.Pair{Key: key, Value: value})
		}
	}
	add(KeyOrg, c.Org)
	add(KeyCode, strconv.FormatInt(int64(c.Code), 10))
	add(KeyName, c.Name)
	add(KeyDescription, c.Description)
	add(KeyWKT, c.WKT)
	add(KeyCodeString, c.CodeString)
	return pairs
}

// FromOptions is the reverse of Pairs. It returns nil if none of the CRS
// keys is set.
func FromOptions(o *options.Options) (*CRS, error) {
	var c CRS
	var found bool
	get := func(key string) string {
		v, ok := o.Get(key)
		found = found || ok
		return v
	}
	c.Org = get(KeyOrg)
	c.Name = get(KeyName)
	c.Description = get(KeyDescription)
	c.WKT = get(KeyWKT)
	c.CodeString = get(KeyCodeString)
	if s := get(KeyCode); s != "" {
		code, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return nil, fmtErr("invalid %s option %q: %w", KeyCode, s, ErrInvalidCode)
		}
		c.Code = int32(code)
	}
	if !found {
		return nil, nil
	}
	return &c, nil
}

// Package options implements an insertion-ordered set of string
// key-value pairs, used for free-form stream metadata such as the name of
// the program that generated a file.
//
// Keys are unique. Setting a key that is already present replaces its
// value and keeps its position, so iteration always reflects the order in
// which keys were first added.
package options

import (
	"iter"
	"slices"
	"strings"
)

// Pair is a single key-value option.
type Pair struct {
	Key   string
	Value string
}

// Options is an ordered key-value store. The zero value is an empty set
// ready to use.
//
// Options is not safe for concurrent use. A copy of an Options value is
// independent of the original: neither sees later changes made through the
// other. Copying is cheap because storage is shared until the first write.
type Options struct {
	pairs []Pair
	// index maps from key to position in pairs. It is built lazily the
	// first time a lookup happens on a set of at least indexThreshold
	// pairs, and dropped whenever positions shift. A copy may share it
	// with the original, so a hit is only trusted after checking pairs.
	index map[string]int
	// owner is the address of the value that may write to pairs in place.
	// Any other address is a copy and must take its own storage first.
	owner *Options
}

// New returns a set initialised from pairs, applied in order with Set.
// If a key repeats, the last value wins and the key keeps the position of
// its first occurrence.
func New(pairs ...Pair) *Options {
	o := &Options{pairs: make([]Pair, 0, len(pairs))}
	o.owner = o
	for _, p := range pairs {
		o.Set(p.Key, p.Value)
	}
	return o
}

const indexThreshold = 6

func (o *Options) find(key string) (i int, ok bool) {
	if o.index != nil {
		if i, ok = o.index[key]; !ok {
			return
		} else if i < len(o.pairs) && o.pairs[i].Key == key {
			return
		}
		// Written by a value sharing the map.
		o.index = nil
		i, ok = 0, false
	}
	if len(o.pairs) < indexThreshold {
		for j := range o.pairs {
			if o.pairs[j].Key == key {
				i, ok = j, true
				break
			}
		}
	} else {
		o.index = make(map[string]int, len(o.pairs))
		for j := range o.pairs {
			if o.pairs[j].Key == key {
				i, ok = j, true
			}
			o.index[o.pairs[j].Key] = j
		}
	}
	return
}

// own gives a copied Options private storage before it is written.
func (o *Options) own() {
	if o.owner != o {
		o.pairs = slices.Clone(o.pairs)
		o.index = nil
		o.owner = o
	}
}

// Set sets key to value.
func (o *Options) Set(key, value string) {
	o.own()
	if i, ok := o.find(key); ok {
		// Existing elements may be visible to copies; never write them.
		pairs := slices.Clone(o.pairs)
		pairs[i].Value = value
		o.pairs = pairs
		return
	}
	o.pairs = append(o.pairs, Pair{Key: key, Value: value})
	if o.index != nil {
		o.index[key] = len(o.pairs) - 1
	}
}

// SetBool sets key to "true" or "false".
func (o *Options) SetBool(key string, value bool) {
	if value {
		o.Set(key, "true")
	} else {
		o.Set(key, "false")
	}
}

// SetFromString sets an option given as "key=value". The string is split
// at the first '='. Without an '=' the whole string is the key and the
// value is "true".
func (o *Options) SetFromString(s string) {
	if key, value, ok := strings.Cut(s, "="); ok {
		o.Set(key, value)
	} else {
		o.Set(s, "true")
	}
}

// Get returns the value for key and whether it was present.
func (o *Options) Get(key string) (string, bool) {
	if i, ok := o.find(key); ok {
		return o.pairs[i].Value, true
	}
	return "", false
}

// GetOr returns the value for key, or def if key is not present.
func (o *Options) GetOr(key, def string) string {
	if v, ok := o.Get(key); ok {
		return v
	}
	return def
}

// IsTrue reports whether key is set to "true" or "yes".
func (o *Options) IsTrue(key string) bool {
	v, _ := o.Get(key)
	return v == "true" || v == "yes"
}

// IsFalse reports whether key is set to "false" or "no".
func (o *Options) IsFalse(key string) bool {
	v, _ := o.Get(key)
	return v == "false" || v == "no"
}

// IsNotFalse is the negation of IsFalse: an absent key is not false.
func (o *Options) IsNotFalse(key string) bool {
	return !o.IsFalse(key)
}

// Delete removes key, reporting whether it was present. Later keys keep
// their relative order.
func (o *Options) Delete(key string) bool {
	i, ok := o.find(key)
	if !ok {
		return false
	}
	o.pairs = slices.Delete(slices.Clone(o.pairs), i, i+1)
	o.index = nil
	o.owner = o
	return true
}

func (o *Options) Len() int {
	return len(o.pairs)
}

func (o *Options) Empty() bool {
	return len(o.pairs) == 0
}

// All iterates over the options in insertion order.
func (o *Options) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, p := range o.pairs {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Pairs returns a copy of the options in insertion order.
func (o *Options) Pairs() []Pair {
	if len(o.pairs) == 0 {
		return nil
	}
	pairs := make([]Pair, len(o.pairs))
	copy(pairs, o.pairs)
	return pairs
}

func (o *Options) Clone() *Options {
	c := &Options{pairs: o.Pairs()}
	c.owner = c
	return c
}

// String formats the options as comma-separated key=value pairs.
func (o *Options) String() string {
	var sb strings.Builder
	for i, p := range o.pairs {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(p.Key)
		sb.WriteByte('=')
		sb.WriteString(p.Value)
	}
	return sb.String()
}

package options_test

import (
	"fmt"
	"maps"
	"slices"
	"testing"

	"github.com/gogama/streamheader/options"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestZeroValue(t *testing.T) {
	var o options.Options
	require.True(t, o.Empty())
	require.Zero(t, o.Len())
	_, ok := o.Get("generator")
	require.False(t, ok)
	require.Equal(t, "default", o.GetOr("generator", "default"))
	require.Nil(t, o.Pairs())
	require.Equal(t, "", o.String())

	o.Set("generator", "test")
	require.Equal(t, "test", o.GetOr("generator", "default"))
}

func TestNew(t *testing.T) {
	o := options.New(
		options.Pair{Key: "generator", Value: "osmium/1.0"},
		options.Pair{Key: "format", Value: "xml"},
		options.Pair{Key: "generator", Value: "osmium/2.0"},
	)
	require.Equal(t, 2, o.Len())
	want := []options.Pair{
		{Key: "generator", Value: "osmium/2.0"},
		{Key: "format", Value: "xml"},
	}
	if diff := cmp.Diff(want, o.Pairs()); diff != "" {
		t.Errorf("Pairs mismatch (-want +got):\n%s", diff)
	}
}

func TestSetKeepsPosition(t *testing.T) {
	var o options.Options
	o.Set("a", "1")
	o.Set("b", "2")
	o.Set("c", "3")
	o.Set("a", "4")
	require.Equal(t, "a=4,b=2,c=3", o.String())
}

func TestSetBool(t *testing.T) {
	var o options.Options
	o.SetBool("pbf_dense_nodes", true)
	o.SetBool("add_metadata", false)
	require.True(t, o.IsTrue("pbf_dense_nodes"))
	require.True(t, o.IsFalse("add_metadata"))
	require.Equal(t, "false", o.GetOr("add_metadata", ""))
}

func TestSetFromString(t *testing.T) {
	for _, tc := range []struct {
		in, key, value string
	}{
		{"generator=osmium", "generator", "osmium"},
		{"xml_change_format", "xml_change_format", "true"},
		{"url=http://example.com/?a=b", "url", "http://example.com/?a=b"},
		{"empty=", "empty", ""},
	} {
		t.Run(tc.in, func(t *testing.T) {
			var o options.Options
			o.SetFromString(tc.in)
			v, ok := o.Get(tc.key)
			require.True(t, ok)
			require.Equal(t, tc.value, v)
		})
	}
}

func TestBooleanHelpers(t *testing.T) {
	o := options.New(
		options.Pair{Key: "t", Value: "true"},
		options.Pair{Key: "y", Value: "yes"},
		options.Pair{Key: "f", Value: "false"},
		options.Pair{Key: "n", Value: "no"},
		options.Pair{Key: "x", Value: "maybe"},
	)
	for _, tc := range []struct {
		key                     string
		isTrue, isFalse, notFal bool
	}{
		{"t", true, false, true},
		{"y", true, false, true},
		{"f", false, true, false},
		{"n", false, true, false},
		{"x", false, false, true},
		{"missing", false, false, true},
	} {
		t.Run(tc.key, func(t *testing.T) {
			require.Equal(t, tc.isTrue, o.IsTrue(tc.key))
			require.Equal(t, tc.isFalse, o.IsFalse(tc.key))
			require.Equal(t, tc.notFal, o.IsNotFalse(tc.key))
		})
	}
}

func TestManyKeys(t *testing.T) {
	// Enough keys to switch lookups over to the index map.
	var o options.Options
	for i := 0; i < 20; i++ {
		o.Set(fmt.Sprintf("k%02d", i), fmt.Sprint(i))
	}
	for i := 0; i < 20; i++ {
		v, ok := o.Get(fmt.Sprintf("k%02d", i))
		require.True(t, ok)
		require.Equal(t, fmt.Sprint(i), v)
	}

	o.Set("k05", "five")
	o.Set("extra", "x")
	require.Equal(t, 21, o.Len())
	require.Equal(t, "five", o.GetOr("k05", ""))
	require.Equal(t, "x", o.GetOr("extra", ""))

	require.True(t, o.Delete("k00"))
	require.False(t, o.Delete("k00"))
	require.Equal(t, 20, o.Len())
	require.Equal(t, "k01", o.Pairs()[0].Key)
	require.Equal(t, "x", o.GetOr("extra", ""))
	require.Equal(t, "19", o.GetOr("k19", ""))
}

func TestAllInsertionOrder(t *testing.T) {
	o := options.New(
		options.Pair{Key: "z", Value: "1"},
		options.Pair{Key: "a", Value: "2"},
		options.Pair{Key: "m", Value: "3"},
	)
	var keys []string
	for k := range o.All() {
		keys = append(keys, k)
	}
	require.Equal(t, []string{"z", "a", "m"}, keys)
	require.Equal(t, map[string]string{"z": "1", "a": "2", "m": "3"}, maps.Collect(o.All()))

	// Early break.
	var first []string
	for k := range o.All() {
		first = append(first, k)
		break
	}
	require.Equal(t, []string{"z"}, first)
}

func TestClone(t *testing.T) {
	o := options.New(options.Pair{Key: "a", Value: "1"})
	c := o.Clone()
	c.Set("a", "2")
	c.Set("b", "3")
	require.Equal(t, "a=1", o.String())
	require.Equal(t, "a=2,b=3", c.String())
	require.True(t, slices.Equal(o.Pairs(), []options.Pair{{Key: "a", Value: "1"}}))
}

func TestCopy(t *testing.T) {
	o := options.New()
	for i := 0; i < 8; i++ {
		o.Set(fmt.Sprintf("k%d", i), fmt.Sprint(i))
	}
	require.Equal(t, "0", o.GetOr("k0", ""))

	cp := *o
	cp.Set("k9", "9")
	cp.Set("k3", "three")
	o.Set("k8", "8")
	require.True(t, cp.Delete("k0"))

	require.Equal(t, "3", o.GetOr("k3", ""))
	require.Equal(t, "0", o.GetOr("k0", ""))
	_, ok := o.Get("k9")
	require.False(t, ok)
	require.Equal(t, 9, o.Len())

	_, ok = cp.Get("k8")
	require.False(t, ok)
	require.Equal(t, "three", cp.GetOr("k3", ""))
	require.Equal(t, "9", cp.GetOr("k9", ""))
	require.Equal(t, 8, cp.Len())

	// A copy that is only read shares the key index with the original,
	// which keeps adding to it.
	ro := *o
	o.Set("k10", "10")
	_, ok = ro.Get("k10")
	require.False(t, ok)
	require.Equal(t, 9, ro.Len())
	require.Equal(t, "7", ro.GetOr("k7", ""))
	require.Equal(t, "10", o.GetOr("k10", ""))
}

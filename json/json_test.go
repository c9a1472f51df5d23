package json

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-valconf/valconf/value"
)

func TestLoadTextPreservesKeyOrder(t *testing.T) {
	v, err := LoadText([]byte(`{"z": 1, "a": 2, "m": 3}`), true)
	require.NoError(t, err)
	require.Equal(t, 3, v.NumMembers())
	assert.Equal(t, "z", v.MemberName(0))
	assert.Equal(t, "a", v.MemberName(1))
	assert.Equal(t, "m", v.MemberName(2))
}

func TestLoadTextNumberClassification(t *testing.T) {
	v, err := LoadText([]byte(`{"i": 42, "f": 3.5}`), true)
	require.NoError(t, err)
	assert.Equal(t, int64(42), v.Member("i").AsInt64(0))
	assert.Equal(t, 3.5, v.Member("f").AsDouble(0))
}

func TestLoadTextStrictRejectsComments(t *testing.T) {
	_, err := LoadText([]byte("{\n// comment\n\"a\": 1}"), true)
	assert.Error(t, err)
}

func TestLoadTextNonStrictAllowsCommentsAndTrailingCommas(t *testing.T) {
	v, err := LoadText([]byte("{\n// comment\n\"a\": 1,\n}"), false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Member("a").AsInt64(0))
}

func TestAsJSONRoundTrip(t *testing.T) {
	obj := value.Object()
	obj.SetMember("a", value.Int32(1))
	obj.SetMember("b", value.String("hi"))
	obj.SetMember("c", value.Array(value.Int32(1), value.Int32(2)))

	out, err := AsJSON(obj, DefaultFormatOptions())
	require.NoError(t, err)

	back, err := LoadText([]byte(out), true)
	require.NoError(t, err)
	assert.Equal(t, int32(1), back.Member("a").AsInt32(0))
	assert.Equal(t, "hi", back.Member("b").AsString(""))
	assert.Equal(t, 2, back.Member("c").NumElts())
}

func TestAsJSONArrayMarginWrapping(t *testing.T) {
	arr := value.Array(value.Int32(1), value.Int32(2), value.Int32(3))

	wide, err := AsJSON(arr, FormatOptions{Indent: 2, ArrayMargin: 1000})
	require.NoError(t, err)
	assert.NotContains(t, wide, "\n")

	narrow, err := AsJSON(arr, FormatOptions{Indent: 2, ArrayMargin: 1})
	require.NoError(t, err)
	assert.Contains(t, narrow, "\n")
}

func TestAsJSONInfNaNStyles(t *testing.T) {
	inf := value.Double(math.Inf(1))

	out, err := AsJSON(inf, FormatOptions{Indent: 0, InfNaN: InfNaNNull})
	require.NoError(t, err)
	assert.Equal(t, "null", out)

	out, err = AsJSON(inf, FormatOptions{Indent: 0, InfNaN: InfNaNC})
	require.NoError(t, err)
	assert.Equal(t, "INFINITY", out)

	out, err = AsJSON(inf, FormatOptions{Indent: 0, InfNaN: InfNaNJS})
	require.NoError(t, err)
	assert.Equal(t, "Infinity", out)
}

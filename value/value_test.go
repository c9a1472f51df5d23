package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericRoundtrip(t *testing.T) {
	assert.Equal(t, int32(42), Int32(42).AsInt32(0))
	assert.Equal(t, uint32(42), Uint32(42).AsUInt32(0))
	assert.Equal(t, int64(42), Int64(42).AsInt64(0))
	assert.Equal(t, uint64(42), Uint64(42).AsUInt64(0))
	assert.Equal(t, 3.5, Double(3.5).AsDouble(0))

	nan := Double(math.NaN())
	require.True(t, nan.IsDouble())
	assert.True(t, math.IsNaN(nan.AsDouble(0)))
}

func TestConvertibilityMatchesCoercion(t *testing.T) {
	assert.True(t, Int32(5).IsConvertibleTo(TypeUint32))
	assert.False(t, Int32(-5).IsConvertibleTo(TypeUint32))
	assert.True(t, Uint32(5).IsConvertibleTo(TypeInt32))
	assert.False(t, Uint32(math.MaxUint32).IsConvertibleTo(TypeInt32))
	assert.False(t, Double(3.5).IsConvertibleTo(TypeInt32))
	assert.True(t, Double(3.0).IsConvertibleTo(TypeInt32))
}

func TestSaturatingConversion(t *testing.T) {
	assert.Equal(t, int32(math.MaxInt32), Double(1e30).AsInt32(0))
	assert.Equal(t, uint32(0), Int32(-5).AsUInt32(99))
	assert.Equal(t, int32(math.MaxInt32), Int64(1<<40).AsInt32(0))
}

func TestEqualityAcrossTypes(t *testing.T) {
	assert.False(t, Equal(Int32(0), Double(0)))
	assert.True(t, Equal(Int32(0), Int32(0)))
	assert.NotEqual(t, 0, Compare(Null(), Bool(false))) // different types never compare equal
}

func TestObjectCopySemantics(t *testing.T) {
	u := Object()
	u.SetMember("a", Int32(1))

	v := u.Clone()
	v.SetMember("a", Int32(2))
	v.SetMember("b", Int32(3))

	assert.Equal(t, int32(1), u.Member("a").AsInt32(0))
	assert.Equal(t, int32(2), v.Member("a").AsInt32(0))
	assert.False(t, u.HasMember("b"))
	assert.True(t, v.HasMember("b"))
}

func TestModCountIncrementsOnMutation(t *testing.T) {
	v := Object()
	before := v.obj.modCount
	v.SetMember("a", Int32(1))
	assert.Greater(t, v.obj.modCount, before)
	afterInsert := v.obj.modCount
	v.SetMember("a", Int32(2))
	assert.Greater(t, v.obj.modCount, afterInsert)
}

func TestMergeSemantics(t *testing.T) {
	a := Object()
	a.SetMember("one", Int32(1))
	a.SetMember("two", Int32(2))

	b := Object()
	b.SetMember("one", Int32(42))
	b.SetMember("three", Int32(3))
	b.SetMember("two", Null())

	a.Merge(b)

	assert.Equal(t, int32(42), a.Member("one").AsInt32(0))
	assert.Equal(t, int32(3), a.Member("three").AsInt32(0))
	assert.False(t, a.HasMember("two"))
}

func TestMergeRecursesIntoNestedObjects(t *testing.T) {
	a := Object()
	inner := Object()
	inner.SetMember("x", Int32(1))
	inner.SetMember("y", Int32(2))
	a.SetMember("inner", inner)

	b := Object()
	innerOverride := Object()
	innerOverride.SetMember("y", Int32(99))
	b.SetMember("inner", innerOverride)

	a.Merge(b)

	gotInner := a.Member("inner")
	assert.Equal(t, int32(1), gotInner.Member("x").AsInt32(0))
	assert.Equal(t, int32(99), gotInner.Member("y").AsInt32(0))
}

func TestArrayElementAccess(t *testing.T) {
	arr := Array(Int32(1), Int32(2), Int32(3))
	assert.Equal(t, 3, arr.NumElts())
	assert.Equal(t, int32(2), arr.Elt(1).AsInt32(0))
	assert.True(t, arr.Elt(99).IsNull())
	assert.True(t, arr.Elt(-1).IsNull())
}

func TestMemberPath(t *testing.T) {
	root := Object()
	inner := Object()
	inner.SetMember("b", Array(Int32(10), Int32(20), Int32(30)))
	root.SetMember("a", inner)

	got := MemberPath(root, "a.b[1]")
	assert.Equal(t, int32(20), got.AsInt32(0))

	assert.True(t, MemberPath(root, "a.missing").IsNull())
	assert.True(t, MemberPath(root, "a.b[99]").IsNull())
}

func TestUpdateMemberPathCreatesIntermediateObjects(t *testing.T) {
	root := Null()
	ptr := UpdateMemberPath(&root, "a.b.c")
	*ptr = String("hello")

	assert.Equal(t, "hello", MemberPath(root, "a.b.c").AsString(""))
}

func TestUpdateMemberOnWrongKindReturnsScratch(t *testing.T) {
	v := Int32(5)
	ptr := v.UpdateMember("x")
	*ptr = String("discarded")
	assert.Equal(t, int32(5), v.AsInt32(0))
}

func TestSwapBumpsModCountOnObjects(t *testing.T) {
	a := Object()
	a.SetMember("a", Int32(1))
	b := Object()
	b.SetMember("b", Int32(2))

	beforeA, beforeB := a.obj.modCount, b.obj.modCount
	a.Swap(&b)

	assert.Equal(t, int32(2), a.Member("b").AsInt32(0))
	assert.Equal(t, int32(1), b.Member("a").AsInt32(0))
	assert.Greater(t, b.obj.modCount, beforeA)
	assert.Greater(t, a.obj.modCount, beforeB)
}

func TestAsIDHashesCaseInsensitively(t *testing.T) {
	assert.Equal(t, String("Hello").AsID(0), String("hello").AsID(0))
	assert.NotZero(t, String("hello").AsID(0)&0x80000000)
}

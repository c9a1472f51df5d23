// Package value implements the polymorphic configuration value: a tagged
// union over null, bool, the four sized integer kinds, double, string,
// array, and object, with clamping numeric coercions and merge semantics.
package value

import "math"

// Type is the discriminant of a Value.
type Type int

const (
	TypeNull Type = iota
	TypeBool
	TypeInt32
	TypeUint32
	TypeInt64
	TypeUint64
	TypeDouble
	TypeString
	TypeArray
	TypeObject
)

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBool:
		return "bool"
	case TypeInt32:
		return "int32"
	case TypeUint32:
		return "uint32"
	case TypeInt64:
		return "int64"
	case TypeUint64:
		return "uint64"
	case TypeDouble:
		return "double"
	case TypeString:
		return "string"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	}
	return "unknown"
}

// Value is a tagged union. The zero Value is null. String and array
// payloads are shared on copy (Go slices and strings are themselves
// immutable-by-convention handles, so an ordinary Go assignment already
// gives independent-looking semantics). Object payloads are mutable
// and must be explicitly deep-copied with Clone before being reused
// somewhere a caller expects independent mutation; Value itself cannot
// intercept plain assignment, so Merge and alias resolution in package
// yaml call Clone rather than relying on `=`; Array and SetMember store
// the Values they are given without cloning them.
type Value struct {
	typ Type

	b   bool
	i32 int32
	u32 uint32
	i64 int64
	u64 uint64
	f64 float64
	str string
	arr *arrayData
	obj *objectData
}

// Null returns the null Value. It is a convenience constructor, not the
// mutable scratch sentinel returned by UpdateMember on type mismatch;
// see UpdateMember.
func Null() Value { return Value{} }

func Bool(b bool) Value     { return Value{typ: TypeBool, b: b} }
func Int32(v int32) Value   { return Value{typ: TypeInt32, i32: v} }
func Uint32(v uint32) Value { return Value{typ: TypeUint32, u32: v} }
func Int64(v int64) Value   { return Value{typ: TypeInt64, i64: v} }
func Uint64(v uint64) Value { return Value{typ: TypeUint64, u64: v} }
func Double(v float64) Value {
	return Value{typ: TypeDouble, f64: v}
}
func String(s string) Value { return Value{typ: TypeString, str: s} }

// Array constructs an array Value from elements, which are shared by
// reference (the caller should not mutate elements afterwards through
// any other handle to them).
func Array(elements ...Value) Value {
	return Value{typ: TypeArray, arr: newArrayData(elements)}
}

// Object constructs an empty object Value.
func Object() Value {
	return Value{typ: TypeObject, obj: newObjectData()}
}

func (v Value) Type() Type { return v.typ }

func (v Value) IsNull() bool   { return v.typ == TypeNull }
func (v Value) IsBool() bool   { return v.typ == TypeBool }
func (v Value) IsInt32() bool  { return v.typ == TypeInt32 }
func (v Value) IsUint32() bool { return v.typ == TypeUint32 }
func (v Value) IsInt64() bool  { return v.typ == TypeInt64 }
func (v Value) IsUint64() bool { return v.typ == TypeUint64 }
func (v Value) IsDouble() bool { return v.typ == TypeDouble }
func (v Value) IsString() bool { return v.typ == TypeString }
func (v Value) IsArray() bool  { return v.typ == TypeArray }
func (v Value) IsObject() bool { return v.typ == TypeObject }

func (v Value) IsNumeric() bool {
	switch v.typ {
	case TypeInt32, TypeUint32, TypeInt64, TypeUint64, TypeDouble:
		return true
	}
	return false
}

func (v Value) IsIntegral() bool {
	switch v.typ {
	case TypeInt32, TypeUint32, TypeInt64, TypeUint64:
		return true
	case TypeDouble:
		return !math.IsNaN(v.f64) && !math.IsInf(v.f64, 0) && math.Trunc(v.f64) == v.f64
	}
	return false
}

// Clone returns an independent copy: string and array payloads are
// shared, object payloads are deep-copied recursively (per-member
// Clone), so mutating the clone's members never reaches back into v.
func (v Value) Clone() Value {
	if v.typ != TypeObject || v.obj == nil {
		return v
	}
	out := newObjectData()
	for i, k := range v.obj.keys {
		out.upsert(k, v.obj.values[i].Clone())
	}
	return Value{typ: TypeObject, obj: out}
}

// Swap exchanges the payloads of v and other in place. For two object
// values this bumps both objects' modCount, since a swap changes what
// each Value points at and so counts as a structural mutation.
func (v *Value) Swap(other *Value) {
	if v.typ == TypeObject && v.obj != nil {
		v.obj.modCount++
	}
	if other.typ == TypeObject && other.obj != nil {
		other.obj.modCount++
	}
	*v, *other = *other, *v
}

package value

import (
	"strconv"
)

// pathSegment is either a member name or an array index.
type pathSegment struct {
	key     string
	index   int
	isIndex bool
}

// parsePath scans a dotted path with optional bracketed indices, e.g.
// "a.b[2].c", into segments. It is a small hand-rolled scanner rather
// than a regex, matching the character-class-dispatch style used in
// the scanner for hot paths.
func parsePath(path string) []pathSegment {
	var segs []pathSegment
	i := 0
	for i < len(path) {
		start := i
		for i < len(path) && path[i] != '.' && path[i] != '[' {
			i++
		}
		if i > start {
			segs = append(segs, pathSegment{key: path[start:i]})
		}
		for i < len(path) && path[i] == '[' {
			i++
			istart := i
			for i < len(path) && path[i] != ']' {
				i++
			}
			n, err := strconv.Atoi(path[istart:i])
			if err == nil {
				segs = append(segs, pathSegment{index: n, isIndex: true})
			}
			if i < len(path) {
				i++ // skip ']'
			}
		}
		if i < len(path) && path[i] == '.' {
			i++
		}
	}
	return segs
}

// MemberPath looks up a dotted path with optional "[N]" array indices
// against v, returning the null sentinel on any missing segment.
func MemberPath(v Value, path string) Value {
	cur := v
	for _, seg := range parsePath(path) {
		if seg.isIndex {
			cur = cur.Elt(seg.index)
		} else {
			cur = cur.Member(seg.key)
		}
	}
	return cur
}

// UpdateMemberPath walks path, creating intermediate objects for
// object-key segments as needed, and returns a mutable pointer to the
// final member. Array indices must already exist; a failed segment
// (missing array index, or a non-object/array in the middle of the
// path) yields the shared scratch null instead of panicking.
func UpdateMemberPath(v *Value, path string) *Value {
	segs := parsePath(path)
	if len(segs) == 0 {
		nullScratch = Null()
		return &nullScratch
	}
	cur := v
	for i, seg := range segs {
		last := i == len(segs)-1
		if seg.isIndex {
			if cur.typ != TypeArray || cur.arr == nil || seg.index < 0 || seg.index >= len(cur.arr.elems) {
				nullScratch = Null()
				return &nullScratch
			}
			cur = &cur.arr.elems[seg.index]
			continue
		}
		if last {
			return cur.UpdateMember(seg.key)
		}
		next := cur.UpdateMember(seg.key)
		cur = next
	}
	return cur
}

package value

// Merge deep-merges overrides into v. A null overrides is a no-op. When
// both v and overrides are objects, the merge recurses per member: a
// null member in overrides removes the matching key from v, an
// object-typed member recurses, and any other member replaces v's
// existing value outright. When the types don't both resolve to
// object, overrides replaces v wholesale, matching the "maps deep
// merge, everything else gets replaced" rule grounded on the uber-go
// config merge package.
func (v *Value) Merge(overrides Value) {
	if overrides.typ == TypeNull {
		return
	}
	if v.typ == TypeObject && overrides.typ == TypeObject {
		mergeObjects(v.obj, overrides.obj)
		return
	}
	*v = overrides.Clone()
}

func mergeObjects(dst, src *objectData) {
	for i, key := range src.keys {
		ov := src.values[i]
		if ov.typ == TypeNull {
			dst.remove(key)
			continue
		}
		if existing, ok := dst.lookup(key); ok && existing.typ == TypeObject && ov.typ == TypeObject {
			mergeObjects(existing.obj, ov.obj)
			continue
		}
		dst.upsert(key, ov.Clone())
	}
}

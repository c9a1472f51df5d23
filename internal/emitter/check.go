package emitter

import "github.com/go-valconf/valconf/internal/yamlh"

// maxSimpleKeyLength bounds how much an anchor+tag+scalar combination
// can weigh before checkSimpleKey refuses to let it stand as an
// implicit mapping key (block or flow) on a single line.
const maxSimpleKeyLength = 128

// checkEmptySequence reports whether the next two queued events are a
// SEQUENCE_START/SEQUENCE_END pair with nothing between them, which
// lets the block-sequence writer collapse "key: []" onto one line
// instead of opening an indented block.
func checkEmptySequence(e *Emitter) bool {
	if len(e.eventsQueue)-e.eventsHead < 2 {
		return false
	}
	return e.eventsQueue[e.eventsHead].Type == yamlh.SEQUENCE_START_EVENT &&
		e.eventsQueue[e.eventsHead+1].Type == yamlh.SEQUENCE_END_EVENT
}

// checkEmptyMapping is checkEmptySequence's mapping counterpart.
func checkEmptyMapping(e *Emitter) bool {
	if len(e.eventsQueue)-e.eventsHead < 2 {
		return false
	}
	return e.eventsQueue[e.eventsHead].Type == yamlh.MAPPING_START_EVENT &&
		e.eventsQueue[e.eventsHead+1].Type == yamlh.MAPPING_END_EVENT
}

// checkSimpleKey reports whether the queued node is short enough and
// single-line enough to emit as an implicit block or flow mapping key
// rather than forcing an explicit "? key" / ": value" pair; the key's
// scalar style is chosen separately.
func checkSimpleKey(e *Emitter) bool {
	length := 0
	switch e.eventsQueue[e.eventsHead].Type {
	case yamlh.ALIAS_EVENT:
		length += len(e.anchorData.Anchor)
	case yamlh.SCALAR_EVENT:
		if e.scalarData.multiline {
			return false
		}
		length += len(e.anchorData.Anchor) +
			len(e.tagData.Handle) +
			len(e.tagData.Suffix) +
			len(e.scalarData.value)
	case yamlh.SEQUENCE_START_EVENT:
		if !checkEmptySequence(e) {
			return false
		}
		length += len(e.anchorData.Anchor) +
			len(e.tagData.Handle) +
			len(e.tagData.Suffix)
	case yamlh.MAPPING_START_EVENT:
		if !checkEmptyMapping(e) {
			return false
		}
		length += len(e.anchorData.Anchor) +
			len(e.tagData.Handle) +
			len(e.tagData.Suffix)
	default:
		return false
	}
	return length <= maxSimpleKeyLength
}

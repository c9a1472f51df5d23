// Package yaml materialises value.Value trees from the YAML 1.1 event
// stream produced by internal/parserc, and emits value.Value trees back
// out as YAML text through internal/emitter.
package yaml

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-valconf/valconf/internal/parserc"
	"github.com/go-valconf/valconf/internal/yamlh"
	"github.com/go-valconf/valconf/value"
)

// binder walks one YAML document's event stream into a value.Value
// tree, tracking the anchor table needed to resolve later aliases and
// the "<<" merge-key bookkeeping.
type binder struct {
	parser  *parserc.YamlParser
	anchors map[string]value.Value
}

// LoadText parses a single YAML document from text and returns the
// resulting Value. Only the first document in a multi-document stream
// is returned; callers that need every document must split the text
// themselves before calling LoadText on each part.
func LoadText(text []byte) (value.Value, error) {
	b := &binder{
		parser:  parserc.New(strings.NewReader(string(text))),
		anchors: make(map[string]value.Value),
	}
	return b.run()
}

// LoadFile reads path and parses it as YAML.
func LoadFile(path string) (value.Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return value.Null(), err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return value.Null(), err
	}
	return LoadText(data)
}

func (b *binder) next() (*yamlh.Event, error) {
	return parserc.Parse(b.parser)
}

// run drives the event stream until it has bound exactly one document,
// skipping the stream/document framing events, which carry no payload
// of their own.
func (b *binder) run() (value.Value, error) {
	for {
		ev, err := b.next()
		if err != nil {
			return value.Null(), err
		}
		switch ev.Type {
		case yamlh.STREAM_START_EVENT, yamlh.DOCUMENT_START_EVENT:
			continue
		case yamlh.STREAM_END_EVENT, yamlh.DOCUMENT_END_EVENT:
			return value.Null(), nil
		default:
			return b.bindNode(ev)
		}
	}
}

// bindNode binds the Value rooted at ev, recursively consuming child
// events for collections until the matching END event.
func (b *binder) bindNode(ev *yamlh.Event) (value.Value, error) {
	switch ev.Type {
	case yamlh.ALIAS_EVENT:
		name := string(ev.Anchor)
		v, ok := b.anchors[name]
		if !ok {
			return value.Null(), fmt.Errorf("yaml: unknown anchor '%s'", name)
		}
		return v.Clone(), nil
	case yamlh.SCALAR_EVENT:
		v := classifyScalar(ev)
		b.registerAnchor(ev.Anchor, v)
		return v, nil
	case yamlh.SEQUENCE_START_EVENT:
		return b.bindSequence(ev)
	case yamlh.MAPPING_START_EVENT:
		return b.bindMapping(ev)
	default:
		return value.Null(), fmt.Errorf("yaml: unexpected event %s where a node was expected", ev.Type)
	}
}

func (b *binder) registerAnchor(anchor []byte, v value.Value) {
	if len(anchor) == 0 {
		return
	}
	b.anchors[string(anchor)] = v
}

func (b *binder) bindSequence(start *yamlh.Event) (value.Value, error) {
	var elems []value.Value
	for {
		ev, err := b.next()
		if err != nil {
			return value.Null(), err
		}
		if ev.Type == yamlh.SEQUENCE_END_EVENT {
			break
		}
		v, err := b.bindNode(ev)
		if err != nil {
			return value.Null(), err
		}
		elems = append(elems, v)
	}
	result := value.Array(elems...)
	b.registerAnchor(start.Anchor, result)
	return result, nil
}

func (b *binder) bindMapping(start *yamlh.Event) (value.Value, error) {
	result := value.Object()
	b.registerAnchor(start.Anchor, result)
	for {
		keyEv, err := b.next()
		if err != nil {
			return value.Null(), err
		}
		if keyEv.Type == yamlh.MAPPING_END_EVENT {
			break
		}
		if keyEv.Type != yamlh.SCALAR_EVENT {
			return value.Null(), fmt.Errorf("yaml: unexpected event %s where a scalar key was expected", keyEv.Type)
		}
		keyName := string(keyEv.Value)

		valEv, err := b.next()
		if err != nil {
			return value.Null(), err
		}
		val, err := b.bindNode(valEv)
		if err != nil {
			return value.Null(), err
		}

		if keyName == "<<" {
			if err := mergeInto(&result, val); err != nil {
				return value.Null(), err
			}
			continue
		}
		result.SetMember(keyName, val)
	}
	return result, nil
}

// mergeInto implements "<<" merge-key semantics: src must be an object
// or an array of objects; entries fill in keys not already present in
// dst, in source order, so existing keys always win over the merged
// defaults.
func mergeInto(dst *value.Value, src value.Value) error {
	switch {
	case src.IsObject():
		return mergeObjectDefaults(dst, src)
	case src.IsArray():
		for i := 0; i < src.NumElts(); i++ {
			elt := src.Elt(i)
			if !elt.IsObject() {
				return fmt.Errorf("yaml: merge key '<<' requires a mapping or sequence of mappings")
			}
			if err := mergeObjectDefaults(dst, elt); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("yaml: merge key '<<' requires a mapping or sequence of mappings")
	}
}

func mergeObjectDefaults(dst *value.Value, src value.Value) error {
	for i := 0; i < src.NumMembers(); i++ {
		k := src.MemberName(i)
		if dst.HasMember(k) {
			continue
		}
		dst.SetMember(k, src.MemberValue(i).Clone())
	}
	return nil
}

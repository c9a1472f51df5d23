package yaml

import (
	"strconv"
	"strings"

	"github.com/go-valconf/valconf/internal/emitter"
	"github.com/go-valconf/valconf/internal/yamlh"
	"github.com/go-valconf/valconf/value"
)

// AsYAML renders v as block-style YAML text with the given indent
// width in spaces. Scalars are spelled with strconv's default integer
// and float formatting rather than YAML's own number grammar; strings
// are quoted only when a plain reading of them would classify as
// something other than a string (see needsQuoting).
func AsYAML(v value.Value, indent int) (string, error) {
	var sb strings.Builder
	e := emitter.New(&sb)
	if indent > 0 {
		e.SetIndent(indent)
	}
	if err := e.Emit(&yamlh.Event{Type: yamlh.STREAM_START_EVENT, Encoding: yamlh.UTF8_ENCODING}, false); err != nil {
		return "", err
	}
	if err := e.Emit(&yamlh.Event{Type: yamlh.DOCUMENT_START_EVENT, Implicit: true}, false); err != nil {
		return "", err
	}
	if err := emitNode(e, v); err != nil {
		return "", err
	}
	if err := e.Emit(&yamlh.Event{Type: yamlh.DOCUMENT_END_EVENT, Implicit: true}, false); err != nil {
		return "", err
	}
	if err := e.Emit(&yamlh.Event{Type: yamlh.STREAM_END_EVENT}, true); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func emitNode(e *emitter.Emitter, v value.Value) error {
	switch v.Type() {
	case value.TypeArray:
		return emitArray(e, v)
	case value.TypeObject:
		return emitObject(e, v)
	default:
		return emitScalarValue(e, v)
	}
}

func emitArray(e *emitter.Emitter, v value.Value) error {
	if err := e.Emit(&yamlh.Event{
		Type:     yamlh.SEQUENCE_START_EVENT,
		Implicit: true,
		Style:    yamlh.YamlStyle(yamlh.BLOCK_SEQUENCE_STYLE),
	}, false); err != nil {
		return err
	}
	for i := 0; i < v.NumElts(); i++ {
		if err := emitNode(e, v.Elt(i)); err != nil {
			return err
		}
	}
	return e.Emit(&yamlh.Event{Type: yamlh.SEQUENCE_END_EVENT}, false)
}

func emitObject(e *emitter.Emitter, v value.Value) error {
	if err := e.Emit(&yamlh.Event{
		Type:     yamlh.MAPPING_START_EVENT,
		Implicit: true,
		Style:    yamlh.YamlStyle(yamlh.BLOCK_MAPPING_STYLE),
	}, false); err != nil {
		return err
	}
	for i := 0; i < v.NumMembers(); i++ {
		if err := emitScalarValue(e, value.String(v.MemberName(i))); err != nil {
			return err
		}
		if err := emitNode(e, v.MemberValue(i)); err != nil {
			return err
		}
	}
	return e.Emit(&yamlh.Event{Type: yamlh.MAPPING_END_EVENT}, false)
}

func emitScalarValue(e *emitter.Emitter, v value.Value) error {
	text, style := scalarSpelling(v)
	return e.Emit(&yamlh.Event{
		Type:            yamlh.SCALAR_EVENT,
		Value:           []byte(text),
		Implicit:        true,
		Quoted_implicit: true,
		Style:           yamlh.YamlStyle(style),
	}, false)
}

func scalarSpelling(v value.Value) (string, yamlh.YamlScalarStyle) {
	switch v.Type() {
	case value.TypeNull:
		return "null", yamlh.PLAIN_SCALAR_STYLE
	case value.TypeBool:
		return strconv.FormatBool(v.AsBool(false)), yamlh.PLAIN_SCALAR_STYLE
	case value.TypeInt32:
		return strconv.FormatInt(int64(v.AsInt32(0)), 10), yamlh.PLAIN_SCALAR_STYLE
	case value.TypeUint32:
		return strconv.FormatUint(uint64(v.AsUInt32(0)), 10), yamlh.PLAIN_SCALAR_STYLE
	case value.TypeInt64:
		return strconv.FormatInt(v.AsInt64(0), 10), yamlh.PLAIN_SCALAR_STYLE
	case value.TypeUint64:
		return strconv.FormatUint(v.AsUInt64(0), 10), yamlh.PLAIN_SCALAR_STYLE
	case value.TypeDouble:
		return strconv.FormatFloat(v.AsDouble(0), 'g', -1, 64), yamlh.PLAIN_SCALAR_STYLE
	case value.TypeString:
		s := v.AsString("")
		if needsQuoting(s) {
			return s, yamlh.DOUBLE_QUOTED_SCALAR_STYLE
		}
		return s, yamlh.PLAIN_SCALAR_STYLE
	}
	return "", yamlh.PLAIN_SCALAR_STYLE
}

// needsQuoting reports whether a string scalar would be misread as
// null, a bool, a number, or some other reserved plain form, and so
// must be quoted to round-trip.
func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	if _, ok := value.ParseNumericString(s); ok {
		return true
	}
	plain := classifyPlainScalar(s)
	return !plain.IsString() || plain.AsString("\x00") != s
}

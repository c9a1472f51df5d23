package yaml

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/go-valconf/valconf/value"
)

// differentialCases covers scalars, flow and block collections, and
// anchors/aliases: the constructs classifyScalar and the binder commit
// to a fixed Value shape for. Tag directives, comments, and literal
// block scalars are left out since nothing in this package assigns
// them independent meaning beyond what yaml.v3 already does.
var differentialCases = []string{
	`{}`,
	`v: hi`,
	`v: true`,
	`v: 10`,
	`v: 0b10`,
	`v: 0xA`,
	`v: 4294967296`,
	`v: 0.1`,
	`v: .1`,
	`v: -10`,
	`v: -.1`,
	`123`,
	`canonical: 6.8523e+5`,
	`empty:`,
	`canonical: ~`,
	`english: null`,
	`seq: [A,B]`,
	`seq: [A,B,C,]`,
	`seq: [A,1,C]`,
	"seq:\n - A\n - B",
	"seq:\n - A\n - B\n - C",
	"seq:\n - A\n - 1\n - C",
	"a: {b: c}",
	"a: {b: c, 1: d}",
	"a: [b,c,d]",
	"int_max: 2147483647",
	"int_min: -2147483648",
	"'1': '\"2\"'",
	"a: &x 1\nb: &y 2\nc: *x\nd: *y\n",
	"a: &a {c: 1}\nb: *a",
	"a: &a [1, 2]\nb: *a",
	"foo: ''",
	"foo: null",
}

func TestDifferentialAgainstYAMLv3(t *testing.T) {
	for _, src := range differentialCases {
		src := src
		t.Run(src, func(t *testing.T) {
			ours, err := LoadText([]byte(src))
			require.NoError(t, err)

			var theirs interface{}
			require.NoError(t, yamlv3.Unmarshal([]byte(src), &theirs))

			require.Equal(t, normalizeYAMLv3(theirs), normalizeValue(ours))
		})
	}
}

// normalizeValue converts a value.Value tree into the same generic shape
// normalizeYAMLv3 produces, so the two decoders' outputs can be compared
// with reflect-based equality despite valconf's wider numeric kind set.
func normalizeValue(v value.Value) interface{} {
	switch v.Type() {
	case value.TypeNull:
		return nil
	case value.TypeBool:
		return v.AsBool(false)
	case value.TypeInt32, value.TypeInt64:
		return v.AsInt64(0)
	case value.TypeUint32, value.TypeUint64:
		return int64(v.AsUInt64(0))
	case value.TypeDouble:
		return v.AsDouble(0)
	case value.TypeString:
		return v.AsString("")
	case value.TypeArray:
		out := make([]interface{}, v.NumElts())
		for i := range out {
			out[i] = normalizeValue(v.Elt(i))
		}
		return out
	case value.TypeObject:
		out := make(map[string]interface{}, v.NumMembers())
		for i := 0; i < v.NumMembers(); i++ {
			out[v.MemberName(i)] = normalizeValue(v.MemberValue(i))
		}
		return out
	}
	return nil
}

// normalizeYAMLv3 converts yaml.v3's generic decode result (ints, maps
// keyed by interface{} in flow-mapping-with-non-string-key cases) into the
// same shape normalizeValue produces.
func normalizeYAMLv3(v interface{}) interface{} {
	switch t := v.(type) {
	case nil:
		return nil
	case int:
		return int64(t)
	case int64:
		return t
	case uint64:
		return int64(t)
	case float64:
		return t
	case bool:
		return t
	case string:
		return t
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = normalizeYAMLv3(e)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, e := range t {
			out[k] = normalizeYAMLv3(e)
		}
		return out
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, e := range t {
			out[stringifyKey(k)] = normalizeYAMLv3(e)
		}
		return out
	}
	return v
}

func stringifyKey(k interface{}) string {
	if s, ok := k.(string); ok {
		return s
	}
	if i, ok := k.(int); ok {
		return strconv.Itoa(i)
	}
	return ""
}

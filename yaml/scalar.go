package yaml

import (
	"math"
	"strings"

	"github.com/go-valconf/valconf/internal/yamlh"
	"github.com/go-valconf/valconf/value"
)

// classifyScalar implements the plain-scalar type inference rules from
// the event binder: non-plain styles always yield strings; plain
// scalars are classified as null, bool, special double, number, or
// string in that order.
func classifyScalar(ev *yamlh.Event) value.Value {
	text := string(ev.Value)
	if ev.Scalar_style() != yamlh.PLAIN_SCALAR_STYLE {
		return value.String(text)
	}
	return classifyPlainScalar(text)
}

func classifyPlainScalar(text string) value.Value {
	if text == "" || text == "~" || strings.EqualFold(text, "null") {
		return value.Null()
	}
	if strings.EqualFold(text, "true") {
		return value.Bool(true)
	}
	if strings.EqualFold(text, "false") {
		return value.Bool(false)
	}
	// Only lowercase ".inf"/"-.inf"/".nan" are recognized here; "true"
	// and "false" above are matched case-insensitively, but YAML 1.1's
	// float literals are not, so "Infinity"-style spellings fall
	// through to the generic string case below.
	switch text {
	case "-.inf":
		return value.Double(math.Inf(-1))
	case ".inf":
		return value.Double(math.Inf(1))
	case ".nan":
		return value.Double(math.NaN())
	}
	if v, ok := value.ParseNumericString(text); ok {
		return v
	}
	return value.String(text)
}


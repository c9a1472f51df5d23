package json

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-valconf/valconf/value"
)

// InfNaNStyle controls how non-finite doubles are spelled, since
// standard JSON has no literal for them.
type InfNaNStyle int

const (
	InfNaNNull InfNaNStyle = iota // emit JSON null
	InfNaNC                       // INFINITY / -INFINITY / NAN
	InfNaNJS                      // Infinity / -Infinity / NaN
)

// FormatOptions controls AsJSON rendering: indent width, whether
// object keys that are valid bare identifiers still get quoted, the
// line-width threshold below which an array collapses onto one line,
// float precision and trailing-zero trimming, and how non-finite
// doubles are spelled.
type FormatOptions struct {
	Indent       int
	QuoteKeys    bool
	ArrayMargin  int
	MaxPrecision int
	TrimZeroes   bool
	InfNaN       InfNaNStyle
}

// DefaultFormatOptions mirrors a conventional JSON pretty-printer:
// two-space indent, quoted keys, arrays kept on one line up to an
// 80-column margin, full double precision.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		Indent:       2,
		QuoteKeys:    true,
		ArrayMargin:  80,
		MaxPrecision: -1,
		InfNaN:       InfNaNNull,
	}
}

// AsJSON renders v as JSON text under opts.
func AsJSON(v value.Value, opts FormatOptions) (string, error) {
	w := &jsonWriter{opts: opts}
	w.writeValue(v, 0)
	return w.sb.String(), nil
}

type jsonWriter struct {
	sb   strings.Builder
	opts FormatOptions
}

func (w *jsonWriter) pretty() bool { return w.opts.Indent > 0 }

func (w *jsonWriter) newline(depth int) {
	if !w.pretty() {
		return
	}
	w.sb.WriteByte('\n')
	w.sb.WriteString(strings.Repeat(" ", depth*w.opts.Indent))
}

func (w *jsonWriter) writeValue(v value.Value, depth int) {
	switch v.Type() {
	case value.TypeNull:
		w.sb.WriteString("null")
	case value.TypeBool:
		w.sb.WriteString(strconv.FormatBool(v.AsBool(false)))
	case value.TypeInt32:
		w.sb.WriteString(strconv.FormatInt(int64(v.AsInt32(0)), 10))
	case value.TypeUint32:
		w.sb.WriteString(strconv.FormatUint(uint64(v.AsUInt32(0)), 10))
	case value.TypeInt64:
		w.sb.WriteString(strconv.FormatInt(v.AsInt64(0), 10))
	case value.TypeUint64:
		w.sb.WriteString(strconv.FormatUint(v.AsUInt64(0), 10))
	case value.TypeDouble:
		w.writeDouble(v.AsDouble(0))
	case value.TypeString:
		w.writeString(v.AsString(""))
	case value.TypeArray:
		w.writeArray(v, depth)
	case value.TypeObject:
		w.writeObject(v, depth)
	}
}

func (w *jsonWriter) writeDouble(f float64) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		w.writeNonFinite(f)
		return
	}
	precision := -1
	if w.opts.MaxPrecision > 0 {
		precision = w.opts.MaxPrecision
	}
	s := strconv.FormatFloat(f, 'g', precision, 64)
	if w.opts.TrimZeroes {
		s = trimTrailingZeroes(s)
	}
	w.sb.WriteString(s)
}

func (w *jsonWriter) writeNonFinite(f float64) {
	neg := math.Signbit(f) && !math.IsNaN(f)
	switch w.opts.InfNaN {
	case InfNaNC:
		switch {
		case math.IsNaN(f):
			w.sb.WriteString("NAN")
		case neg:
			w.sb.WriteString("-INFINITY")
		default:
			w.sb.WriteString("INFINITY")
		}
	case InfNaNJS:
		switch {
		case math.IsNaN(f):
			w.sb.WriteString("NaN")
		case neg:
			w.sb.WriteString("-Infinity")
		default:
			w.sb.WriteString("Infinity")
		}
	default:
		w.sb.WriteString("null")
	}
}

func trimTrailingZeroes(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func (w *jsonWriter) writeString(s string) {
	w.sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			w.sb.WriteString(`\"`)
		case '\\':
			w.sb.WriteString(`\\`)
		case '\n':
			w.sb.WriteString(`\n`)
		case '\r':
			w.sb.WriteString(`\r`)
		case '\t':
			w.sb.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&w.sb, `\u%04x`, r)
			} else {
				w.sb.WriteRune(r)
			}
		}
	}
	w.sb.WriteByte('"')
}

func (w *jsonWriter) writeKey(key string) {
	if w.opts.QuoteKeys || !isBareKey(key) {
		w.writeString(key)
		return
	}
	w.sb.WriteString(key)
}

func isBareKey(key string) bool {
	if key == "" {
		return false
	}
	for i, r := range key {
		if unicode.IsLetter(r) || r == '_' || r == '$' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

func (w *jsonWriter) writeArray(v value.Value, depth int) {
	n := v.NumElts()
	if n == 0 {
		w.sb.WriteString("[]")
		return
	}
	inline := w.fitsInline(v)
	w.sb.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			w.sb.WriteByte(',')
			if inline {
				w.sb.WriteByte(' ')
			}
		}
		if !inline {
			w.newline(depth + 1)
		}
		w.writeValue(v.Elt(i), depth+1)
	}
	if !inline {
		w.newline(depth)
	}
	w.sb.WriteByte(']')
}

// fitsInline reports whether an array's compact single-line rendering
// is no wider than ArrayMargin; a non-positive margin always wraps.
func (w *jsonWriter) fitsInline(v value.Value) bool {
	if w.opts.ArrayMargin <= 0 || !w.pretty() {
		return !w.pretty()
	}
	compact := &jsonWriter{opts: FormatOptions{QuoteKeys: w.opts.QuoteKeys, MaxPrecision: w.opts.MaxPrecision, TrimZeroes: w.opts.TrimZeroes, InfNaN: w.opts.InfNaN}}
	compact.writeArray(v, 0)
	return compact.sb.Len() <= w.opts.ArrayMargin
}

func (w *jsonWriter) writeObject(v value.Value, depth int) {
	n := v.NumMembers()
	if n == 0 {
		w.sb.WriteString("{}")
		return
	}
	w.sb.WriteByte('{')
	for i := 0; i < n; i++ {
		if i > 0 {
			w.sb.WriteByte(',')
		}
		w.newline(depth + 1)
		w.writeKey(v.MemberName(i))
		w.sb.WriteByte(':')
		if w.pretty() {
			w.sb.WriteByte(' ')
		}
		w.writeValue(v.MemberValue(i), depth+1)
	}
	w.newline(depth)
	w.sb.WriteByte('}')
}

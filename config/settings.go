package config

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"github.com/go-valconf/valconf/json"
	"github.com/go-valconf/valconf/value"
)

// ApplySettings applies a list of CLI-style "<path>[=<jsonValue>]"
// overrides to v, upserting each at its dotted path. A bare path
// (no "=") sets the target to true. A value that doesn't look like a
// JSON literal -- doesn't start with one of '[', '{', '"', a digit,
// '-', or a reserved literal ("null"/"true"/"false") -- is treated as
// a bare string and quoted before being parsed as JSON.
func ApplySettings(list []string, v *value.Value) error {
	var errs error
	for _, entry := range list {
		if err := applySetting(entry, v); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

func applySetting(entry string, v *value.Value) error {
	path, raw, hasValue := strings.Cut(entry, "=")
	if path == "" {
		return fmt.Errorf("config: empty setting path in %q", entry)
	}
	var target value.Value
	if !hasValue {
		target = value.Bool(true)
	} else {
		parsed, err := parseSettingValue(raw)
		if err != nil {
			return fmt.Errorf("config: parsing value for %q: %w", path, err)
		}
		target = parsed
	}
	*value.UpdateMemberPath(v, path) = target
	return nil
}

func parseSettingValue(raw string) (value.Value, error) {
	if looksLikeJSONLiteral(raw) {
		return json.LoadText([]byte(raw), true)
	}
	quoted := quoteJSONString(raw)
	return json.LoadText([]byte(quoted), true)
}

func looksLikeJSONLiteral(raw string) bool {
	if raw == "" {
		return false
	}
	switch raw {
	case "null", "true", "false":
		return true
	}
	c := raw[0]
	return c == '[' || c == '{' || c == '"' || c == '-' || (c >= '0' && c <= '9')
}

// quoteJSONString wraps a bare string setting value in JSON string
// quotes. strconv.Quote's Go-literal escaping (\xHH, rune escapes)
// isn't valid JSON, so this handles just the characters JSON strings
// require escaping.
func quoteJSONString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

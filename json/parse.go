// Package json loads and renders value.Value trees as JSON, the peer
// format named at interface level by the core: comments and trailing
// commas are tolerated unless strict mode is requested, object key
// order is preserved on decode, and numbers are classified the same
// way the YAML binder classifies plain scalars.
package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/go-valconf/valconf/value"
)

// LoadText parses data as JSON into a Value tree. When strict is
// false, jsonc preprocessing strips "//" and "/* */" comments and
// trailing commas before the standard decoder runs.
func LoadText(data []byte, strict bool) (value.Value, error) {
	processed := data
	if !strict {
		processed = jsonc.ToJSON(data)
	}
	dec := json.NewDecoder(bytes.NewReader(processed))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return value.Null(), fmt.Errorf("json: %w", err)
	}
	return v, nil
}

// LoadFile reads path and parses it as JSON.
func LoadFile(path string, strict bool) (value.Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return value.Null(), err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return value.Null(), err
	}
	return LoadText(data, strict)
}

// decodeValue reads the next JSON value from dec as a Value, recursing
// through json.Decoder's token stream so that object member order is
// preserved (encoding/json's map decode would not preserve it).
func decodeValue(dec *json.Decoder) (value.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return value.Null(), err
	}
	return valueFromToken(dec, tok)
}

func valueFromToken(dec *json.Decoder, tok json.Token) (value.Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return value.Null(), fmt.Errorf("unexpected delimiter %q", t)
	case json.Number:
		return numberValue(t), nil
	case string:
		return value.String(t), nil
	case bool:
		return value.Bool(t), nil
	case nil:
		return value.Null(), nil
	}
	return value.Null(), fmt.Errorf("unsupported JSON token %v", tok)
}

func numberValue(n json.Number) value.Value {
	if v, ok := value.ParseNumericString(n.String()); ok {
		return v
	}
	if f, err := n.Float64(); err == nil {
		return value.Double(f)
	}
	return value.String(n.String())
}

func decodeObject(dec *json.Decoder) (value.Value, error) {
	result := value.Object()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return value.Null(), err
		}
		key, ok := keyTok.(string)
		if !ok {
			return value.Null(), fmt.Errorf("expected string key, got %v", keyTok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return value.Null(), err
		}
		result.SetMember(key, val)
	}
	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil {
		return value.Null(), err
	}
	return result, nil
}

func decodeArray(dec *json.Decoder) (value.Value, error) {
	var elems []value.Value
	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return value.Null(), err
		}
		elems = append(elems, val)
	}
	// Consume the closing ']'.
	if _, err := dec.Token(); err != nil {
		return value.Null(), err
	}
	return value.Array(elems...), nil
}

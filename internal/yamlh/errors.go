package yamlh

import "fmt"

// Error is the structured failure value surfaced by the reader, scanner, and
// parser. Each of those components halts on the first Error it produces
// instead of attempting recovery; the composer layered on top is the only
// place multiple errors are ever collected.
type Error struct {
	Kind ErrorType

	Problem string
	Mark    Position

	// Context, when non-empty, names the construct the parser was in the
	// middle of when Problem was hit (e.g. "while parsing a block mapping").
	Context     string
	ContextMark Position

	// Octet and HasOctet can hold an offending input byte. The reader in
	// internal/parserc never fills them in, so HasOctet is always false.
	Octet    byte
	HasOctet bool
}

func (e *Error) Error() string {
	problem := e.Problem
	if problem == "" {
		problem = "unknown problem parsing YAML content"
	}
	where := ""
	if e.Mark.Line != 0 {
		where = e.Mark.String() + ": "
	}
	if e.Context != "" {
		return fmt.Sprintf("yaml: %s%s (%s at %s)", where, problem, e.Context, e.ContextMark.String())
	}
	return fmt.Sprintf("yaml: %s%s", where, problem)
}

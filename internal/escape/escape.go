// Package escape validates and quotes SQL identifiers and escapes literal
// values for embedding in generated statements.
package escape

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// plainIdent matches identifiers that can be embedded without quoting.
var plainIdent = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// ErrQuotingUnsupported is returned when an identifier requires quoting but
// the connection reports no identifier quote character.
var ErrQuotingUnsupported = errors.New("escape: identifier requires quoting but the connection supports none")

// NeedsQuoting reports whether the identifier must be quoted to be embedded
// safely.
func NeedsQuoting(ident string) bool {
	return !plainIdent.MatchString(ident)
}

// Identifier returns a safely embeddable form of ident. Plain identifiers
// pass through unchanged; anything else is quoted with the given quote
// character. A quote of 0 marks quoting as unsupported, in which case an
// identifier that would need it is a configuration error.
func Identifier(ident string, quote rune) (string, error) {
	if !NeedsQuoting(ident) {
		return ident, nil
	}
	if quote == 0 {
		return "", fmt.Errorf("%w: %q", ErrQuotingUnsupported, ident)
	}
	return Literal(ident, quote), nil
}

// Identifiers maps Identifier over a list of names. When quoting is
// unsupported, the returned error names every offending identifier rather
// than just the first.
func Identifiers(idents []string, quote rune) ([]string, error) {
	out := make([]string, len(idents))
	var offending []string
	for i, ident := range idents {
		s, err := Identifier(ident, quote)
		if err != nil {
			offending = append(offending, ident)
			continue
		}
		out[i] = s
	}
	if len(offending) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrQuotingUnsupported, strings.Join(offending, ", "))
	}
	return out, nil
}

// Literal escapes value and wraps it in quote characters. Backslashes are
// escaped first, then every occurrence of the quote character, so the
// transformation is lossless.
func Literal(value string, quote rune) string {
	q := string(quote)
	escaped := strings.ReplaceAll(value, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, q, `\`+q)
	return q + escaped + q
}

// Unliteral reverses Literal. It exists so callers (and tests) can verify
// the escape round-trip; it does not validate that value was produced by
// Literal.
func Unliteral(value string, quote rune) string {
	q := string(quote)
	s := strings.TrimPrefix(strings.TrimSuffix(value, q), q)
	s = strings.ReplaceAll(s, `\`+q, q)
	return strings.ReplaceAll(s, `\\`, `\`)
}

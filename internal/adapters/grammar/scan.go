package grammar

import (
	"math"
	"strconv"
	"strings"

	"github.com/kaufmann-jan/octopost/internal/core/domain"
	"go.trai.ch/zerr"
)

// missingToken is written by the solver for quantities that have not
// been computed yet (e.g. residuals before the first iteration).
const missingToken = "N/A"

// field is one logical column of a data line: a single scalar token, or
// the tokens of one parenthesized vector/tensor group. Nested groups are
// flattened into their enclosing field.
type field struct {
	tokens []string
}

func (f field) width() int { return len(f.tokens) }

// line is a data line paired with its 1-based position in the file.
type line struct {
	num  int
	text string
}

// splitContent separates leading-marker comment lines from data lines.
// The returned header is the last comment line seen before the first
// data line, with the comment marker stripped.
func splitContent(data []byte) (header string, rows []line) {
	for i, text := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			if len(rows) == 0 {
				header = strings.TrimSpace(strings.TrimPrefix(trimmed, "#"))
			}
			continue
		}
		rows = append(rows, line{num: i + 1, text: trimmed})
	}
	return header, rows
}

// splitFields splits a data line into fields, tracking the group
// delimiters so that multiple vector-valued columns on one line are not
// mis-split. An unbalanced delimiter yields ErrGroupDelimiter.
func splitFields(source string, ln line) ([]field, error) {
	var (
		fields  []field
		group   []string
		token   strings.Builder
		depth   int
		inGroup bool
	)

	flushToken := func() {
		if token.Len() == 0 {
			return
		}
		if inGroup {
			group = append(group, token.String())
		} else {
			fields = append(fields, field{tokens: []string{token.String()}})
		}
		token.Reset()
	}

	for _, r := range ln.text {
		switch r {
		case '(':
			flushToken()
			if depth == 0 {
				inGroup = true
				group = nil
			}
			depth++
		case ')':
			flushToken()
			depth--
			if depth < 0 {
				return nil, rowError(domain.ErrGroupDelimiter, source, ln.num)
			}
			if depth == 0 {
				fields = append(fields, field{tokens: group})
				group = nil
				inGroup = false
			}
		case ' ', '\t':
			flushToken()
		default:
			token.WriteRune(r)
		}
	}
	flushToken()

	if depth != 0 {
		return nil, rowError(domain.ErrGroupDelimiter, source, ln.num)
	}
	return fields, nil
}

// parseValue converts one token to a number. The solver's missing-value
// marker parses as NaN.
func parseValue(source string, ln line, token string) (float64, error) {
	if token == missingToken {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, rowError(domain.ErrMalformedRow, source, ln.num)
	}
	return v, nil
}

// onlyMissing reports whether every value field of a row (everything
// after the leading time token) is the missing-value marker. Such rows
// carry no data and are skipped rather than rejected.
func onlyMissing(fields []field) bool {
	if len(fields) < 2 {
		return false
	}
	for _, f := range fields[1:] {
		for _, tok := range f.tokens {
			if tok != missingToken {
				return false
			}
		}
	}
	return true
}

// flatten collects the scalar tokens of a row in order.
func flatten(fields []field) []string {
	var out []string
	for _, f := range fields {
		out = append(out, f.tokens...)
	}
	return out
}

// rowError annotates a grammar sentinel with the offending file and line.
func rowError(sentinel error, source string, num int) error {
	return zerr.With(zerr.With(sentinel, "file", source), "line", num)
}

package dmp

import (
	"bytes"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DiffToDelta crushes a diff into an encoded string describing the
// operations required to transform text1 into text2, e.g.
// "=3\t-2\t+ing" means keep 3 chars, delete 2 chars, insert "ing".
// Operations are tab-separated; inserted text is percent-encoded.
func DiffToDelta(diffs []Diff) string {
	var buf bytes.Buffer
	for _, d := range diffs {
		switch d.Type {
		case DiffInsert:
			buf.WriteString("+")
			buf.WriteString(strings.Replace(url.QueryEscape(d.Text), "+", " ", -1))
			buf.WriteString("\t")
		case DiffDelete:
			buf.WriteString("-")
			buf.WriteString(strconv.Itoa(utf8.RuneCountInString(d.Text)))
			buf.WriteString("\t")
		case DiffEqual:
			buf.WriteString("=")
			buf.WriteString(strconv.Itoa(utf8.RuneCountInString(d.Text)))
			buf.WriteString("\t")
		}
	}
	delta := buf.String()
	if len(delta) != 0 {
		// Strip off trailing tab character.
		delta = delta[:len(delta)-1]
		delta = unescaper.Replace(delta)
	}
	return delta
}

// DiffFromDelta, given the original text s and an encoded delta which
// describes the operations required to transform s into text2, computes
// the full diff.
func DiffFromDelta(s, delta string) ([]Diff, error) {
	diffs := []Diff{}
	pointer := 0 // Cursor in text1
	tokens := strings.Split(delta, "\t")

	for _, token := range tokens {
		if len(token) == 0 {
			// Blank tokens are ok (from a trailing \t).
			continue
		}

		// Each token begins with a one character parameter which specifies
		// the operation of this token (delete, insert, equality).
		param := token[1:]

		switch op := token[0]; op {
		case '+':
			// decode would turn all "+" to " "
			param = strings.Replace(param, "+", "%2b", -1)
			var err error
			param, err = url.QueryUnescape(param)
			if err != nil {
				return nil, newError(IllegalEscape, "%v", err)
			}
			if !utf8.ValidString(param) {
				return nil, newError(IllegalEscape, "invalid UTF-8 token: %q", param)
			}
			diffs = append(diffs, Diff{DiffInsert, param})
		case '=', '-':
			n, err := strconv.ParseInt(param, 10, 0)
			if err != nil {
				return diffs, newError(InvalidOp, "%v", err)
			} else if n < 0 {
				return diffs, newError(InvalidOp, "negative number in delta: %s", param)
			}

			// remember that string slicing is by byte - we want by rune here.
			runes := []rune(s)
			if pointer+int(n) > len(runes) {
				return diffs, newError(DeltaLengthMismatch, "index out of bound")
			}
			text := string(runes[pointer : pointer+int(n)])
			pointer += int(n)

			if op == '=' {
				diffs = append(diffs, Diff{DiffEqual, text})
			} else {
				diffs = append(diffs, Diff{DiffDelete, text})
			}
		default:
			// Anything else is an error.
			return diffs, newError(InvalidOp, "invalid diff operation: %s", string(token[0]))
		}
	}

	if pointer != len([]rune(s)) {
		return diffs, newError(
			DeltaLengthMismatch,
			"delta length (%v) does not match source text length (%v)",
			pointer, len([]rune(s)),
		)
	}
	return diffs, nil
}

package engine

import (
	"fmt"
	"strings"
)

// keywords lists every keyword a builtin reads. The value marks a flag:
// flags may be written bare and then read as true.
var keywords = map[string]bool{
	"name":       false,
	"color":      false,
	"samples":    false,
	"iterations": false,
	"res-u":      false,
	"res-v":      false,
	"degree":     false,
	"slices":     false,
	"uv":         true,
	"depth":      false,
	"holes":      true,
	"radius":     false,
	"at":         false,
	"rotate":     false,
	"spin":       false,
	"scale":      false,
}

// preprocessSource rewrites curvekit source into the dialect zygomys reads.
//
//	:depth 3        -> "__kw_depth" 3
//	:holes          -> "__kw_holes" true
//	res-u, my-curve -> res_u, my_curve   (zygomys reads '-' as minus)
//	-.5, .25        -> -0.5, 0.25
//	; comment       -> // comment
//
// String literals pass through untouched. Unknown keywords and keywords
// with no value are reported as EvalErrors carrying the source line.
func preprocessSource(source string) (string, error) {
	r := rewriter{src: source, line: 1}
	r.out.Grow(len(source) + len(source)/4)
	for r.pos < len(r.src) {
		if err := r.step(); err != nil {
			return "", err
		}
	}
	return r.out.String(), nil
}

type rewriter struct {
	src  string
	pos  int
	line int
	out  strings.Builder
}

func (r *rewriter) step() error {
	c := r.src[r.pos]
	switch {
	case c == '"' || c == '`':
		r.quoted(c)
	case c == ';':
		r.comment()
	case c == ':' && r.pos+1 < len(r.src) && isLetter(r.src[r.pos+1]):
		return r.keyword()
	case r.atTokenStart() && startsNumber(r.src[r.pos:]):
		r.number()
	case r.atTokenStart() && isLetter(c):
		r.identifier()
	default:
		r.emit()
	}
	return nil
}

// emit copies one byte through, counting lines.
func (r *rewriter) emit() {
	if r.src[r.pos] == '\n' {
		r.line++
	}
	r.out.WriteByte(r.src[r.pos])
	r.pos++
}

func (r *rewriter) atTokenStart() bool {
	return r.pos == 0 || strings.IndexByte(delimiters, r.src[r.pos-1]) >= 0
}

const delimiters = " \t\r\n()[]{}'`\""

func (r *rewriter) quoted(q byte) {
	r.emit()
	for r.pos < len(r.src) && r.src[r.pos] != q {
		if q == '"' && r.src[r.pos] == '\\' && r.pos+1 < len(r.src) {
			r.emit()
		}
		r.emit()
	}
	if r.pos < len(r.src) {
		r.emit()
	}
}

func (r *rewriter) comment() {
	r.out.WriteString("//")
	for r.pos < len(r.src) && r.src[r.pos] == ';' {
		r.pos++
	}
	for r.pos < len(r.src) && r.src[r.pos] != '\n' {
		r.emit()
	}
}

func (r *rewriter) keyword() error {
	end := r.pos + 1
	for end < len(r.src) && isKWChar(r.src[end]) {
		end++
	}
	name := r.src[r.pos+1 : end]
	flag, known := keywords[name]
	if !known {
		return EvalError{Line: r.line, Message: fmt.Sprintf("unknown keyword :%s", name)}
	}
	r.pos = end
	r.out.WriteString(`"` + kwPrefix + name + `"`)

	next := r.peekToken()
	switch {
	case flag:
		if next != "true" && next != "false" {
			r.out.WriteString(" true")
		}
	case next == "" || next == ")" || next == "]" || strings.HasPrefix(next, ":"):
		return EvalError{Line: r.line, Message: fmt.Sprintf("keyword :%s needs a value", name)}
	}
	return nil
}

// peekToken returns the next token after r.pos without consuming it,
// skipping whitespace and comments. Brackets are tokens of their own.
func (r *rewriter) peekToken() string {
	i := r.pos
	for i < len(r.src) {
		switch c := r.src[i]; {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case c == ';':
			for i < len(r.src) && r.src[i] != '\n' {
				i++
			}
		case strings.IndexByte("()[]{}", c) >= 0:
			return string(c)
		default:
			j := i
			for j < len(r.src) && strings.IndexByte(delimiters, r.src[j]) < 0 {
				j++
			}
			if j == i {
				j++ // a quote opens a literal
			}
			return r.src[i:j]
		}
	}
	return ""
}

// startsNumber reports whether s opens a numeric literal: an optional sign,
// an optional point, then a digit.
func startsNumber(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
	}
	return i < len(s) && isDigit(s[i])
}

func (r *rewriter) number() {
	switch r.src[r.pos] {
	case '-':
		r.out.WriteByte('-')
		r.pos++
	case '+':
		r.pos++
	}
	if r.src[r.pos] == '.' {
		r.out.WriteByte('0')
	}
	for r.pos < len(r.src) {
		c := r.src[r.pos]
		exponentSign := (c == '-' || c == '+') && (r.src[r.pos-1] == 'e' || r.src[r.pos-1] == 'E')
		if !isDigit(c) && c != '.' && c != 'e' && c != 'E' && !exponentSign {
			return
		}
		r.emit()
	}
}

// identifier copies a symbol, turning kebab-case hyphens into underscores.
func (r *rewriter) identifier() {
	for r.pos < len(r.src) {
		c := r.src[r.pos]
		switch {
		case c == '-' && r.pos+1 < len(r.src) && isLetter(r.src[r.pos+1]):
			r.out.WriteByte('_')
			r.pos++
		case isIdentChar(c):
			r.emit()
		default:
			return
		}
	}
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isKWChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}

package toml

import (
	"regexp"
	"unicode/utf8"
)

// =========================
// Token Definitions
// =========================

type TokenKind uint8

const (
	TokenComment TokenKind = iota
	TokenKey
	TokenTableHeader
	TokenTableArrayHeader
	TokenInlineTableStart
	TokenInlineTableEnd
	TokenString
	TokenInteger
	TokenFloat
	TokenBoolean
	TokenDatetime
	TokenAssignment
	TokenComma
	TokenArrayStart
	TokenArrayEnd
)

func (k TokenKind) String() string {
	switch k {
	case TokenComment:
		return "comment"
	case TokenKey:
		return "key"
	case TokenTableHeader:
		return "table header"
	case TokenTableArrayHeader:
		return "table array header"
	case TokenInlineTableStart:
		return "inline table start"
	case TokenInlineTableEnd:
		return "inline table end"
	case TokenString:
		return "string"
	case TokenInteger:
		return "integer"
	case TokenFloat:
		return "float"
	case TokenBoolean:
		return "boolean"
	case TokenDatetime:
		return "datetime"
	case TokenAssignment:
		return "assignment"
	case TokenComma:
		return "comma"
	case TokenArrayStart:
		return "array start"
	case TokenArrayEnd:
		return "array end"
	}
	return "unknown"
}

// Token is one lexical unit with its source position. Line and Column are
// zero-based; error messages report them one-based.
type Token struct {
	Kind   TokenKind
	Text   string
	Line   int
	Column int
}

// =========================
// Lexical Patterns
// =========================

// lexPattern is one entry in the ordered pattern table. The first pattern
// that matches the remaining line suffix wins, so order encodes precedence:
// [[...]] before [...], [...] before [, datetime and float before integer,
// boolean before key.
type lexPattern struct {
	kind TokenKind
	re   *regexp.Regexp
	// headlined patterns match only as the first token on a line, or in the
	// key slot of an open inline table.
	headlined bool
	// drop patterns are recognized but never emitted.
	drop bool
}

var lexPatterns = []lexPattern{
	{kind: TokenComment, re: regexp.MustCompile(`^#.*`), drop: true},
	{kind: TokenTableArrayHeader, re: regexp.MustCompile(`^\[\[[^\[\]]+\]\]`), headlined: true},
	{kind: TokenTableHeader, re: regexp.MustCompile(`^\[[^\[\]]+\]`), headlined: true},
	{kind: TokenString, re: regexp.MustCompile(`^"(?:\\.|[^"\\])*"`)},
	{kind: TokenDatetime, re: regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z`)},
	{kind: TokenFloat, re: regexp.MustCompile(`^[+-]?\d+\.\d+`)},
	{kind: TokenInteger, re: regexp.MustCompile(`^[+-]?\d+`)},
	{kind: TokenBoolean, re: regexp.MustCompile(`^(?:true|false)\b`)},
	{kind: TokenAssignment, re: regexp.MustCompile(`^=`)},
	{kind: TokenComma, re: regexp.MustCompile(`^,`)},
	{kind: TokenInlineTableStart, re: regexp.MustCompile(`^\{`)},
	{kind: TokenInlineTableEnd, re: regexp.MustCompile(`^\}`)},
	{kind: TokenArrayStart, re: regexp.MustCompile(`^\[`)},
	{kind: TokenArrayEnd, re: regexp.MustCompile(`^\]`)},
	{kind: TokenKey, re: regexp.MustCompile(`^[A-Za-z0-9_.\-]+`), headlined: true},
}

var lineBreak = regexp.MustCompile("\r\n|\r|\n")

// =========================
// Tokenizer
// =========================

// Tokenize scans src into a flat token sequence. Each line is scanned
// independently left to right: whitespace is skipped, then the ordered
// pattern table is tried against the remaining suffix. Comments are
// recognized and discarded. A character no pattern matches aborts the
// whole scan with a LexError.
func Tokenize(src string) ([]Token, error) {
	var tokens []Token
	for lineNo, line := range lineBreak.Split(src, -1) {
		col := 0
		first := true
		inlineOpen := false
		keyExpected := false
		for col < len(line) {
			if line[col] == ' ' || line[col] == '\t' {
				col++
				continue
			}
			rest := line[col:]
			matched := false
			for _, pat := range lexPatterns {
				if pat.headlined && !first && !(inlineOpen && keyExpected) {
					continue
				}
				loc := pat.re.FindStringIndex(rest)
				if loc == nil {
					continue
				}
				if !pat.drop {
					tokens = append(tokens, Token{
						Kind:   pat.kind,
						Text:   rest[:loc[1]],
						Line:   lineNo,
						Column: col,
					})
					first = false
					switch pat.kind {
					case TokenInlineTableStart:
						inlineOpen = true
						keyExpected = true
					case TokenInlineTableEnd:
						inlineOpen = false
						keyExpected = false
					case TokenComma:
						if inlineOpen {
							keyExpected = true
						}
					case TokenKey:
						keyExpected = false
					}
				}
				col += loc[1]
				matched = true
				break
			}
			if !matched {
				r, _ := utf8.DecodeRuneInString(rest)
				return nil, &LexError{Char: r, Line: lineNo, Column: col}
			}
		}
	}
	return tokens, nil
}

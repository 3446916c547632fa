package toml

import (
	"strconv"
	"strings"
	"time"
)

// =========================
// Scalar Decoders
// =========================

// Each decoder checks its token kind first; a mismatch means the grammar
// routed a token to the wrong decoder and is reported as a DecodeError.

func decodeString(tok Token) (Node, error) {
	if tok.Kind != TokenString {
		return nil, &DecodeError{Tok: tok, Msg: "string decoder given wrong token kind"}
	}
	s := tok.Text[1 : len(tok.Text)-1]
	var out strings.Builder
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch != '\\' {
			out.WriteByte(ch)
			continue
		}
		i++
		if i >= len(s) {
			return nil, &DecodeError{Tok: tok, Msg: "invalid escape"}
		}
		switch s[i] {
		case 'r':
			out.WriteByte('\r')
		case 'n':
			out.WriteByte('\n')
		case 't':
			out.WriteByte('\t')
		case 'b':
			out.WriteByte('\b')
		case 'f':
			out.WriteByte('\f')
		case '/':
			out.WriteByte('/')
		case '\\':
			out.WriteByte('\\')
		case '\'':
			out.WriteByte('\'')
		case '"':
			out.WriteByte('"')
		case 'u':
			if i+4 >= len(s) {
				return nil, &DecodeError{Tok: tok, Msg: "invalid unicode escape"}
			}
			r, err := parseHexRune(s[i+1 : i+5])
			if err != nil {
				return nil, &DecodeError{Tok: tok, Msg: "invalid unicode escape"}
			}
			out.WriteRune(r)
			i += 4
		case 'U':
			if i+8 >= len(s) {
				return nil, &DecodeError{Tok: tok, Msg: "invalid unicode escape"}
			}
			r, err := parseHexRune(s[i+1 : i+9])
			if err != nil {
				return nil, &DecodeError{Tok: tok, Msg: "invalid unicode escape"}
			}
			out.WriteRune(r)
			i += 8
		default:
			return nil, &DecodeError{Tok: tok, Msg: "invalid escape"}
		}
	}
	return &Value{Type: ValueString, V: out.String()}, nil
}

func parseHexRune(h string) (rune, error) {
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, err
	}
	return rune(v), nil
}

var datetimeStripper = strings.NewReplacer("T", " ", "Z", "")

func decodeDatetime(tok Token) (Node, error) {
	if tok.Kind != TokenDatetime {
		return nil, &DecodeError{Tok: tok, Msg: "datetime decoder given wrong token kind"}
	}
	// UTC is assumed; the lexical pattern only admits the Z suffix.
	t, err := time.Parse("2006-01-02 15:04:05", datetimeStripper.Replace(tok.Text))
	if err != nil {
		return nil, &DecodeError{Tok: tok, Msg: "invalid datetime"}
	}
	return &Value{Type: ValueDatetime, V: t}, nil
}

func decodeInteger(tok Token) (Node, error) {
	if tok.Kind != TokenInteger {
		return nil, &DecodeError{Tok: tok, Msg: "integer decoder given wrong token kind"}
	}
	i, err := strconv.ParseInt(tok.Text, 10, 64)
	if err != nil {
		return nil, &DecodeError{Tok: tok, Msg: "invalid integer"}
	}
	return &Value{Type: ValueInt, V: i}, nil
}

func decodeFloat(tok Token) (Node, error) {
	if tok.Kind != TokenFloat {
		return nil, &DecodeError{Tok: tok, Msg: "float decoder given wrong token kind"}
	}
	f, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil {
		return nil, &DecodeError{Tok: tok, Msg: "invalid float"}
	}
	return &Value{Type: ValueFloat, V: f}, nil
}

func decodeBoolean(tok Token) (Node, error) {
	if tok.Kind != TokenBoolean {
		return nil, &DecodeError{Tok: tok, Msg: "boolean decoder given wrong token kind"}
	}
	return &Value{Type: ValueBool, V: tok.Text == "true"}, nil
}

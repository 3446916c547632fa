package toml

import "strings"

// =========================
// Parser Implementation
// =========================

// Parser is a forward-only cursor over a token sequence. One token of
// lookahead is always sufficient; nothing ever backtracks. A Parser
// serves exactly one parse; concurrent parses each use their own
// instance.
type Parser struct {
	tokens []Token
	pos    int
	root   *Table
	path   string // current table path, "" means document root
}

func (p *Parser) cur() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

// invalidToken reports the current token as unexpected, or unexpected
// end of input when the stream is exhausted.
func (p *Parser) invalidToken() error {
	tok, ok := p.cur()
	if !ok {
		return ErrUnexpectedEOF
	}
	return &SyntaxError{Tok: tok}
}

func (p *Parser) parse() (*Table, error) {
	for p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		switch tok.Kind {
		case TokenTableArrayHeader:
			name := strings.TrimSpace(tok.Text[2 : len(tok.Text)-2])
			if _, err := p.root.CreateTable(name, true); err != nil {
				return nil, err
			}
			p.path = name
			p.pos++
		case TokenTableHeader:
			name := strings.TrimSpace(tok.Text[1 : len(tok.Text)-1])
			if _, err := p.root.CreateTable(name, false); err != nil {
				return nil, err
			}
			p.path = name
			p.pos++
		case TokenKey:
			if strings.Contains(tok.Text, ".") {
				if err := p.parseDottedPair(tok.Text); err != nil {
					return nil, err
				}
				continue
			}
			key, val, err := p.parsePair()
			if err != nil {
				return nil, err
			}
			if err := p.root.SetPair(p.path, key, val); err != nil {
				return nil, err
			}
		default:
			return nil, p.invalidToken()
		}
	}
	return p.root, nil
}

// parseDottedPair handles a top-level dotted key: the prefix is an
// implicit table path resolved from the document root, the final segment
// is the leaf key. table.key = value is shorthand for [table] + key = value.
func (p *Parser) parseDottedPair(key string) error {
	idx := strings.LastIndex(key, ".")
	prefix, leaf := key[:idx], key[idx+1:]
	if _, err := p.root.CreateTable(prefix, false); err != nil {
		return err
	}
	p.pos++ // the dotted key
	tok, ok := p.cur()
	if !ok || tok.Kind != TokenAssignment {
		return p.invalidToken()
	}
	p.pos++
	val, err := p.parseValue()
	if err != nil {
		return err
	}
	return p.root.SetPair(prefix, leaf, val)
}

// parsePair parses key '=' value. Entered on a bare assignment token the
// key is empty; that form only arises inside inline tables.
func (p *Parser) parsePair() (string, Node, error) {
	key := ""
	if tok, ok := p.cur(); ok && tok.Kind == TokenKey {
		key = tok.Text
		p.pos++
	}
	tok, ok := p.cur()
	if !ok || tok.Kind != TokenAssignment {
		return "", nil, p.invalidToken()
	}
	p.pos++
	val, err := p.parseValue()
	if err != nil {
		return "", nil, err
	}
	return key, val, nil
}

func (p *Parser) parseValue() (Node, error) {
	tok, ok := p.cur()
	if !ok {
		return nil, ErrUnexpectedEOF
	}
	switch tok.Kind {
	case TokenString:
		p.pos++
		return decodeString(tok)
	case TokenDatetime:
		p.pos++
		return decodeDatetime(tok)
	case TokenFloat:
		p.pos++
		return decodeFloat(tok)
	case TokenInteger:
		p.pos++
		return decodeInteger(tok)
	case TokenBoolean:
		p.pos++
		return decodeBoolean(tok)
	case TokenArrayStart:
		return p.parseArray()
	case TokenInlineTableStart:
		return p.parseInlineTable()
	default:
		return nil, &SyntaxError{Tok: tok}
	}
}

func (p *Parser) parseArray() (Node, error) {
	p.pos++ // array start
	arr := &Array{Elems: make([]Node, 0)}
	for {
		tok, ok := p.cur()
		if !ok {
			return nil, ErrUnexpectedEOF
		}
		// re-checked after each comma, so a trailing comma is accepted
		if tok.Kind == TokenArrayEnd {
			p.pos++
			return arr, nil
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr.Elems = append(arr.Elems, v)

		tok, ok = p.cur()
		if !ok {
			return nil, ErrUnexpectedEOF
		}
		switch tok.Kind {
		case TokenComma:
			p.pos++
		case TokenArrayEnd:
			p.pos++
			return arr, nil
		default:
			return nil, &SyntaxError{Tok: tok}
		}
	}
}

// parseInlineTable builds a fresh local table; dotted keys nest inside it
// only, never touching the document root.
func (p *Parser) parseInlineTable() (Node, error) {
	p.pos++ // inline table start
	t := NewTable()
	for {
		tok, ok := p.cur()
		if !ok {
			return nil, ErrUnexpectedEOF
		}
		if tok.Kind == TokenInlineTableEnd {
			p.pos++
			return t, nil
		}
		key, val, err := p.parsePair()
		if err != nil {
			return nil, err
		}
		setLocalPair(t, key, val)

		tok, ok = p.cur()
		if !ok {
			return nil, ErrUnexpectedEOF
		}
		switch tok.Kind {
		case TokenComma:
			p.pos++
		case TokenInlineTableEnd:
			p.pos++
			return t, nil
		default:
			return nil, &SyntaxError{Tok: tok}
		}
	}
}

func setLocalPair(t *Table, key string, val Node) {
	parts := strings.Split(key, ".")
	cur := t
	for i := 0; i < len(parts)-1; i++ {
		part := parts[i]
		if part == "" {
			continue
		}
		if tbl, ok := cur.Items[part].(*Table); ok {
			cur = tbl
			continue
		}
		next := NewTable()
		cur.Items[part] = next
		cur = next
	}
	cur.Items[parts[len(parts)-1]] = val
}

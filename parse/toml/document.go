package toml

import "strings"

// =========================
// AST Definitions
// =========================

type Kind uint8

const (
	KindTable Kind = iota
	KindArray
	KindValue
)

type Node interface {
	Kind() Kind
}

// -------- Table --------

type Table struct {
	Items map[string]Node
}

func NewTable() *Table {
	return &Table{Items: make(map[string]Node)}
}

func (*Table) Kind() Kind { return KindTable }

// -------- Array --------

type Array struct {
	Elems []Node
}

func (*Array) Kind() Kind { return KindArray }

// -------- Value --------

type ValueKind uint8

const (
	ValueString ValueKind = iota
	ValueInt
	ValueFloat
	ValueBool
	ValueDatetime
)

type Value struct {
	Type ValueKind
	V    any
}

func (*Value) Kind() Kind { return KindValue }

// =========================
// Path Resolution
// =========================

// CreateTable resolves a dotted path from t, creating an empty table at
// every missing segment. When isArray is set, the final segment is an
// array of tables: a fresh table is appended to the array there and
// becomes the resolution target. Whenever an intermediate segment holds
// an array, resolution descends into its last element.
func (t *Table) CreateTable(path string, isArray bool) (*Table, error) {
	cur := t
	parts := strings.Split(path, ".")
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		last := i == len(parts)-1

		n, ok := cur.Items[part]
		if !ok {
			next := NewTable()
			if isArray && last {
				cur.Items[part] = &Array{Elems: []Node{next}}
			} else {
				cur.Items[part] = next
			}
			cur = next
			continue
		}

		if isArray && last {
			arr, ok := n.(*Array)
			if !ok {
				return nil, &ConflictError{Path: path, Segment: part, Want: "array"}
			}
			next := NewTable()
			arr.Elems = append(arr.Elems, next)
			cur = next
			continue
		}

		next, err := descendInto(n, path, part)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// SetPair resolves tablePath the same way CreateTable does (last-element
// descent through arrays, empty segments skipped) and sets key on the
// resolved table, overwriting any prior value at that key.
func (t *Table) SetPair(tablePath, key string, value Node) error {
	cur := t
	for _, part := range strings.Split(tablePath, ".") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, ok := cur.Items[part]
		if !ok {
			next := NewTable()
			cur.Items[part] = next
			cur = next
			continue
		}
		next, err := descendInto(n, tablePath, part)
		if err != nil {
			return err
		}
		cur = next
	}
	cur.Items[key] = value
	return nil
}

func descendInto(n Node, path, segment string) (*Table, error) {
	switch v := n.(type) {
	case *Table:
		return v, nil
	case *Array:
		if len(v.Elems) > 0 {
			if tbl, ok := v.Elems[len(v.Elems)-1].(*Table); ok {
				return tbl, nil
			}
		}
		return nil, &ConflictError{Path: path, Segment: segment, Want: "table"}
	default:
		return nil, &ConflictError{Path: path, Segment: segment, Want: "table"}
	}
}

// =========================
// Safe Access Helpers
// =========================

func Get(root *Table, path ...string) (Node, bool) {
	var cur Node = root
	for _, p := range path {
		if len(p) == 0 {
			continue
		}
		t, ok := cur.(*Table)
		if !ok {
			return nil, false
		}
		cur, ok = t.Items[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func GetUntyped(root *Table, path ...string) (any, bool) {
	n, ok := Get(root, path...)
	if !ok {
		return nil, false
	}
	return ToUntyped(n), true
}

func ToUntyped(n Node) any {
	switch v := n.(type) {
	case *Value:
		return v.V
	case *Array:
		out := make([]any, len(v.Elems))
		for i := range v.Elems {
			out[i] = ToUntyped(v.Elems[i])
		}
		return out
	case *Table:
		m := make(map[string]any, len(v.Items))
		for k, child := range v.Items {
			m[k] = ToUntyped(child)
		}
		return m
	default:
		return nil
	}
}

func MustString(n Node) string {
	v := n.(*Value)
	return v.V.(string)
}

func MustInt(n Node) int64 {
	v := n.(*Value)
	return v.V.(int64)
}

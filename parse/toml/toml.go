package toml

// toml 包实现了一个基于词法分析和递归下降的 TOML 解析器。
//
// 流程：文本 → Tokenize（带行列位置的扁平 token 序列）→ Parser（单向游标，
// 一个 token 前瞻）→ 文档树（Table / Array / Value）。
//
// 支持的语法子集：
// - 表头 [a.b] 与表数组 [[a.b]]
// - 点分键 a.b.c = 1
// - 内联表 { a = 1, b.c = 2 }（单个物理行）
// - 数组（允许尾随逗号）
// - 字符串（含转义）、整数、浮点数、布尔值、UTC 日期时间
//
// 非目标（设计如此）：
// - 多行字符串 / 字面量字符串
// - 非 UTC 时区偏移
// - 数组元素类型一致性检查
// - 序列化回 TOML 文本

import (
	"io"
	"strings"
)

// =========================
// Public API
// =========================

// ParseString tokenizes and parses src. When def is non-nil it is used as
// the root document, mutated in place, and returned; otherwise a fresh
// empty table is the root. The first malformed construct aborts the call.
func ParseString(src string, def *Table) (*Table, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	root := def
	if root == nil {
		root = NewTable()
	}
	p := &Parser{tokens: tokens, root: root}
	return p.parse()
}

// Parse reads all of r and parses it as TOML.
func Parse(r io.Reader, def *Table) (*Table, error) {
	var b strings.Builder
	if _, err := io.Copy(&b, r); err != nil {
		return nil, err
	}
	return ParseString(b.String(), def)
}

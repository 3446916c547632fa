package toml

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func kinds(tokens []Token) []TokenKind {
	out := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestTokenizeKinds(t *testing.T) {
	convey.Convey("a key/value line", t, func() {
		tokens, err := Tokenize(`name = "tq"`)
		convey.So(err, convey.ShouldBeNil)
		convey.So(kinds(tokens), convey.ShouldResemble,
			[]TokenKind{TokenKey, TokenAssignment, TokenString})
	})

	convey.Convey("header patterns win over bracket patterns", t, func() {
		tokens, err := Tokenize("[[a.b]]\n[c]\nk = [1]")
		convey.So(err, convey.ShouldBeNil)
		convey.So(kinds(tokens), convey.ShouldResemble, []TokenKind{
			TokenTableArrayHeader,
			TokenTableHeader,
			TokenKey, TokenAssignment, TokenArrayStart, TokenInteger, TokenArrayEnd,
		})
		convey.So(tokens[0].Text, convey.ShouldEqual, "[[a.b]]")
		convey.So(tokens[1].Text, convey.ShouldEqual, "[c]")
	})

	convey.Convey("datetime and float are tried before integer", t, func() {
		tokens, err := Tokenize("a = 1.5\nb = 1979-05-27T07:32:00Z\nc = 15")
		convey.So(err, convey.ShouldBeNil)
		convey.So(tokens[2].Kind, convey.ShouldEqual, TokenFloat)
		convey.So(tokens[5].Kind, convey.ShouldEqual, TokenDatetime)
		convey.So(tokens[8].Kind, convey.ShouldEqual, TokenInteger)
	})

	convey.Convey("booleans are never keys", t, func() {
		tokens, err := Tokenize("flag = true")
		convey.So(err, convey.ShouldBeNil)
		convey.So(tokens[2].Kind, convey.ShouldEqual, TokenBoolean)
	})
}

func TestTokenizePositions(t *testing.T) {
	convey.Convey("line and column are zero-based", t, func() {
		tokens, err := Tokenize("a = 1\n  b = 2")
		convey.So(err, convey.ShouldBeNil)
		convey.So(tokens[0].Line, convey.ShouldEqual, 0)
		convey.So(tokens[0].Column, convey.ShouldEqual, 0)
		convey.So(tokens[2].Column, convey.ShouldEqual, 4)
		convey.So(tokens[3].Line, convey.ShouldEqual, 1)
		convey.So(tokens[3].Column, convey.ShouldEqual, 2)
	})

	convey.Convey("all line-break styles split lines", t, func() {
		tokens, err := Tokenize("a = 1\r\nb = 2\rc = 3\nd = 4")
		convey.So(err, convey.ShouldBeNil)
		convey.So(tokens[3].Line, convey.ShouldEqual, 1)
		convey.So(tokens[6].Line, convey.ShouldEqual, 2)
		convey.So(tokens[9].Line, convey.ShouldEqual, 3)
	})
}

func TestTokenizeComments(t *testing.T) {
	convey.Convey("comments never reach the token stream", t, func() {
		tokens, err := Tokenize("# heading\nkey = 1 # tail")
		convey.So(err, convey.ShouldBeNil)
		convey.So(kinds(tokens), convey.ShouldResemble,
			[]TokenKind{TokenKey, TokenAssignment, TokenInteger})
	})
}

func TestTokenizeKeyGating(t *testing.T) {
	convey.Convey("keys recur after commas inside an inline table", t, func() {
		tokens, err := Tokenize(`t = { a = 1, b = 2 }`)
		convey.So(err, convey.ShouldBeNil)
		convey.So(kinds(tokens), convey.ShouldResemble, []TokenKind{
			TokenKey, TokenAssignment, TokenInlineTableStart,
			TokenKey, TokenAssignment, TokenInteger, TokenComma,
			TokenKey, TokenAssignment, TokenInteger, TokenInlineTableEnd,
		})
	})

	convey.Convey("a bare word in value position fails the scan", t, func() {
		_, err := Tokenize("a = word")
		convey.So(err, convey.ShouldNotBeNil)
		lerr, ok := err.(*LexError)
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(lerr.Char, convey.ShouldEqual, 'w')
		convey.So(lerr.Column, convey.ShouldEqual, 4)
	})
}

func TestTokenizeStrings(t *testing.T) {
	convey.Convey("escaped quotes stay inside one string token", t, func() {
		tokens, err := Tokenize(`s = "he said \"hi\""`)
		convey.So(err, convey.ShouldBeNil)
		convey.So(len(tokens), convey.ShouldEqual, 3)
		convey.So(tokens[2].Kind, convey.ShouldEqual, TokenString)
		convey.So(tokens[2].Text, convey.ShouldEqual, `"he said \"hi\""`)
	})
}

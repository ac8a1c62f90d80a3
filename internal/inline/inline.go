// Package inline parses the cross-reference syntax embedded in entry bodies:
//
//	=> {Link Key}[Display text]
//	=> Word
//
// A designator after the marker is any mix of {key} groups, [text] groups and
// bare word runs; bare runs count as both key and text.
package inline

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/starford/glossgen/internal/apperr"
	"github.com/starford/glossgen/internal/models"
)

// Marker introduces an inline reference.
const Marker = "=>"

// Resolver finds the entry a link key points to. *models.Glossary implements
// it by following reference entries one hop.
type Resolver interface {
	Resolve(name string) (models.Entry, bool)
}

// Formatter renders a resolved reference.
type Formatter func(target models.Entry, text string) string

// SyntaxError reports a malformed reference designator.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("inline: %s at offset %d", e.Msg, e.Pos)
}

// Is makes errors.Is(err, apperr.ErrSyntax) hold.
func (e *SyntaxError) Is(target error) bool { return target == apperr.ErrSyntax }

// TokenKind tells literal text from references.
type TokenKind int

const (
	TokenText TokenKind = iota
	TokenRef
)

// Token is one piece of a scanned body. For TokenText, Text is the literal
// text. For TokenRef, Key is the link key and Text the display text.
type Token struct {
	Kind TokenKind
	Text string
	Key  string
	Pos  int
}

// Scan splits body into literal text and references.
func Scan(body string) ([]Token, error) {
	var tokens []Token
	offset := 0
	for {
		idx := strings.Index(body[offset:], Marker)
		if idx < 0 {
			break
		}
		pos := offset + idx
		if pos > offset {
			tokens = append(tokens, Token{Kind: TokenText, Text: body[offset:pos], Pos: offset})
		}

		i := pos + len(Marker)
		for i < len(body) && (body[i] == ' ' || body[i] == '\t') {
			i++
		}

		var key, text strings.Builder
		start := i
	designator:
		for i < len(body) {
			switch body[i] {
			case '{':
				end := strings.IndexByte(body[i+1:], '}')
				if end < 0 {
					return nil, &SyntaxError{Pos: i, Msg: "unterminated {"}
				}
				key.WriteString(body[i+1 : i+1+end])
				i += end + 2
			case '[':
				end := strings.IndexByte(body[i+1:], ']')
				if end < 0 {
					return nil, &SyntaxError{Pos: i, Msg: "unterminated ["}
				}
				text.WriteString(body[i+1 : i+1+end])
				i += end + 2
			default:
				r, size := utf8.DecodeRuneInString(body[i:])
				if !isWordRune(r) {
					break designator
				}
				key.WriteRune(r)
				text.WriteRune(r)
				i += size
			}
		}
		if i == start {
			return nil, &SyntaxError{Pos: i, Msg: "expected reference after " + Marker}
		}

		display := text.String()
		if display == "" {
			display = key.String()
		}
		tokens = append(tokens, Token{Kind: TokenRef, Key: key.String(), Text: display, Pos: pos})
		offset = i
	}
	if offset < len(body) {
		tokens = append(tokens, Token{Kind: TokenText, Text: body[offset:], Pos: offset})
	}
	return tokens, nil
}

func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_', r == '-':
		return true
	case r == 'ä', r == 'ö', r == 'ü', r == 'Ä', r == 'Ö', r == 'Ü', r == 'ß':
		return true
	}
	return false
}

type options struct {
	logger *slog.Logger
	escape func(string) string
}

// Option configures Expand.
type Option func(*options)

// WithLogger reports unresolved link keys as warnings.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithTextEscaper applies fn to literal text and to the display text of
// unresolved references. Formatter output is not escaped.
func WithTextEscaper(fn func(string) string) Option {
	return func(o *options) { o.escape = fn }
}

// Expand replaces every reference in body with the formatter's output.
// References whose key does not resolve degrade to their display text and
// the formatter is not called for them.
func Expand(body string, r Resolver, f Formatter, opts ...Option) (string, error) {
	o := options{escape: func(s string) string { return s }}
	for _, opt := range opts {
		opt(&o)
	}

	tokens, err := Scan(body)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(body))
	for _, tok := range tokens {
		if tok.Kind == TokenText {
			b.WriteString(o.escape(tok.Text))
			continue
		}
		target, ok := r.Resolve(tok.Key)
		if !ok {
			if o.logger != nil {
				o.logger.Warn("unresolved reference", slog.String("key", tok.Key))
			}
			b.WriteString(o.escape(tok.Text))
			continue
		}
		b.WriteString(f(target, tok.Text))
	}
	return b.String(), nil
}

// Collect calls visit for every reference in body that resolves. It is the
// side-effect-only counterpart of Expand used to build backlink indexes.
func Collect(body string, r Resolver, visit func(target models.Entry)) error {
	tokens, err := Scan(body)
	if err != nil {
		return err
	}
	for _, tok := range tokens {
		if tok.Kind != TokenRef {
			continue
		}
		if target, ok := r.Resolve(tok.Key); ok {
			visit(target)
		}
	}
	return nil
}

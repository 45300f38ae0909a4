package pointer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dimehead/npbkit/bank/config"
)

// Pointer is an immutable sequence of path tokens identifying one node in a
// config document. The zero value addresses the document root.
type Pointer struct {
	tokens []string
}

// Parse builds a Pointer from its textual form. "" and "#" address the
// document root; any other text must start with "/" after the optional "#"
// fragment marker. Escapes are decoded per token after splitting.
func Parse(text string) (Pointer, error) {
	text = strings.TrimPrefix(text, "#")
	if text == "" {
		return Pointer{}, nil
	}
	if !strings.HasPrefix(text, "/") {
		return Pointer{}, fmt.Errorf("%w: %q must start with '/' after optional '#'", ErrSyntax, text)
	}
	parts := strings.Split(text[1:], "/")
	tokens := make([]string, len(parts))
	for i, p := range parts {
		tok, err := unescape(p)
		if err != nil {
			return Pointer{}, err
		}
		tokens[i] = tok
	}
	return Pointer{tokens: tokens}, nil
}

// IsRoot reports whether the pointer addresses the document root.
func (p Pointer) IsRoot() bool { return len(p.tokens) == 0 }

// Tokens returns a copy of the decoded path tokens.
func (p Pointer) Tokens() []string {
	out := make([]string, len(p.tokens))
	copy(out, p.tokens)
	return out
}

// String renders the pointer back to its canonical textual form.
func (p Pointer) String() string {
	if p.IsRoot() {
		return ""
	}
	var b strings.Builder
	for _, tok := range p.tokens {
		b.WriteByte('/')
		b.WriteString(escape(tok))
	}
	return b.String()
}

// Get walks doc one token at a time and returns the addressed node. It fails
// at the first mismatched step with no partial result: ErrKeyNotFound for a
// missing object key or non-integer array token, ErrIndexOutOfRange for an
// index at or past the array length, ErrNotContainer for a token applied to
// a scalar. doc is never mutated.
func Get(doc config.Node, p Pointer) (config.Node, error) {
	cur := doc
	for _, tok := range p.tokens {
		switch c := cur.(type) {
		case *config.Object:
			v, ok := c.Get(tok)
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, tok)
			}
			cur = v
		case *config.Array:
			idx, err := arrayIndex(tok, c.Len())
			if err != nil {
				return nil, err
			}
			cur = c.At(idx)
		default:
			return nil, fmt.Errorf("%w: %q applied to %s", ErrNotContainer, tok, cur.Kind())
		}
	}
	return cur, nil
}

// Set resolves the pointer to its parent container and assigns value at the
// final token. The token must reference an existing key or in-range index;
// Set never creates object keys or grows arrays. The document is left
// untouched when an error is returned.
func Set(doc config.Node, p Pointer, value config.Node) error {
	if p.IsRoot() {
		return fmt.Errorf("%w: refusing to replace the document root", ErrResolve)
	}
	parent, err := Get(doc, Pointer{tokens: p.tokens[:len(p.tokens)-1]})
	if err != nil {
		return err
	}
	last := p.tokens[len(p.tokens)-1]
	switch c := parent.(type) {
	case *config.Object:
		if !c.Has(last) {
			return fmt.Errorf("%w: %q", ErrKeyNotFound, last)
		}
		c.Set(last, value)
	case *config.Array:
		idx, err := arrayIndex(last, c.Len())
		if err != nil {
			return err
		}
		c.SetAt(idx, value)
	default:
		return fmt.Errorf("%w: %q applied to %s", ErrNotContainer, last, parent.Kind())
	}
	return nil
}

func arrayIndex(tok string, length int) (int, error) {
	idx, err := strconv.Atoi(tok)
	if err != nil || idx < 0 {
		return 0, fmt.Errorf("%w: array index expected, got %q", ErrKeyNotFound, tok)
	}
	if idx >= length {
		return 0, fmt.Errorf("%w: index %d in array of length %d", ErrIndexOutOfRange, idx, length)
	}
	return idx, nil
}

func unescape(tok string) (string, error) {
	if !strings.Contains(tok, "~") {
		return tok, nil
	}
	var b strings.Builder
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if c != '~' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(tok) {
			return "", fmt.Errorf("%w: dangling '~' in token %q", ErrSyntax, tok)
		}
		switch tok[i] {
		case '0':
			b.WriteByte('~')
		case '1':
			b.WriteByte('/')
		default:
			return "", fmt.Errorf("%w: invalid escape \"~%c\" in token %q", ErrSyntax, tok[i], tok)
		}
	}
	return b.String(), nil
}

func escape(tok string) string {
	tok = strings.ReplaceAll(tok, "~", "~0")
	return strings.ReplaceAll(tok, "/", "~1")
}

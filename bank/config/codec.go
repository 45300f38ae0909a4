package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/ohler55/ojg/oj"
)

// ErrParse indicates the config document payload is not valid JSON.
var ErrParse = errors.New("config: invalid config document")

// Decode parses a config document payload into a node tree. Unknown fields
// and unknown top-level version markers are kept as ordinary nodes; the
// codec never rejects or rewrites fields it does not recognize.
func Decode(data []byte) (Node, error) {
	// ojg's validator reports line/column positions, which the stdlib
	// tokenizer below does not.
	if err := oj.Validate(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	n, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if tok, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing content after document: %v", ErrParse, tok)
	}
	return n, nil
}

// Encode serializes a node tree back to the config document payload, with
// four-space indentation. Key order and numeric literals are reproduced
// exactly; whitespace is normalized, so Encode(Decode(b)) is semantically
// equivalent to b but not necessarily byte-identical.
func Encode(n Node) []byte {
	var buf bytes.Buffer
	writeNode(&buf, n, 0)
	return buf.Bytes()
}

func decodeValue(dec *json.Decoder) (Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t.String())
	case string:
		return String(t), nil
	case json.Number:
		return Number(t.String()), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null{}, nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func decodeObject(dec *json.Decoder) (*Object, error) {
	o := NewObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", tok)
		}
		if o.Has(key) {
			return nil, fmt.Errorf("duplicate object key %q", key)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		o.Set(key, v)
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return nil, err
	}
	return o, nil
}

func decodeArray(dec *json.Decoder) (*Array, error) {
	a := NewArray()
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		a.Append(v)
	}
	if _, err := dec.Token(); err != nil { // consume ']'
		return nil, err
	}
	return a, nil
}

const indentUnit = "    "

func writeNode(buf *bytes.Buffer, n Node, depth int) {
	switch v := n.(type) {
	case *Object:
		if v.Len() == 0 {
			buf.WriteString("{}")
			return
		}
		buf.WriteString("{\n")
		for i := 0; i < v.Len(); i++ {
			writeIndent(buf, depth+1)
			writeString(buf, v.Key(i))
			buf.WriteString(": ")
			writeNode(buf, v.At(i), depth+1)
			if i < v.Len()-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		writeIndent(buf, depth)
		buf.WriteByte('}')
	case *Array:
		if v.Len() == 0 {
			buf.WriteString("[]")
			return
		}
		buf.WriteString("[\n")
		for i := 0; i < v.Len(); i++ {
			writeIndent(buf, depth+1)
			writeNode(buf, v.At(i), depth+1)
			if i < v.Len()-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		writeIndent(buf, depth)
		buf.WriteByte(']')
	case String:
		writeString(buf, string(v))
	case Number:
		buf.WriteString(string(v))
	case Bool:
		if v {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case Null:
		buf.WriteString("null")
	}
}

func writeIndent(buf *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteString(indentUnit)
	}
}

const hexDigits = "0123456789abcdef"

// writeString emits a JSON string without the HTML escaping the stdlib
// encoder applies, so payload bytes stay as close to the source as possible.
func writeString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				buf.WriteString(`\u00`)
				buf.WriteByte(hexDigits[byte(r)>>4])
				buf.WriteByte(hexDigits[byte(r)&0xf])
			} else {
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte('"')
}

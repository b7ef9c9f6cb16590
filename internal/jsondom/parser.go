package jsondom

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/minio/simdjson-go"
)

var (
	errEmptyDocument = errors.New("empty JSON document")
	errTrailingData  = errors.New("trailing data after JSON document")
)

// Parser parses JSON documents into Value trees. Its internal tape buffers
// are reused across parses, so a single Parser amortizes allocations over
// many documents. A Parser must not be used concurrently.
type Parser struct {
	reuse *simdjson.ParsedJson
}

// NewParser creates a parser with empty reusable state.
//
// Returns:
//   - *Parser: the parser
func NewParser() *Parser {
	return &Parser{}
}

// SIMDSupported reports whether the host CPU can run the vectorized backend.
//
// Returns:
//   - bool: true if the vectorized backend is usable on this CPU
func SIMDSupported() bool {
	return simdjson.SupportedCPU()
}

// Parse parses a complete JSON document. The vectorized backend is used when
// requested and supported; otherwise the portable backend runs. Both produce
// identical trees.
//
// Parameters:
//   - data: the document bytes, without trailing padding
//   - useSIMD: prefer the vectorized backend
//
// Returns:
//   - *Value: the document root
//   - error: error if the document is not valid JSON
func (p *Parser) Parse(data []byte, useSIMD bool) (*Value, error) {
	if useSIMD && SIMDSupported() {
		return p.parseSIMD(data)
	}
	return parsePortable(data)
}

func (p *Parser) parseSIMD(data []byte) (*Value, error) {
	pj, err := simdjson.Parse(data, p.reuse)
	if err != nil {
		return nil, err
	}
	p.reuse = pj

	iter := pj.Iter()
	if typ := iter.Advance(); typ != simdjson.TypeRoot {
		return nil, errEmptyDocument
	}
	typ, root, err := iter.Root(nil)
	if err != nil {
		return nil, err
	}
	return convertSIMD(root, typ)
}

func convertSIMD(it *simdjson.Iter, typ simdjson.Type) (*Value, error) {
	switch typ {
	case simdjson.TypeNull:
		return &Value{kind: KindNull}, nil
	case simdjson.TypeBool:
		b, err := it.Bool()
		if err != nil {
			return nil, err
		}
		return &Value{kind: KindBool, b: b}, nil
	case simdjson.TypeInt:
		i, err := it.Int()
		if err != nil {
			return nil, err
		}
		return &Value{kind: KindInt, i: i}, nil
	case simdjson.TypeUint:
		u, err := it.Uint()
		if err != nil {
			return nil, err
		}
		return &Value{kind: KindUint, u: u}, nil
	case simdjson.TypeFloat:
		f, err := it.Float()
		if err != nil {
			return nil, err
		}
		return &Value{kind: KindFloat, f: f}, nil
	case simdjson.TypeString:
		// Iter.String copies out of the tape, satisfying the no-references
		// contract of the package.
		s, err := it.String()
		if err != nil {
			return nil, err
		}
		return &Value{kind: KindString, s: s}, nil
	case simdjson.TypeArray:
		arr, err := it.Array(nil)
		if err != nil {
			return nil, err
		}
		v := &Value{kind: KindArray}
		ai := arr.Iter()
		for {
			t := ai.Advance()
			if t == simdjson.TypeNone {
				break
			}
			elem, err := convertSIMD(&ai, t)
			if err != nil {
				return nil, err
			}
			v.arr = append(v.arr, elem)
		}
		return v, nil
	case simdjson.TypeObject:
		obj, err := it.Object(nil)
		if err != nil {
			return nil, err
		}
		v := &Value{kind: KindObject}
		var element simdjson.Iter
		for {
			name, t, err := obj.NextElement(&element)
			if err != nil {
				return nil, err
			}
			if t == simdjson.TypeNone {
				break
			}
			member, err := convertSIMD(&element, t)
			if err != nil {
				return nil, err
			}
			v.obj = append(v.obj, Member{Key: name, Value: member})
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unexpected element type %v", typ)
	}
}

// parsePortable reads the document off the standard library token stream so
// that member order is preserved without going through a map.
func parsePortable(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := readValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errTrailingData
		}
		return nil, err
	}
	return v, nil
}

func readValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err == io.EOF {
		return nil, errEmptyDocument
	}
	if err != nil {
		return nil, err
	}
	return valueFromToken(dec, tok)
}

func valueFromToken(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			v := &Value{kind: KindObject}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is %T, not string", keyTok)
				}
				member, err := readValue(dec)
				if err != nil {
					return nil, err
				}
				v.obj = append(v.obj, Member{Key: key, Value: member})
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return v, nil
		case '[':
			v := &Value{kind: KindArray}
			for dec.More() {
				elem, err := readValue(dec)
				if err != nil {
					return nil, err
				}
				v.arr = append(v.arr, elem)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return v, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	case string:
		return &Value{kind: KindString, s: t}, nil
	case bool:
		return &Value{kind: KindBool, b: t}, nil
	case json.Number:
		return numberValue(t)
	case nil:
		return &Value{kind: KindNull}, nil
	default:
		return nil, fmt.Errorf("unexpected token %T", tok)
	}
}

// numberValue classifies a number the same way the vectorized backend does:
// integers that fit int64 are KindInt, larger non-negative integers are
// KindUint, everything else is KindFloat.
func numberValue(n json.Number) (*Value, error) {
	s := n.String()
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return &Value{kind: KindInt, i: i}, nil
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return &Value{kind: KindUint, u: u}, nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, err
	}
	return &Value{kind: KindFloat, f: f}, nil
}

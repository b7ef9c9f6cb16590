package fastgltf

import (
	"io"
	"os"
	"path/filepath"

	"github.com/headbirdgames/fastgltf/internal/jsondom"
)

// Parser loads glTF documents. It owns the underlying JSON parser, whose
// internal buffers are reused across loads, so keeping one Parser alive
// amortizes allocations over many assets.
//
// A Parser is constructed with the set of extensions the caller is prepared
// to handle; documents requiring anything else are rejected at load time. A
// Parser is not safe for concurrent use; independent Parsers are.
type Parser struct {
	extensions Extensions
	dom        *jsondom.Parser
	err        Error
}

// NewParser creates a parser. No I/O happens here.
//
// Parameters:
//   - extensions: the extensions the caller is prepared to handle
//
// Returns:
//   - *Parser: the parser
func NewParser(extensions Extensions) *Parser {
	return &Parser{
		extensions: extensions,
		dom:        jsondom.NewParser(),
	}
}

// Error returns the error of the most recent load, or ErrNone.
//
// Returns:
//   - Error: the last load error
func (p *Parser) Error() Error {
	return p.err
}

// LoadGLTF loads a glTF document from a JSON source. Relative URIs inside
// the document resolve against directory, which must exist.
//
// Parameters:
//   - data: the JSON source
//   - directory: the base directory for relative URIs
//   - options: load flags
//
// Returns:
//   - *GLTF: the document handle
//   - error: error if the load preconditions fail
func (p *Parser) LoadGLTF(data *JSONData, directory string, options Options) (*GLTF, error) {
	info, statErr := os.Stat(directory)
	if statErr != nil || !info.IsDir() {
		p.err = ErrInvalidPath
		return nil, p.err
	}

	p.err = ErrNone

	root, parseErr := p.parseDOM(data.Bytes(), options)
	if parseErr != ErrNone {
		p.err = parseErr
		return nil, p.err
	}

	return p.finishLoad(newGLTF(root, directory, options, p.extensions, nil))
}

// LoadBinaryGLTF loads a binary glTF container from a file. With
// LoadGLBBuffers the BIN chunk is read into memory; otherwise the chunk is
// recorded as a byte range of path and its payload is never read.
//
// Parameters:
//   - path: the .glb file
//   - options: load flags
//
// Returns:
//   - *GLTF: the document handle
//   - error: error if the container or load preconditions fail
func (p *Parser) LoadBinaryGLTF(path string, options Options) (*GLTF, error) {
	info, statErr := os.Stat(path)
	if statErr != nil || !info.Mode().IsRegular() {
		p.err = ErrInvalidPath
		return nil, p.err
	}

	p.err = ErrNone

	file, openErr := os.Open(path)
	if openErr != nil {
		p.err = ErrInvalidPath
		return nil, p.err
	}
	defer file.Close()

	frame, glbErr := decodeGLB(file, path, info.Size(), options.has(LoadGLBBuffers))
	if glbErr != ErrNone {
		p.err = glbErr
		return nil, p.err
	}

	root, parseErr := p.parseDOM(frame.json.Bytes(), options)
	if parseErr != ErrNone {
		p.err = parseErr
		return nil, p.err
	}

	return p.finishLoad(newGLTF(root, filepath.Dir(path), options, p.extensions, frame.bin))
}

// LoadBinaryGLTFFromReader loads a binary glTF container from a stream,
// for embedded resources or other path-less inputs. The BIN chunk is
// always read into memory since there is no file to point back into, and
// the container length cannot be validated against a file size. Relative
// URIs inside the document resolve against directory.
//
// Parameters:
//   - r: the container stream
//   - directory: the base directory for relative URIs
//   - options: load flags
//
// Returns:
//   - *GLTF: the document handle
//   - error: error if the container or load preconditions fail
func (p *Parser) LoadBinaryGLTFFromReader(r io.Reader, directory string, options Options) (*GLTF, error) {
	info, statErr := os.Stat(directory)
	if statErr != nil || !info.IsDir() {
		p.err = ErrInvalidPath
		return nil, p.err
	}

	p.err = ErrNone

	frame, glbErr := decodeGLB(r, "", -1, true)
	if glbErr != ErrNone {
		p.err = glbErr
		return nil, p.err
	}

	root, parseErr := p.parseDOM(frame.json.Bytes(), options)
	if parseErr != ErrNone {
		p.err = parseErr
		return nil, p.err
	}

	return p.finishLoad(newGLTF(root, directory, options, p.extensions, frame.bin))
}

// parseDOM runs the JSON parse with the backend the options select and
// requires an object root.
func (p *Parser) parseDOM(data []byte, options Options) (*jsondom.Value, Error) {
	useSIMD := !options.has(DontUseSIMD)
	root, err := p.dom.Parse(data, useSIMD)
	if err != nil || root.Kind() != jsondom.KindObject {
		return nil, ErrInvalidJSON
	}
	return root, ErrNone
}

// finishLoad enforces the asset-field and extension preconditions on a
// freshly constructed handle.
func (p *Parser) finishLoad(g *GLTF) (*GLTF, error) {
	if !g.options.has(DontRequireValidAssetMember) && !g.checkAssetField() {
		p.err = ErrInvalidOrMissingAssetField
		return nil, p.err
	}
	if extErr := g.checkExtensions(); extErr != ErrNone {
		p.err = extErr
		return nil, p.err
	}
	return g, nil
}

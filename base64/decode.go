// Package base64 decodes the base64 payloads of glTF data URIs.
//
// Two implementations share identical semantics: a vectorized decoder used
// by default on hardware that supports it, and a portable decoder that is
// always available. Both produce byte-identical output for any valid input,
// so callers may force the portable path without changing results.
package base64

import (
	stdb64 "encoding/base64"
	"errors"
	"strings"
)

var (
	errInvalidLength    = errors.New("base64 input length is not a multiple of 4")
	errInvalidCharacter = errors.New("base64 input contains characters outside the alphabet")
)

// simdDecode is installed by platform-specific init when the host CPU
// qualifies for the vectorized path. Nil means the portable path is the
// only one available.
var simdDecode func(s string) ([]byte, error)

// Decode decodes a base64 string, preferring the vectorized implementation
// when the host CPU supports it and falling back to the portable
// implementation otherwise.
//
// Parameters:
//   - s: the base64 text to decode; its length must be a multiple of 4
//
// Returns:
//   - []byte: the decoded bytes
//   - error: error if the input is not valid base64
func Decode(s string) ([]byte, error) {
	if simdDecode != nil {
		if err := validate(s); err != nil {
			return nil, err
		}
		return simdDecode(s)
	}
	return FallbackDecode(s)
}

// FallbackDecode decodes a base64 string using the portable implementation.
// It accepts exactly the same inputs as Decode and produces identical output.
//
// Parameters:
//   - s: the base64 text to decode; its length must be a multiple of 4
//
// Returns:
//   - []byte: the decoded bytes
//   - error: error if the input is not valid base64
func FallbackDecode(s string) ([]byte, error) {
	if err := validate(s); err != nil {
		return nil, err
	}
	out, err := stdb64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errInvalidCharacter
	}
	return out, nil
}

// validate enforces the strict alphabet shared by both implementations.
// The standard library tolerates embedded line breaks; data URIs never
// contain them, so they are rejected here to keep both paths in agreement.
func validate(s string) error {
	if len(s)%4 != 0 {
		return errInvalidLength
	}
	if strings.ContainsAny(s, "\r\n") {
		return errInvalidCharacter
	}
	return nil
}

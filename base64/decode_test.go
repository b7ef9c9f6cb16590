package base64

import (
	stdb64 "encoding/base64"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeKnownVectors(t *testing.T) {
	cases := []struct {
		in   string
		want []byte
	}{
		{"", []byte{}},
		{"AQID", []byte{0x01, 0x02, 0x03}},
		{"AQI=", []byte{0x01, 0x02}},
		{"AQ==", []byte{0x01}},
		{"aGVsbG8gd29ybGQ=", []byte("hello world")},
	}

	for _, c := range cases {
		got, err := Decode(c.in)
		require.NoError(t, err, "Decode(%q)", c.in)
		assert.Equal(t, c.want, got)

		got, err = FallbackDecode(c.in)
		require.NoError(t, err, "FallbackDecode(%q)", c.in)
		assert.Equal(t, c.want, got)
	}
}

func TestDecodeOutputLength(t *testing.T) {
	// len(out) == 3*(len(in)/4) - padding for every valid input.
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 64; i++ {
		raw := make([]byte, rng.Intn(256))
		rng.Read(raw)
		enc := stdb64.StdEncoding.EncodeToString(raw)

		out, err := Decode(enc)
		require.NoError(t, err)
		padding := strings.Count(enc, "=")
		assert.Equal(t, 3*(len(enc)/4)-padding, len(out))
		assert.Equal(t, raw, out)
	}
}

func TestDecodeRejectsBadLength(t *testing.T) {
	for _, in := range []string{"A", "AB", "ABC", "AQIDA"} {
		_, err := Decode(in)
		assert.ErrorIs(t, err, errInvalidLength, "input %q", in)

		_, err = FallbackDecode(in)
		assert.ErrorIs(t, err, errInvalidLength, "input %q", in)
	}
}

func TestDecodeRejectsBadAlphabet(t *testing.T) {
	for _, in := range []string{"AQ!D", "AQ\nD", "AQI\r", "????"} {
		_, err := Decode(in)
		assert.Error(t, err, "input %q", in)

		_, err = FallbackDecode(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestDecodePathsAgree(t *testing.T) {
	// Both implementations must produce byte-identical output over an
	// arbitrary corpus, including every padding shape.
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 512; i++ {
		raw := make([]byte, rng.Intn(1024))
		rng.Read(raw)
		enc := stdb64.StdEncoding.EncodeToString(raw)

		fast, errFast := Decode(enc)
		slow, errSlow := FallbackDecode(enc)
		require.NoError(t, errFast)
		require.NoError(t, errSlow)
		require.Equal(t, slow, fast)
	}
}

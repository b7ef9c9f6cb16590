//go:build amd64

package base64

import (
	"github.com/cloudwego/base64x"
	"github.com/klauspost/cpuid/v2"
)

func init() {
	// base64x carries its own scalar fallback, but the point of routing
	// through it is the AVX2 kernel; without AVX2 the portable decoder is
	// just as fast and has one less dependency in the call path.
	if cpuid.CPU.Has(cpuid.AVX2) {
		simdDecode = func(s string) ([]byte, error) {
			out, err := base64x.StdEncoding.DecodeString(s)
			if err != nil {
				return nil, errInvalidCharacter
			}
			return out, nil
		}
	}
}

//go:build !(darwin || freebsd || linux)

package translator

import "github.com/gogpu/glhal/glenum"

// Library is unavailable on this platform.
type Library struct{}

// Open always fails on this platform.
func Open(_, symbol string) (*Library, error) {
	if symbol == "" {
		return nil, ErrNoSymbol
	}
	return nil, ErrUnsupportedPlatform
}

// Translate always fails on this platform.
func (*Library) Translate(glenum.ShaderType, string) (string, error) {
	return "", ErrUnsupportedPlatform
}

// Close is a no-op.
func (*Library) Close() error { return nil }

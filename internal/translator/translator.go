// Package translator converts the shading-language source a client hands
// to ShaderSource into the WGSL the context compiles.
//
// The default translator is the identity: clients supply WGSL directly. A
// cross-compiler can be plugged in from a shared library at run time with
// Open.
package translator

import (
	"errors"

	"github.com/gogpu/glhal/glenum"
)

// Errors.
var (
	ErrTranslateFailed     = errors.New("translator: translation failed")
	ErrUnsupportedPlatform = errors.New("translator: shared-library translators are not supported on this platform")
	ErrNoSymbol            = errors.New("translator: symbol name is empty")
)

// Translator converts source for one shader stage to WGSL.
type Translator interface {
	Translate(kind glenum.ShaderType, source string) (string, error)
}

// Func adapts a function to the Translator interface.
type Func func(kind glenum.ShaderType, source string) (string, error)

// Translate calls f.
func (f Func) Translate(kind glenum.ShaderType, source string) (string, error) {
	return f(kind, source)
}

// Identity returns the source unchanged.
type Identity struct{}

// Translate returns source.
func (Identity) Translate(_ glenum.ShaderType, source string) (string, error) {
	return source, nil
}

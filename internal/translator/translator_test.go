package translator

import (
	"errors"
	"strings"
	"testing"
	"unsafe"

	"github.com/gogpu/glhal/glenum"
)

func TestIdentity(t *testing.T) {
	var tr Translator = Identity{}
	got, err := tr.Translate(glenum.VertexShader, "@vertex fn main() {}")
	if err != nil || got != "@vertex fn main() {}" {
		t.Errorf("Translate() = %q, %v", got, err)
	}
}

func TestFunc(t *testing.T) {
	var tr Translator = Func(func(kind glenum.ShaderType, src string) (string, error) {
		if kind == glenum.GeometryShader {
			return "", ErrTranslateFailed
		}
		return strings.ToUpper(src), nil
	})
	if got, _ := tr.Translate(glenum.FragmentShader, "abc"); got != "ABC" {
		t.Errorf("Translate() = %q", got)
	}
	if _, err := tr.Translate(glenum.GeometryShader, "abc"); !errors.Is(err, ErrTranslateFailed) {
		t.Errorf("err = %v", err)
	}
}

func TestGoString(t *testing.T) {
	buf := []byte("wgsl\x00tail")
	got := goString(uintptr(unsafe.Pointer(&buf[0])))
	if got != "wgsl" {
		t.Errorf("goString() = %q", got)
	}
	if goString(0) != "" {
		t.Error("goString(0) not empty")
	}
}

func TestOpenMissingLibrary(t *testing.T) {
	if _, err := Open("/nonexistent/libtranslate.so", "translate"); err == nil {
		t.Error("Open of missing library succeeded")
	}
	if _, err := Open("/nonexistent/libtranslate.so", ""); !errors.Is(err, ErrNoSymbol) {
		t.Errorf("empty symbol err = %v", err)
	}
}

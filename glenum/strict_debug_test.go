//go:build gldebug

package glenum

import (
	"strings"
	"testing"
)

func TestInvalidTokenPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("ParseBufferTarget(0xDEADBEEF) did not panic")
		}
		if msg, _ := r.(string); !strings.Contains(msg, "BufferTarget") {
			t.Errorf("panic message %q does not name the group", msg)
		}
	}()
	ParseBufferTarget(0xDEADBEEF)
}

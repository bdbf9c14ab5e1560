//go:build gldebug

package glenum

import "fmt"

// Debug reports whether invalid tokens panic.
const Debug = true

func invalidToken(group string, raw uint32) {
	panic(fmt.Sprintf("glenum: 0x%04X is not a member of %s", raw, group))
}

//go:build !gldebug

package glenum

// Debug reports whether invalid tokens panic.
const Debug = false

func invalidToken(string, uint32) {}

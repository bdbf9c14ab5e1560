package glenum

// ErrorCode is a value reported by GetError.
type ErrorCode uint32

const (
	NoError                     ErrorCode = 0
	InvalidEnum                 ErrorCode = 0x0500
	InvalidValue                ErrorCode = 0x0501
	InvalidOperation            ErrorCode = 0x0502
	StackOverflow               ErrorCode = 0x0503
	StackUnderflow              ErrorCode = 0x0504
	OutOfMemory                 ErrorCode = 0x0505
	InvalidFramebufferOperation ErrorCode = 0x0506
	ContextLost                 ErrorCode = 0x0507
)

var errorCodes = newGroup("ErrorCode", map[ErrorCode]string{
	NoError:                     "NO_ERROR",
	InvalidEnum:                 "INVALID_ENUM",
	InvalidValue:                "INVALID_VALUE",
	InvalidOperation:            "INVALID_OPERATION",
	StackOverflow:               "STACK_OVERFLOW",
	StackUnderflow:              "STACK_UNDERFLOW",
	OutOfMemory:                 "OUT_OF_MEMORY",
	InvalidFramebufferOperation: "INVALID_FRAMEBUFFER_OPERATION",
	ContextLost:                 "CONTEXT_LOST",
})

// ParseErrorCode converts a raw token into an ErrorCode.
func ParseErrorCode(raw uint32) (ErrorCode, bool) { return errorCodes.parse(raw) }

func (e ErrorCode) String() string { return errorCodes.str(e) }

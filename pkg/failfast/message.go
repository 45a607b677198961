package failfast

import "fmt"

// customMessage renders the optional trailing message arguments.
// A single string is returned as is; a string followed by
// arguments is treated as a format. It returns "" when no
// message was supplied.
func customMessage(msgAndArgs []any) string {
	switch len(msgAndArgs) {
	case 0:
		return ""
	case 1:
		if msg, ok := msgAndArgs[0].(string); ok {
			return msg
		}
		return fmt.Sprint(msgAndArgs[0])
	default:
		if format, ok := msgAndArgs[0].(string); ok {
			return fmt.Sprintf(format, msgAndArgs[1:]...)
		}
		return fmt.Sprint(msgAndArgs...)
	}
}

// messageOr returns the custom message when one was supplied
// and fallback otherwise. fallback is only evaluated on demand.
func messageOr(msgAndArgs []any, fallback func() string) string {
	if msg := customMessage(msgAndArgs); msg != "" {
		return msg
	}
	return fallback()
}

package exitcodes

import "fmt"

// ErrorWithCode is an error that carries an explicit exit code
type ErrorWithCode struct {
	Code    int
	Message string
	Cause   error
}

func (e *ErrorWithCode) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ErrorWithCode) Unwrap() error {
	return e.Cause
}

// WrapError wraps an existing error with an exit code
func WrapError(code int, message string, cause error) *ErrorWithCode {
	return &ErrorWithCode{Code: code, Message: message, Cause: cause}
}

func InvalidArgsErrorf(format string, args ...any) *ErrorWithCode {
	return &ErrorWithCode{Code: InvalidArgs, Message: fmt.Sprintf(format, args...)}
}

func ConfigErr(cause error) *ErrorWithCode {
	return WrapError(ConfigError, "config", cause)
}

package errors

import (
	"bytes"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/kr/text"
	pe "github.com/pkg/errors"
)

// SchemaError is the base of every error reported while building a schema. It
// records the stack where it was created and, optionally, the type being
// resolved and an underlying cause.
type SchemaError struct {
	Message string
	// Type is the canonical name or type reference being resolved.
	Type  string
	cause error
	stack pe.StackTrace
}

func New(msg string) *SchemaError {
	return (&SchemaError{Message: msg}).WithStack()
}

func Errorf(format string, a ...interface{}) *SchemaError {
	return (&SchemaError{
		Message: fmt.Sprintf(format, a...),
	}).WithStack()
}

func (err *SchemaError) WithStack() *SchemaError {
	err.stack = callers()
	return err
}

func (err *SchemaError) WithType(t string) *SchemaError {
	err.Type = t
	return err
}

func (err *SchemaError) WithCause(cause error) *SchemaError {
	err.cause = cause
	return err
}

func (err *SchemaError) Error() string {
	if err == nil {
		return "<nil>"
	}
	str := err.Message
	if err.Type != "" {
		str += fmt.Sprintf(" (type %s)", err.Type)
	}
	if err.cause != nil {
		str += ": " + err.cause.Error()
	}
	return str
}

func (err *SchemaError) Cause() error {
	return err.cause
}

func (err *SchemaError) Unwrap() error {
	return err.cause
}

func (err *SchemaError) StackTrace() pe.StackTrace {
	return err.stack
}

type state struct {
	fmt.State
	buf bytes.Buffer
}

func (s *state) Write(b []byte) (n int, err error) {
	return s.buf.Write(b)
}

func (err *SchemaError) Format(s fmt.State, verb rune) {
	formatError(err, err.stack, err.cause, s, verb)
}

func formatError(err error, stack pe.StackTrace, cause error, s fmt.State, verb rune) {
	type stackTracer interface {
		StackTrace() pe.StackTrace
	}

	switch verb {
	case 'v':
		io.WriteString(s, err.Error())
		if s.Flag('+') {
			if cause != nil {
				if cause, ok := cause.(stackTracer); ok && cause.StackTrace() != nil {
					stack = cause.StackTrace()
				}
			}
			if stack != nil {
				tempState := &state{State: s}
				stack.Format(tempState, verb)
				stackText := tempState.buf.String()
				io.WriteString(s, "\n"+bulletIndent(" stack: ", strings.TrimPrefix(stackText, "\n")))
				io.WriteString(s, "\n")
			}
			return
		}
	case 's':
		io.WriteString(s, err.Error())
	case 'q':
		fmt.Fprintf(s, "%q", err.Error())
	}
}

func bulletIndent(bullet string, s string) string {
	pad := strings.Repeat(" ", len(bullet))
	return bullet + strings.TrimPrefix(text.Indent(s, pad), pad)
}

var _ error = &SchemaError{}

func callers() pe.StackTrace {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	f := make([]pe.Frame, n)
	for i := 0; i < n; i++ {
		f[i] = pe.Frame(pcs[i])
	}
	return f
}

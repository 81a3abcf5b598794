package galena

import (
	"errors"
	"fmt"

	"shanhu.io/text/lexing"
)

// Failure kinds of a build query. Every error returned by the query
// surface wraps exactly one of these.
var (
	ErrArgCount       = errors.New("wrong number of arguments")
	ErrBadLabel       = errors.New("cannot resolve label")
	ErrNoDeclarations = errors.New("no declarations in this context")
	ErrUndefined      = errors.New("declaration not found")
	ErrNotTarget      = errors.New("not a target")
	ErrBadTargetType  = errors.New("target type has no queryable outputs")
	ErrBadValue       = errors.New("unexpected value type")
	ErrBadPattern     = errors.New("bad output pattern")
)

// Error is a positioned diagnostic. It wraps a failure kind, so callers
// can classify it with errors.Is, and carries an optional help text that
// command-line front ends print after the message.
type Error struct {
	Kind error
	Pos  *lexing.Pos
	Msg  string
	Help string
}

func (e *Error) Error() string {
	s := e.Kind.Error()
	if e.Msg != "" {
		s = fmt.Sprintf("%s: %s", s, e.Msg)
	}
	if e.Help != "" {
		s += "\n" + e.Help
	}
	return s
}

// Unwrap returns the failure kind.
func (e *Error) Unwrap() error { return e.Kind }

func errAt(
	pos *lexing.Pos, kind error, f string, args ...interface{},
) *Error {
	return &Error{Kind: kind, Pos: pos, Msg: fmt.Sprintf(f, args...)}
}

func (e *Error) withHelp(f string, args ...interface{}) *Error {
	e.Help = fmt.Sprintf(f, args...)
	return e
}

// LexingErrs converts an error into a positioned error list for printing
// with lexing.FprintErrs.
func LexingErrs(err error) []*lexing.Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return []*lexing.Error{{Pos: e.Pos, Err: err}}
	}
	return lexing.SingleErr(err)
}

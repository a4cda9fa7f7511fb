// Package langerrors is the error taxonomy shared by the loader, lexer, and
// parser: every error carries both a technical message (for logs) and a
// human-readable one (for the CLI front ends), and can wrap an underlying
// cause.
package langerrors

import (
	"errors"
	"fmt"
)

// Kind tags which stage of the pipeline an error came from.
type Kind int

const (
	KindLoad Kind = iota
	KindLex
	KindParse
	KindConfig
	KindCache
)

func (k Kind) String() string {
	switch k {
	case KindLoad:
		return "load"
	case KindLex:
		return "lex"
	case KindParse:
		return "parse"
	case KindConfig:
		return "config"
	case KindCache:
		return "cache"
	default:
		return "error"
	}
}

// Error is a darter error: a kind, a technical message, an optional
// human-readable rendering for end users, and an optional wrapped cause.
type Error struct {
	kind  Kind
	msg   string
	human string
	wrap  error
}

func New(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{kind: kind, msg: msg, wrap: cause}
}

func Wrapf(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...), wrap: cause}
}

// WithHuman attaches a human-readable message (e.g. for CLI display) and
// returns the same *Error for chaining at the construction site.
func (e *Error) WithHuman(human string) *Error {
	e.human = human
	return e
}

func (e *Error) Kind() Kind { return e.kind }

// Human returns the human-readable message if one was set, else the
// technical message.
func (e *Error) Human() string {
	if e.human != "" {
		return e.human
	}
	return e.msg
}

func (e *Error) Error() string {
	if e.wrap != nil {
		return fmt.Sprintf("%s: %s: %s", e.kind, e.msg, e.wrap.Error())
	}
	return fmt.Sprintf("%s: %s", e.kind, e.msg)
}

func (e *Error) Unwrap() error { return e.wrap }

// HumanMessage extracts the human-readable message from err if it is (or
// wraps) a *Error, else falls back to err.Error().
func HumanMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Human()
	}
	return err.Error()
}

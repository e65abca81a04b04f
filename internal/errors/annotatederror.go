// Package errors provides annotated errors that carry slog attributes and the
// source location of the wrap site. It re-exports the stdlib helpers so that
// callers don't need to import both packages.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

// AnnotatedError wraps an error with a message, optional [slog.Attr]
// annotations, and the source location where the wrapping happened.
type AnnotatedError struct {
	msg    string
	err    error
	attrs  []slog.Attr
	source string
}

// Error implements the error interface.
func (e *AnnotatedError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

// Unwrap returns the wrapped error, which may be nil for sentinels.
func (e *AnnotatedError) Unwrap() error {
	return e.err
}

// NewSentinel creates an error meant for comparisons with [Is]. Sentinels
// carry no source location so that logs point at the wrap site instead of the
// package-level variable declaration.
func NewSentinel(msg string) error {
	return &AnnotatedError{msg: msg, err: nil, attrs: nil, source: ""}
}

// Wrap annotates err with a message, optional [slog.Attr], and the caller's
// source location. The err may be nil when there is no underlying cause.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	return &AnnotatedError{msg: msg, err: err, attrs: attrs, source: caller(2)} //nolint:mnd // skip caller and Wrap.
}

// DecoratePanic converts a recovered panic value into an error annotated with
// the source location of the panic site.
func DecoratePanic(excp any) error {
	if excp == nil {
		return nil
	}
	return &AnnotatedError{msg: fmt.Sprintf("panic: %v", excp), err: nil, attrs: nil, source: panicSource()}
}

// caller resolves the source location skip frames up the stack.
func caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d", file, line)
}

// panicSource walks the stack past the runtime panic machinery to find the
// frame that actually panicked.
func panicSource() string {
	const maxDepth = 32
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(2, pcs) //nolint:mnd // skip Callers and panicSource.
	frames := runtime.CallersFrames(pcs[:n])
	seenPanic := false
	for {
		frame, more := frames.Next()
		if strings.HasPrefix(frame.Function, "runtime.") {
			seenPanic = seenPanic || strings.Contains(frame.Function, "gopanic")
		} else if seenPanic {
			return fmt.Sprintf("%s:%d", frame.File, frame.Line)
		}
		if !more {
			return ""
		}
	}
}

// SlogError renders err as a structured "error" group with the message, the
// wrap-site source location, and any annotations found in the error chain.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Group("error", slog.String("message", "<nil>"))
	}
	args := []any{slog.String("message", err.Error())}
	if source := firstSource(err); source != "" {
		args = append(args, slog.String("source", source))
	}
	if annotations := collectAnnotations(err); len(annotations) > 0 {
		groupArgs := make([]any, len(annotations))
		for i, attr := range annotations {
			groupArgs[i] = attr
		}
		args = append(args, slog.Group("annotations", groupArgs...))
	}
	return slog.Group("error", args...)
}

// firstSource returns the source location of the outermost annotated error
// that has one.
func firstSource(err error) string {
	for _, candidate := range flatten(err) {
		current := candidate
		for current != nil {
			var annotated *AnnotatedError
			if !errors.As(current, &annotated) {
				break
			}
			if annotated.source != "" {
				return annotated.source
			}
			current = annotated.err
		}
	}
	return ""
}

// collectAnnotations gathers the slog attributes from every annotated error
// in the chain, outermost first.
func collectAnnotations(err error) []slog.Attr {
	var attrs []slog.Attr
	for _, candidate := range flatten(err) {
		current := candidate
		for current != nil {
			var annotated *AnnotatedError
			if !errors.As(current, &annotated) {
				break
			}
			attrs = append(attrs, annotated.attrs...)
			current = annotated.err
		}
	}
	return attrs
}

// flatten expands joined errors into a flat list. Non-joined errors are
// returned as a single-element list.
func flatten(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var errs []error
		for _, e := range joined.Unwrap() {
			errs = append(errs, flatten(e)...)
		}
		return errs
	}
	return []error{err}
}

// New is a re-export of [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Is is a re-export of [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a re-export of [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target) //nolint:errorlint // re-export.
}

// Join is a re-export of [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Unwrap is a re-export of [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

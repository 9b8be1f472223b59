package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"strings"
	"unicode/utf8"
)

type Kind string

const (
	KindNotFound  Kind = "NotFound"
	KindReadError Kind = "ReadError"
)

var (
	ErrNotFound  = errors.New("proxy list not found")
	ErrReadError = errors.New("proxy list unreadable")
)

type Error struct {
	Kind  Kind
	Path  string
	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is lets callers match on ErrNotFound / ErrReadError.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrReadError:
		return e.Kind == KindReadError
	}
	return false
}

type Options struct {
	// SkipComments drops lines whose first non-space character is '#'.
	SkipComments bool
}

// Load reads the proxy list at path and returns its candidate lines.
func Load(path string, opts Options) (iter.Seq[string], error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &Error{Kind: KindNotFound, Path: path}
		}
		return nil, &Error{Kind: KindReadError, Path: path, Cause: err}
	}
	if !info.Mode().IsRegular() {
		return nil, &Error{Kind: KindNotFound, Path: path, Cause: errors.New("not a regular file")}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: KindReadError, Path: path, Cause: err}
	}
	if !utf8.Valid(data) {
		return nil, &Error{Kind: KindReadError, Path: path, Cause: errors.New("content is not valid utf-8")}
	}

	return Lines(string(data), opts), nil
}

// Lines yields the trimmed, non-empty lines of text in order.
func Lines(text string, opts Options) iter.Seq[string] {
	return func(yield func(string) bool) {
		for raw := range strings.FieldsFuncSeq(text, isLineBreak) {
			line := strings.TrimSpace(raw)
			if line == "" {
				continue
			}
			if opts.SkipComments && strings.HasPrefix(line, "#") {
				continue
			}
			if !yield(line) {
				return
			}
		}
	}
}

// isLineBreak reports ASCII and Unicode line boundaries, so files with
// bare "\r" endings or form feeds still split into lines.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

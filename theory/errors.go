package theory

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIndex marks a degree, string, fret or inversion outside its
	// valid range. It is raised with panic: callers are expected to only pass
	// values drawn from the catalogs in this package.
	ErrInvalidIndex = errors.New("invalid index")
	// ErrUnknownNote is returned when free text cannot be read as a note name.
	ErrUnknownNote = errors.New("unknown note name")
)

// IndexError describes an out-of-range argument.
type IndexError struct {
	Kind  string // "pitch class", "string", "fret", "degree", "inversion"
	Value int
	Limit int // exclusive upper bound, or -1 when only the lower bound applies
}

func (e *IndexError) Error() string {
	if e.Limit < 0 {
		return fmt.Sprintf("%s %d: must not be negative", e.Kind, e.Value)
	}
	return fmt.Sprintf("%s %d: out of range [0,%d)", e.Kind, e.Value, e.Limit)
}

func (e *IndexError) Unwrap() error {
	return ErrInvalidIndex
}

func checkIndex(kind string, v, limit int) {
	if v < 0 || v >= limit {
		panic(&IndexError{Kind: kind, Value: v, Limit: limit})
	}
}

package matrix

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrBadShape     = errors.New("matrix: invalid shape")
	ErrRaggedRows   = errors.New("matrix: rows have inconsistent lengths")
	ErrIncompatible = errors.New("incompatible matrices")
	ErrOutOfRange   = errors.New("matrix: index out of range")
	ErrNilMatrix    = errors.New("matrix: nil matrix")
)

// ShapeError reports the operands of an operation whose shapes do not conform.
type ShapeError struct {
	Op string // Operation name (e.g., "multiply", "sum")
	A  Shape  // Left operand shape
	B  Shape  // Right operand shape
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s %s and %s", e.Op, ErrIncompatible, e.A, e.B)
}

// Unwrap lets errors.Is match ErrIncompatible.
func (e *ShapeError) Unwrap() error {
	return ErrIncompatible
}

func incompatible(op string, a, b *Matrix) error {
	return &ShapeError{Op: op, A: a.Shape(), B: b.Shape()}
}

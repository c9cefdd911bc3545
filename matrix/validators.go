// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and nil checks.
//  - Keep kernels minimal by delegating guards here.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil returns ErrNilMatrix if m is nil.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare returns ErrNilMatrix or ErrNonSquare.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateBinarySameShape requires both operands non-nil with equal shapes.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateBinarySameShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

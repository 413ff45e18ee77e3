// Package arith implements the calculator's binary and unary operations.
// Every function rejects non-finite operands and non-finite results.
package arith

import (
	"fmt"
	"math"
)

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validateOperands(a, b float64) error {
	if !isFinite(a) {
		return fmt.Errorf("%w: first operand %v", ErrInvalidOperand, a)
	}
	if !isFinite(b) {
		return fmt.Errorf("%w: second operand %v", ErrInvalidOperand, b)
	}
	return nil
}

func checkResult(v float64) (float64, error) {
	if !isFinite(v) {
		return 0, ErrOverflow
	}
	return v, nil
}

// Add returns a + b
func Add(a, b float64) (float64, error) {
	if err := validateOperands(a, b); err != nil {
		return 0, err
	}
	return checkResult(a + b)
}

// Subtract returns a - b
func Subtract(a, b float64) (float64, error) {
	if err := validateOperands(a, b); err != nil {
		return 0, err
	}
	return checkResult(a - b)
}

// Multiply returns a * b
func Multiply(a, b float64) (float64, error) {
	if err := validateOperands(a, b); err != nil {
		return 0, err
	}
	return checkResult(a * b)
}

// Divide returns a / b, or the undefined result when b is zero.
func Divide(a, b float64) (Result, error) {
	if err := validateOperands(a, b); err != nil {
		return Result{}, err
	}
	if b == 0 {
		return Undefined(), nil
	}
	v, err := checkResult(a / b)
	if err != nil {
		return Result{}, err
	}
	return Number(v), nil
}

// Percent returns a / 100
func Percent(a float64) (float64, error) {
	if !isFinite(a) {
		return 0, fmt.Errorf("%w: operand %v", ErrInvalidOperand, a)
	}
	return checkResult(a / 100)
}

// Calculate applies op to a and b
func Calculate(a, b float64, op Operator) (Result, error) {
	var (
		v   float64
		err error
	)

	switch op {
	case OpNone:
		return Result{}, ErrNoOperation
	case OpAdd:
		v, err = Add(a, b)
	case OpSubtract:
		v, err = Subtract(a, b)
	case OpMultiply:
		v, err = Multiply(a, b)
	case OpDivide:
		return Divide(a, b)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownOperator, string(op))
	}

	if err != nil {
		return Result{}, err
	}
	return Number(v), nil
}

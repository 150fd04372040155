package calculator

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrDivisionByZero is reported when the divisor of a division is zero.
var ErrDivisionByZero = errors.New("division by zero")

// Operator is one of the four supported arithmetic operations.
type Operator string

const (
	Add      Operator = "+"
	Subtract Operator = "-"
	Multiply Operator = "*"
	Divide   Operator = "/"
)

// Compute applies op to a and b and returns the result.
func Compute(a, b float64, op Operator) (float64, error) {
	switch op {
	case Add:
		return a + b, nil
	case Subtract:
		return a - b, nil
	case Multiply:
		return a * b, nil
	case Divide:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	}
	return 0, fmt.Errorf("unknown operator %q", op)
}

func validateNumber(input string) error {
	if _, err := strconv.ParseFloat(input, 64); err != nil {
		return errors.New("invalid number")
	}
	return nil
}

package payroll

import (
	"errors"
	"fmt"
	"math"
)

// ErrNegativeSalary rejects malformed salary input.
var ErrNegativeSalary = errors.New("salary must not be negative")

// SSS computes the Social Security System contribution: 4.5% of the
// monthly salary, rounded up to the next peso.
func SSS(salary float64) (float64, error) {
	if salary < 0 {
		return 0, ErrNegativeSalary
	}
	return math.Ceil(salary * 0.045), nil
}

// PhilHealth computes the PhilHealth premium: 2.5% of the monthly
// salary, rounded up.
func PhilHealth(salary float64) (float64, error) {
	if salary < 0 {
		return 0, ErrNegativeSalary
	}
	return math.Ceil(salary * 0.025), nil
}

// PagIBIG computes the Pag-IBIG housing fund contribution: 10% of the
// monthly salary up to 1500, 20% above that. Rounded up.
func PagIBIG(salary float64) (float64, error) {
	if salary < 0 {
		return 0, ErrNegativeSalary
	}
	rate := 0.2
	if salary <= 1500 {
		rate = 0.1
	}
	return math.Ceil(salary * rate), nil
}

// Tax computes the monthly income tax withheld under the TRAIN law
// brackets. The monthly salary is annualised for the bracket lookup and
// the annual tax divided back into a monthly share, rounded up.
func Tax(salary float64) (float64, error) {
	if salary < 0 {
		return 0, ErrNegativeSalary
	}
	annual := salary * 12
	var tax float64
	switch {
	case annual <= 250_000:
		tax = 0
	case annual <= 400_000:
		tax = (annual - 250_000) * 0.15
	case annual <= 800_000:
		tax = 22_500 + (annual-400_000)*0.20
	case annual <= 2_000_000:
		tax = 102_500 + (annual-800_000)*0.25
	case annual <= 8_000_000:
		tax = 402_500 + (annual-2_000_000)*0.30
	default:
		tax = 2_202_500 + (annual-8_000_000)*0.35
	}
	return math.Ceil(tax / 12), nil
}

// ComputeAll runs the full deduction pipeline sequentially. The process
// pool workers use it as their unit of work, one employee per call.
func ComputeAll(salary float64) (Deductions, error) {
	var d Deductions
	var err error
	if d.SSS, err = SSS(salary); err != nil {
		return Deductions{}, fmt.Errorf("sss: %w", err)
	}
	if d.PhilHealth, err = PhilHealth(salary); err != nil {
		return Deductions{}, fmt.Errorf("philhealth: %w", err)
	}
	if d.PagIBIG, err = PagIBIG(salary); err != nil {
		return Deductions{}, fmt.Errorf("pagibig: %w", err)
	}
	if d.Tax, err = Tax(salary); err != nil {
		return Deductions{}, fmt.Errorf("tax: %w", err)
	}
	return d, nil
}

package payroll

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeductionsKnownValues(t *testing.T) {
	require := require.New(t)

	// Alice from the sample batch: 25000/month, annual 300k.
	sss, err := SSS(25000)
	require.NoError(err)
	require.Equal(1125.0, sss)

	philhealth, err := PhilHealth(25000)
	require.NoError(err)
	require.Equal(625.0, philhealth)

	pagibig, err := PagIBIG(25000)
	require.NoError(err)
	require.Equal(5000.0, pagibig)

	tax, err := Tax(25000)
	require.NoError(err)
	require.Equal(625.0, tax)
}

func TestDeductionsZeroSalary(t *testing.T) {
	require := require.New(t)

	d, err := ComputeAll(0)
	require.NoError(err)
	require.Zero(d.SSS)
	require.Zero(d.PhilHealth)
	require.Zero(d.PagIBIG)
	require.Zero(d.Tax)
	require.Zero(d.Total())
}

func TestDeductionsTopBracket(t *testing.T) {
	require := require.New(t)

	// 1M/month annualises to 12M, landing in the 35% bracket.
	tax, err := Tax(1_000_000)
	require.NoError(err)
	require.Equal(300_209.0, tax)
}

func TestPagIBIGThreshold(t *testing.T) {
	require := require.New(t)

	low, err := PagIBIG(1500)
	require.NoError(err)
	require.Equal(150.0, low)

	high, err := PagIBIG(1501)
	require.NoError(err)
	require.Equal(301.0, high)
}

func TestDeductionsPure(t *testing.T) {
	require := require.New(t)

	for _, salary := range []float64{0, 1500, 25000, 40000, 123456.78} {
		first, err := ComputeAll(salary)
		require.NoError(err)
		second, err := ComputeAll(salary)
		require.NoError(err)
		require.Equal(first, second)
	}
}

func TestDeductionsNeverExceedSalary(t *testing.T) {
	require := require.New(t)

	// Holds only from 3 pesos up: below that, each nonzero deduction
	// still rounds up to a whole peso. See TestDeductionsTinySalary.
	for salary := 3.0; salary <= 1_000_000; salary *= 1.5 {
		d, err := ComputeAll(salary)
		require.NoError(err)
		require.LessOrEqual(d.Total(), salary, "salary %v", salary)
	}
}

func TestDeductionsTinySalary(t *testing.T) {
	require := require.New(t)

	// Ceil rounding makes SSS, PhilHealth and Pag-IBIG one peso each for
	// any positive salary, so a 1- or 2-peso salary withholds 3 pesos.
	for _, salary := range []float64{1, 2} {
		d, err := ComputeAll(salary)
		require.NoError(err)
		require.Equal(1.0, d.SSS)
		require.Equal(1.0, d.PhilHealth)
		require.Equal(1.0, d.PagIBIG)
		require.Zero(d.Tax)
		require.Equal(3.0, d.Total())
		require.Greater(d.Total(), salary)
	}
}

func TestTaxMonotonic(t *testing.T) {
	require := require.New(t)

	prev := 0.0
	for salary := 0.0; salary <= 1_200_000; salary += 997 {
		tax, err := Tax(salary)
		require.NoError(err)
		require.GreaterOrEqual(tax, prev, "salary %v", salary)
		prev = tax
	}
}

func TestNegativeSalaryRejected(t *testing.T) {
	require := require.New(t)

	for _, f := range []func(float64) (float64, error){SSS, PhilHealth, PagIBIG, Tax} {
		_, err := f(-1)
		require.ErrorIs(err, ErrNegativeSalary)
	}

	_, err := ComputeAll(-25000)
	require.ErrorIs(err, ErrNegativeSalary)
}

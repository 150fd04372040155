package payroll

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/table"
	"github.com/manifoldco/promptui"
)

// RunSingle demonstrates task parallelism: the four deductions for one
// salary, each submitted as a unit of work to a thread pool.
func RunSingle() {
	fmt.Println("--- Payroll Deduction Calculator (thread pool) ---")

	salary, err := promptSalary()
	if err != nil {
		fmt.Println("Exiting...")
		return
	}

	pool := NewExecutor(4)
	defer pool.Close()

	start := time.Now()
	d, err := ComputeParallel(pool, salary)
	if err != nil {
		fmt.Printf("Cannot compute deductions: %v\n", err)
		return
	}

	renderPayslip(newPayslip(Employee{Name: "Employee", Salary: salary}, d))
	fmt.Printf("Computed in %v\n", time.Since(start))
}

// RunBatch demonstrates data parallelism: each employee's full deduction
// pipeline submitted as one unit of work to a process pool.
func RunBatch() {
	fmt.Println("--- Payroll Deduction Calculator (process pool) ---")

	employees := SampleEmployees()
	fmt.Printf("Loaded %d sample employees.\n", len(employees))

	for {
		add := promptui.Prompt{
			Label:     "Add another employee",
			IsConfirm: true,
		}
		if _, err := add.Run(); err != nil {
			break
		}
		name, err := promptName()
		if err != nil {
			break
		}
		salary, err := promptSalary()
		if err != nil {
			break
		}
		employees = append(employees, NewEmployee(name, salary))
	}

	start := time.Now()
	payslips, failures, err := ProcessBatch(employees, runtime.NumCPU())
	if err != nil {
		fmt.Printf("Batch failed: %v\n", err)
		return
	}

	renderBatch(payslips)
	for _, f := range failures {
		fmt.Printf("[main] employee %s (%s) rejected: %s\n", f.Name, f.EmployeeID, f.Reason)
	}
	fmt.Printf("Processed %d employees (%d rejected) in %v\n",
		len(payslips), len(failures), time.Since(start))
}

func renderPayslip(p Payslip) {
	t := table.NewWriter()

	t.SetOutputMirror(os.Stdout)

	t.AppendHeader(table.Row{"Description", "Amount"})
	t.AppendRow(table.Row{"Gross Salary", money(p.Employee.Salary)})
	t.AppendRow(table.Row{"SSS", money(p.Deductions.SSS)})
	t.AppendRow(table.Row{"PhilHealth", money(p.Deductions.PhilHealth)})
	t.AppendRow(table.Row{"Pag-IBIG", money(p.Deductions.PagIBIG)})
	t.AppendRow(table.Row{"Income Tax", money(p.Deductions.Tax)})
	t.AppendRow(table.Row{"Total Deductions", money(p.Deductions.Total())})
	t.AppendFooter(table.Row{"NET PAY", money(p.NetPay)})
	t.Render()
}

func renderBatch(payslips []Payslip) {
	t := table.NewWriter()

	t.SetOutputMirror(os.Stdout)

	t.AppendHeader(table.Row{"Employee", "Gross", "SSS", "PhilHealth", "Pag-IBIG", "Tax", "Net Pay"})
	for _, p := range payslips {
		t.AppendRow(table.Row{
			p.Employee.Name,
			money(p.Employee.Salary),
			money(p.Deductions.SSS),
			money(p.Deductions.PhilHealth),
			money(p.Deductions.PagIBIG),
			money(p.Deductions.Tax),
			money(p.NetPay),
		})
	}
	t.Render()
}

func money(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

func promptSalary() (float64, error) {
	prompt := promptui.Prompt{
		Label: "Enter monthly salary",
		Validate: func(input string) error {
			n, err := strconv.ParseFloat(input, 64)
			if err != nil {
				return errors.New("invalid salary, must be a number")
			}
			if n < 0 {
				return ErrNegativeSalary
			}
			return nil
		},
	}
	raw, err := prompt.Run()
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(raw, 64)
}

func promptName() (string, error) {
	prompt := promptui.Prompt{
		Label: "Enter employee name",
		Validate: func(input string) error {
			if input == "" {
				return errors.New("name must not be empty")
			}
			return nil
		},
	}
	return prompt.Run()
}

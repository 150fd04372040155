// Package payroll computes Philippine payroll deductions (SSS,
// PhilHealth, Pag-IBIG and income tax) for monthly salaries, once per
// deduction over a thread pool and once per employee over a process pool.
package payroll

import (
	uuid "github.com/satori/go.uuid"
)

// Employee is one payroll record: an identifier and a monthly salary.
// Batch results are re-associated by ID, never by position.
type Employee struct {
	ID     uuid.UUID
	Name   string
	Salary float64
}

// NewEmployee assigns a fresh identifier to a payroll record.
func NewEmployee(name string, salary float64) Employee {
	return Employee{ID: uuid.NewV4(), Name: name, Salary: salary}
}

// Deductions holds the four amounts withheld from one monthly salary.
type Deductions struct {
	SSS        float64 `json:"sss"`
	PhilHealth float64 `json:"philhealth"`
	PagIBIG    float64 `json:"pagibig"`
	Tax        float64 `json:"tax"`
}

// Total is the sum of all four withheld amounts.
func (d Deductions) Total() float64 {
	return d.SSS + d.PhilHealth + d.PagIBIG + d.Tax
}

// Payslip is one employee's completed deduction summary.
type Payslip struct {
	Employee   Employee
	Deductions Deductions
	NetPay     float64
}

func newPayslip(emp Employee, d Deductions) Payslip {
	return Payslip{Employee: emp, Deductions: d, NetPay: emp.Salary - d.Total()}
}

// SampleEmployees is the lab's demo batch.
func SampleEmployees() []Employee {
	return []Employee{
		NewEmployee("Alice", 25000),
		NewEmployee("Bob", 32000),
		NewEmployee("Charlie", 28000),
		NewEmployee("Diana", 40000),
		NewEmployee("Edward", 35000),
	}
}

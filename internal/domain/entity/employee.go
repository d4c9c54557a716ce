package entity

import "github.com/shopspring/decimal"

// Employee is the payroll capability: every employment type computes its own
// monthly salary.
type Employee interface {
	EmployeeName() string
	Salary() decimal.Decimal
}

// FullTimeEmployee earns a fixed monthly salary.
type FullTimeEmployee struct {
	Name    string
	Monthly decimal.Decimal
}

func (e *FullTimeEmployee) EmployeeName() string {
	return e.Name
}

func (e *FullTimeEmployee) Salary() decimal.Decimal {
	return e.Monthly
}

// PartTimeEmployee earns an hourly rate, assuming four working weeks per month.
type PartTimeEmployee struct {
	Name         string
	HourlyRate   decimal.Decimal
	HoursPerWeek int
}

func (e *PartTimeEmployee) EmployeeName() string {
	return e.Name
}

func (e *PartTimeEmployee) Salary() decimal.Decimal {
	return e.HourlyRate.Mul(decimal.NewFromInt(int64(e.HoursPerWeek) * 4))
}

// ContractEmployee earns a fixed payment per month.
type ContractEmployee struct {
	Name    string
	Payment decimal.Decimal
}

func (e *ContractEmployee) EmployeeName() string {
	return e.Name
}

func (e *ContractEmployee) Salary() decimal.Decimal {
	return e.Payment
}

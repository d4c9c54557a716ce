package usecase

import (
	"fmt"
	"io"

	"record-registry/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// PayrollUsecase collects employees of differing employment types and renders
// their salaries through the shared Salary dispatch.
type PayrollUsecase interface {
	AddEmployee(e entity.Employee)
	Size() int
	DisplaySalaries(w io.Writer)
}

type payrollUsecase struct {
	log       *logrus.Logger
	employees []entity.Employee
}

func NewPayrollUsecase(log *logrus.Logger) PayrollUsecase {
	return &payrollUsecase{log: log}
}

func (u *payrollUsecase) AddEmployee(e entity.Employee) {
	u.employees = append(u.employees, e)
}

func (u *payrollUsecase) Size() int {
	return len(u.employees)
}

func (u *payrollUsecase) DisplaySalaries(w io.Writer) {
	for _, e := range u.employees {
		fmt.Fprintf(w, "%s's Salary: Rs. %s\n", e.EmployeeName(), e.Salary())
	}
}

package console

import (
	"context"
	"fmt"
	"io"

	"record-registry/internal/domain/entity"
	"record-registry/internal/usecase"
	"record-registry/pkg/prompt"

	"github.com/sirupsen/logrus"
)

// PayrollConsole collects employees of the three employment types and renders
// their salaries on demand.
type PayrollConsole struct {
	log        *logrus.Logger
	newPayroll func() usecase.PayrollUsecase
}

func NewPayrollConsole(log *logrus.Logger, newPayroll func() usecase.PayrollUsecase) *PayrollConsole {
	return &PayrollConsole{
		log:        log,
		newPayroll: newPayroll,
	}
}

func (p *PayrollConsole) Run(ctx context.Context, in *prompt.Reader, out io.Writer) {
	uc := p.newPayroll()

	for {
		fmt.Fprint(out, "\n===== Payroll Menu =====\n")
		fmt.Fprint(out, "1. Add Full-Time Employee\n")
		fmt.Fprint(out, "2. Add Part-Time Employee\n")
		fmt.Fprint(out, "3. Add Contract Employee\n")
		fmt.Fprint(out, "4. Display Salaries\n")
		fmt.Fprint(out, "5. Exit\n")

		choice := in.Int("Enter your choice: ")
		if in.EOF() && choice == 0 {
			choice = 5
		}

		switch choice {
		case 1:
			name := in.Token("Enter Name: ")
			monthly := in.Decimal("Enter Monthly Salary: ")
			uc.AddEmployee(&entity.FullTimeEmployee{Name: name, Monthly: monthly})
		case 2:
			name := in.Token("Enter Name: ")
			rate := in.Decimal("Enter Hourly Rate: ")
			hours := in.Int("Enter Hours Per Week: ")
			uc.AddEmployee(&entity.PartTimeEmployee{Name: name, HourlyRate: rate, HoursPerWeek: hours})
		case 3:
			name := in.Token("Enter Name: ")
			payment := in.Decimal("Enter Contract Payment: ")
			uc.AddEmployee(&entity.ContractEmployee{Name: name, Payment: payment})
		case 4:
			uc.DisplaySalaries(out)
		case 5:
			fmt.Fprint(out, "Exiting...\n")
			return
		default:
			fmt.Fprint(out, "Invalid choice! Try again.\n")
		}
	}
}

package console

import (
	"context"
	"fmt"
	"io"

	"record-registry/pkg/prompt"

	"github.com/sirupsen/logrus"
)

// Runner owns the top-level menu and dispatches into the four interactive
// programs. It returns when the user exits or the input source is exhausted.
type Runner struct {
	log      *logrus.Logger
	in       *prompt.Reader
	out      io.Writer
	hospital *HospitalConsole
	ledger   *LedgerMenu
	payroll  *PayrollConsole
	library  *LibraryConsole
}

func NewRunner(
	log *logrus.Logger,
	in *prompt.Reader,
	out io.Writer,
	hospital *HospitalConsole,
	ledger *LedgerMenu,
	payroll *PayrollConsole,
	library *LibraryConsole,
) *Runner {
	return &Runner{
		log:      log,
		in:       in,
		out:      out,
		hospital: hospital,
		ledger:   ledger,
		payroll:  payroll,
		library:  library,
	}
}

func (r *Runner) Run(ctx context.Context) {
	for {
		fmt.Fprint(r.out, "\n===== Record Registry =====\n")
		fmt.Fprint(r.out, "1. Hospital Intake\n")
		fmt.Fprint(r.out, "2. Transaction Ledger\n")
		fmt.Fprint(r.out, "3. Payroll\n")
		fmt.Fprint(r.out, "4. Library\n")
		fmt.Fprint(r.out, "5. Exit\n")

		choice := r.in.Int("Enter your choice: ")
		if r.in.EOF() && choice == 0 {
			choice = 5
		}

		switch choice {
		case 1:
			r.hospital.Run(ctx, r.in, r.out)
		case 2:
			r.ledger.Run(ctx, r.in, r.out)
		case 3:
			r.payroll.Run(ctx, r.in, r.out)
		case 4:
			r.library.Run(ctx, r.in, r.out)
		case 5:
			fmt.Fprint(r.out, "Goodbye!\n")
			return
		default:
			fmt.Fprint(r.out, "Invalid choice! Try again.\n")
		}

		if r.in.EOF() {
			return
		}
	}
}

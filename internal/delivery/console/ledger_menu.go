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

// LedgerMenu runs the transaction ledger loop. Each Run starts a fresh
// session; the loop appends records chosen from the menu and archives the
// session on exit.
type LedgerMenu struct {
	log        *logrus.Logger
	newSession func() usecase.LedgerUsecase
}

func NewLedgerMenu(log *logrus.Logger, newSession func() usecase.LedgerUsecase) *LedgerMenu {
	return &LedgerMenu{
		log:        log,
		newSession: newSession,
	}
}

func (m *LedgerMenu) Run(ctx context.Context, in *prompt.Reader, out io.Writer) {
	uc := m.newSession()

	for {
		fmt.Fprint(out, "\n===== Transaction Menu =====\n")
		fmt.Fprint(out, "1. Record Income Transaction\n")
		fmt.Fprint(out, "2. Record Expense Transaction\n")
		fmt.Fprint(out, "3. Display All Transactions\n")
		fmt.Fprint(out, "4. Exit\n")

		choice := in.Int("Enter your choice: ")
		if in.EOF() && choice == 0 {
			choice = 4
		}

		switch choice {
		case 1:
			fmt.Fprint(out, "\n--- Recording Income Transaction ---\n")
			rec := entity.NewIncomeTransaction()
			rec.Populate(in)
			uc.Append(ctx, rec)
		case 2:
			fmt.Fprint(out, "\n--- Recording Expense Transaction ---\n")
			rec := entity.NewExpenseTransaction()
			rec.Populate(in)
			uc.Append(ctx, rec)
		case 3:
			fmt.Fprint(out, "\n===== Transaction Records =====\n")
			uc.DisplayAll(ctx, out)
		case 4:
			fmt.Fprint(out, "Exiting...\n")
			if err := uc.CloseSession(ctx); err != nil {
				m.log.Warnf("Failed to close ledger session: %+v", err)
			}
			return
		default:
			fmt.Fprint(out, "Invalid choice! Try again.\n")
		}
	}
}

package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"record-registry/internal/repository"
	"record-registry/internal/service"
	"record-registry/internal/usecase"
	"record-registry/pkg/prompt"
	"record-registry/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestRunner(input string) (*Runner, *bytes.Buffer) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	newLedger := func() usecase.LedgerUsecase {
		return usecase.NewLedgerUsecase(
			nil, log, repository.NewRegistry(), nil, nil, service.NewSummaryService(nil, log),
		)
	}
	newHospital := func(capacity int) usecase.HospitalUsecase {
		return usecase.NewHospitalUsecase(log, repository.NewRegistryWithCapacity(capacity))
	}

	var out bytes.Buffer
	in := prompt.NewReader(strings.NewReader(input), &out)

	runner := NewRunner(
		log, in, &out,
		NewHospitalConsole(log, validator.NewValidator(), newHospital),
		NewLedgerMenu(log, newLedger),
		NewPayrollConsole(log, func() usecase.PayrollUsecase { return usecase.NewPayrollUsecase(log) }),
		NewLibraryConsole(log, func() usecase.LibraryUsecase { return usecase.NewLibraryUsecase(log) }),
	)
	return runner, &out
}

func TestRunnerPayrollRoundTrip(t *testing.T) {
	input := strings.Join([]string{
		"3",
		"1", "Kamal", "60000",
		"2", "Piyal", "2000", "20",
		"4",
		"5",
		"5",
	}, "\n") + "\n"

	runner, out := newTestRunner(input)
	runner.Run(context.Background())

	rendered := out.String()
	assert.Contains(t, rendered, "Kamal's Salary: Rs. 60000")
	assert.Contains(t, rendered, "Piyal's Salary: Rs. 160000")
	assert.Contains(t, rendered, "Goodbye!")
}

func TestRunnerLibraryBorrowFlow(t *testing.T) {
	input := strings.Join([]string{
		"4",
		"1", "1984", "George Orwell", "67890",
		"2", "Alice", "P001",
		"3", "P001", "67890",
		"5",
		"7",
		"5",
	}, "\n") + "\n"

	runner, out := newTestRunner(input)
	runner.Run(context.Background())

	rendered := out.String()
	assert.Contains(t, rendered, "Book borrowed.")
	assert.Contains(t, rendered, "Status: Checked Out")
}

func TestRunnerInvalidTopChoice(t *testing.T) {
	runner, out := newTestRunner("42\n5\n")
	runner.Run(context.Background())

	rendered := out.String()
	assert.Contains(t, rendered, "Invalid choice! Try again.")
	assert.Contains(t, rendered, "Goodbye!")
}

func TestRunnerExitsOnInputExhaustion(t *testing.T) {
	runner, out := newTestRunner("")
	runner.Run(context.Background())

	assert.Contains(t, out.String(), "===== Record Registry =====")
}

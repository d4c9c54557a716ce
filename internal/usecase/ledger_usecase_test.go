package usecase

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"record-registry/internal/domain/entity"
	"record-registry/internal/repository"
	"record-registry/pkg/prompt"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestLedger(summary *MockSummaryService) LedgerUsecase {
	log := logrus.New()
	return NewLedgerUsecase(nil, log, repository.NewRegistry(), nil, nil, summary)
}

func populated(rec entity.Record, input string) entity.Record {
	in := prompt.NewReader(strings.NewReader(input), new(bytes.Buffer))
	rec.Populate(in)
	return rec
}

func TestLedgerDisplayMatchesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	summary := &MockSummaryService{}
	uc := newTestLedger(summary)

	uc.Append(ctx, populated(entity.NewIncomeTransaction(), "1\n2024-01-01\nSalary\n1000.0\n"))
	uc.Append(ctx, populated(entity.NewExpenseTransaction(), "2\n2024-01-02\nRent\n400\n"))

	var out bytes.Buffer
	uc.DisplayAll(ctx, &out)

	rendered := out.String()
	assert.Equal(t, 2, uc.Size())

	incomeAt := strings.Index(rendered, "[Income Transaction]")
	expenseAt := strings.Index(rendered, "[Expense Transaction]")
	assert.GreaterOrEqual(t, incomeAt, 0)
	assert.Greater(t, expenseAt, incomeAt)
	assert.Contains(t, rendered, "Source: Salary")
	assert.Contains(t, rendered, "Category: Rent")
}

func TestLedgerAppendNotifiesSummary(t *testing.T) {
	ctx := context.Background()
	summary := &MockSummaryService{}
	uc := newTestLedger(summary)

	uc.Append(ctx, entity.NewIncomeTransaction())
	uc.Append(ctx, entity.NewExpenseTransaction())

	assert.Equal(t, int32(2), summary.RecordAppendedCallCount)
	assert.Equal(t, []entity.Kind{entity.KindIncome, entity.KindExpense}, summary.AppendedKinds)
}

func TestLedgerCloseSessionReleasesRegistry(t *testing.T) {
	ctx := context.Background()
	uc := newTestLedger(&MockSummaryService{})

	uc.Append(ctx, entity.NewIncomeTransaction())
	assert.Equal(t, 1, uc.Size())

	// No database configured: close only releases the in-memory entries.
	assert.NoError(t, uc.CloseSession(ctx))
	assert.Equal(t, 0, uc.Size())
}

func TestLedgerDisplayDoesNotMutateRegistry(t *testing.T) {
	ctx := context.Background()
	uc := newTestLedger(&MockSummaryService{})

	uc.Append(ctx, entity.NewExpenseTransaction())

	var out bytes.Buffer
	uc.DisplayAll(ctx, &out)
	uc.DisplayAll(ctx, &out)

	assert.Equal(t, 1, uc.Size())
}

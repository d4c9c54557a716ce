package entity

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"record-registry/pkg/prompt"
)

// IncomeTransaction records money received from a free-text source. The id
// and date are user-supplied and deliberately unvalidated.
type IncomeTransaction struct {
	TransactionID int             `json:"transaction_id"`
	Date          string          `json:"date"`
	Source        string          `json:"source"`
	Amount        decimal.Decimal `json:"amount"`
}

func NewIncomeTransaction() *IncomeTransaction {
	return &IncomeTransaction{Amount: decimal.Zero}
}

func (t *IncomeTransaction) Kind() Kind {
	return KindIncome
}

func (t *IncomeTransaction) Populate(in *prompt.Reader) {
	t.TransactionID = in.Int("Enter Transaction ID: ")
	t.Date = in.Token("Enter Date (YYYY-MM-DD): ")
	t.Source = in.Line("Enter Source of Income: ")
	t.Amount = in.Decimal("Enter Amount Received: ")
}

func (t *IncomeTransaction) Present(w io.Writer) {
	fmt.Fprintf(w, "\n[Income Transaction]\n")
	fmt.Fprintf(w, "Transaction ID: %d\n", t.TransactionID)
	fmt.Fprintf(w, "Date: %s\n", t.Date)
	fmt.Fprintf(w, "Source: %s\n", t.Source)
	fmt.Fprintf(w, "Amount Received: %s\n", t.Amount)
}

// ExpenseTransaction records money spent against a free-text category.
type ExpenseTransaction struct {
	TransactionID int             `json:"transaction_id"`
	Date          string          `json:"date"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
}

func NewExpenseTransaction() *ExpenseTransaction {
	return &ExpenseTransaction{Amount: decimal.Zero}
}

func (t *ExpenseTransaction) Kind() Kind {
	return KindExpense
}

func (t *ExpenseTransaction) Populate(in *prompt.Reader) {
	t.TransactionID = in.Int("Enter Transaction ID: ")
	t.Date = in.Token("Enter Date (YYYY-MM-DD): ")
	t.Category = in.Line("Enter Expense Category: ")
	t.Amount = in.Decimal("Enter Amount Spent: ")
}

func (t *ExpenseTransaction) Present(w io.Writer) {
	fmt.Fprintf(w, "\n[Expense Transaction]\n")
	fmt.Fprintf(w, "Transaction ID: %d\n", t.TransactionID)
	fmt.Fprintf(w, "Date: %s\n", t.Date)
	fmt.Fprintf(w, "Category: %s\n", t.Category)
	fmt.Fprintf(w, "Amount Spent: %s\n", t.Amount)
}

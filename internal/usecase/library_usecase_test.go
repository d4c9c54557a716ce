package usecase

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestLibrary() LibraryUsecase {
	uc := NewLibraryUsecase(logrus.New())
	uc.AddBook("The Great Gatsby", "F. Scott Fitzgerald", "12345")
	uc.AddBook("1984", "George Orwell", "67890")
	uc.AddPatron("Alice", "P001")
	uc.AddPatron("Bob", "P002")
	return uc
}

func TestBorrowAndReturnFlow(t *testing.T) {
	uc := newTestLibrary()

	assert.NoError(t, uc.Borrow("P001", "12345"))
	assert.ErrorIs(t, uc.Borrow("P002", "12345"), ErrBookUnavailable)

	assert.NoError(t, uc.Return("P001", "12345"))
	assert.NoError(t, uc.Borrow("P002", "12345"))
}

func TestReturnBookNotBorrowedByPatron(t *testing.T) {
	uc := newTestLibrary()

	assert.NoError(t, uc.Borrow("P001", "67890"))
	assert.ErrorIs(t, uc.Return("P002", "67890"), ErrNotBorrowed)
}

func TestBorrowUnknownBookOrPatron(t *testing.T) {
	uc := newTestLibrary()

	assert.ErrorIs(t, uc.Borrow("P001", "00000"), ErrBookNotFound)
	assert.ErrorIs(t, uc.Borrow("P999", "12345"), ErrPatronNotFound)
}

func TestDisplayBooksShowsAvailability(t *testing.T) {
	uc := newTestLibrary()
	assert.NoError(t, uc.Borrow("P001", "12345"))

	var out bytes.Buffer
	uc.DisplayBooks(&out)

	rendered := out.String()
	assert.Contains(t, rendered, "Title: The Great Gatsby")
	assert.Contains(t, rendered, "Status: Checked Out")
	assert.Contains(t, rendered, "Title: 1984")
	assert.Contains(t, rendered, "Status: Available")
}

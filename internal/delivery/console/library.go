package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"record-registry/internal/usecase"
	"record-registry/pkg/prompt"

	"github.com/sirupsen/logrus"
)

// LibraryConsole drives the checkout simulator: books and patrons are added
// interactively, then borrowed and returned by card number and ISBN.
type LibraryConsole struct {
	log        *logrus.Logger
	newLibrary func() usecase.LibraryUsecase
}

func NewLibraryConsole(log *logrus.Logger, newLibrary func() usecase.LibraryUsecase) *LibraryConsole {
	return &LibraryConsole{
		log:        log,
		newLibrary: newLibrary,
	}
}

func (l *LibraryConsole) Run(ctx context.Context, in *prompt.Reader, out io.Writer) {
	uc := l.newLibrary()

	for {
		fmt.Fprint(out, "\n===== Library Menu =====\n")
		fmt.Fprint(out, "1. Add Book\n")
		fmt.Fprint(out, "2. Add Patron\n")
		fmt.Fprint(out, "3. Borrow Book\n")
		fmt.Fprint(out, "4. Return Book\n")
		fmt.Fprint(out, "5. Display Books\n")
		fmt.Fprint(out, "6. Display Patrons\n")
		fmt.Fprint(out, "7. Exit\n")

		choice := in.Int("Enter your choice: ")
		if in.EOF() && choice == 0 {
			choice = 7
		}

		switch choice {
		case 1:
			title := in.Line("Enter Title: ")
			author := in.Line("Enter Author: ")
			isbn := in.Token("Enter ISBN: ")
			uc.AddBook(title, author, isbn)
		case 2:
			name := in.Line("Enter Patron Name: ")
			card := in.Token("Enter Card Number: ")
			uc.AddPatron(name, card)
		case 3:
			card := in.Token("Enter Card Number: ")
			isbn := in.Token("Enter ISBN: ")
			l.report(out, uc.Borrow(card, isbn), "Book borrowed.")
		case 4:
			card := in.Token("Enter Card Number: ")
			isbn := in.Token("Enter ISBN: ")
			l.report(out, uc.Return(card, isbn), "Book returned.")
		case 5:
			uc.DisplayBooks(out)
		case 6:
			uc.DisplayPatrons(out)
		case 7:
			fmt.Fprint(out, "Exiting...\n")
			return
		default:
			fmt.Fprint(out, "Invalid choice! Try again.\n")
		}
	}
}

func (l *LibraryConsole) report(out io.Writer, err error, success string) {
	switch {
	case err == nil:
		fmt.Fprintf(out, "%s\n", success)
	case errors.Is(err, usecase.ErrBookUnavailable):
		fmt.Fprint(out, "Sorry, that book is not available.\n")
	case errors.Is(err, usecase.ErrNotBorrowed):
		fmt.Fprint(out, "That patron did not borrow this book.\n")
	case errors.Is(err, usecase.ErrBookNotFound):
		fmt.Fprint(out, "No book with that ISBN.\n")
	case errors.Is(err, usecase.ErrPatronNotFound):
		fmt.Fprint(out, "No patron with that card number.\n")
	default:
		fmt.Fprintf(out, "Error: %v\n", err)
	}
}

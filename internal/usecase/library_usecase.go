package usecase

import (
	"errors"
	"io"

	"record-registry/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

var (
	ErrBookNotFound    = errors.New("book not found")
	ErrPatronNotFound  = errors.New("patron not found")
	ErrBookUnavailable = errors.New("book is not available")
	ErrNotBorrowed     = errors.New("patron did not borrow this book")
)

// LibraryUsecase manages a small circulating collection: books keyed by ISBN,
// patrons keyed by card number, borrow and return flows between them.
type LibraryUsecase interface {
	AddBook(title, author, isbn string) *entity.Book
	AddPatron(name, cardNumber string) *entity.Patron
	Borrow(cardNumber, isbn string) error
	Return(cardNumber, isbn string) error
	DisplayBooks(w io.Writer)
	DisplayPatrons(w io.Writer)
}

type libraryUsecase struct {
	log     *logrus.Logger
	books   []*entity.Book
	patrons []*entity.Patron
}

func NewLibraryUsecase(log *logrus.Logger) LibraryUsecase {
	return &libraryUsecase{log: log}
}

func (u *libraryUsecase) AddBook(title, author, isbn string) *entity.Book {
	book := entity.NewBook(title, author, isbn)
	u.books = append(u.books, book)
	return book
}

func (u *libraryUsecase) AddPatron(name, cardNumber string) *entity.Patron {
	patron := entity.NewPatron(name, cardNumber)
	u.patrons = append(u.patrons, patron)
	return patron
}

func (u *libraryUsecase) findBook(isbn string) *entity.Book {
	for _, b := range u.books {
		if b.ISBN == isbn {
			return b
		}
	}
	return nil
}

func (u *libraryUsecase) findPatron(cardNumber string) *entity.Patron {
	for _, p := range u.patrons {
		if p.CardNumber == cardNumber {
			return p
		}
	}
	return nil
}

func (u *libraryUsecase) Borrow(cardNumber, isbn string) error {
	patron := u.findPatron(cardNumber)
	if patron == nil {
		return ErrPatronNotFound
	}
	book := u.findBook(isbn)
	if book == nil {
		return ErrBookNotFound
	}
	if !patron.Borrow(book) {
		return ErrBookUnavailable
	}
	return nil
}

func (u *libraryUsecase) Return(cardNumber, isbn string) error {
	patron := u.findPatron(cardNumber)
	if patron == nil {
		return ErrPatronNotFound
	}
	book := u.findBook(isbn)
	if book == nil {
		return ErrBookNotFound
	}
	if !patron.GiveBack(book) {
		return ErrNotBorrowed
	}
	return nil
}

func (u *libraryUsecase) DisplayBooks(w io.Writer) {
	for _, b := range u.books {
		b.Present(w)
	}
}

func (u *libraryUsecase) DisplayPatrons(w io.Writer) {
	for _, p := range u.patrons {
		p.Present(w)
	}
}

package entity

import (
	"fmt"
	"io"
)

// Patron is a library member holding zero or more borrowed books.
type Patron struct {
	Name       string
	CardNumber string
	Borrowed   []*Book
}

func NewPatron(name, cardNumber string) *Patron {
	return &Patron{
		Name:       name,
		CardNumber: cardNumber,
	}
}

// Borrow checks the book out for this patron. It reports false when the book
// is not available.
func (p *Patron) Borrow(b *Book) bool {
	if !b.CheckOut() {
		return false
	}
	p.Borrowed = append(p.Borrowed, b)
	return true
}

// GiveBack returns a borrowed book. It reports false when this patron does
// not hold the book.
func (p *Patron) GiveBack(b *Book) bool {
	for i, held := range p.Borrowed {
		if held == b {
			b.Return()
			p.Borrowed = append(p.Borrowed[:i], p.Borrowed[i+1:]...)
			return true
		}
	}
	return false
}

func (p *Patron) Present(w io.Writer) {
	fmt.Fprintf(w, "Patron Name: %s\nCard Number: %s\nBorrowed Books:\n", p.Name, p.CardNumber)
	if len(p.Borrowed) == 0 {
		fmt.Fprintf(w, "  None\n")
	} else {
		for _, b := range p.Borrowed {
			fmt.Fprintf(w, "  - %s by %s\n", b.Title, b.Author)
		}
	}
	fmt.Fprintf(w, "----------------------\n")
}

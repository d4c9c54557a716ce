package entity

import (
	"fmt"
	"io"
)

// Book is a library item with a single circulating copy.
type Book struct {
	Title     string
	Author    string
	ISBN      string
	Available bool
}

func NewBook(title, author, isbn string) *Book {
	return &Book{
		Title:     title,
		Author:    author,
		ISBN:      isbn,
		Available: true,
	}
}

// CheckOut marks the book as lent out. It reports false when the book is
// already checked out.
func (b *Book) CheckOut() bool {
	if !b.Available {
		return false
	}
	b.Available = false
	return true
}

// Return makes the book available again.
func (b *Book) Return() {
	b.Available = true
}

func (b *Book) Present(w io.Writer) {
	status := "Available"
	if !b.Available {
		status = "Checked Out"
	}
	fmt.Fprintf(w, "Title: %s\nAuthor: %s\nISBN: %s\nStatus: %s\n----------------------\n",
		b.Title, b.Author, b.ISBN, status)
}
